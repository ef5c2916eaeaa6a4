// Package dataload decodes and validates the item database blob the
// application loads at startup. Two encodings are supported: the raw JSON
// export, and the packed form (gzip-compressed JSON) written by cmd/pack.
package dataload

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/barodex/barodex/internal/domain"
)

// Sentinel errors for the database loader
var (
	ErrUnreadableBlob = errors.New("unreadable database blob")
	ErrInvalidBlob    = errors.New("invalid database blob")
)

// Loader reads and validates the raw item database.
type Loader interface {
	Load(path string) (*domain.ItemDB, error)
	Validate(db *domain.ItemDB) error
}

type blobLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance.
func NewLoader() Loader {
	return &blobLoader{validate: validator.New()}
}

// Load reads the database at path, decoding by extension: ".json" is the
// raw export, anything else the packed form. The result is validated; any
// failure here is fatal to startup.
func (l *blobLoader) Load(path string) (*domain.ItemDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableBlob, err)
	}
	defer f.Close()

	var db *domain.ItemDB
	if strings.HasSuffix(path, ".json") {
		db, err = DecodeJSON(f)
	} else {
		db, err = DecodePack(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := l.Validate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Validate checks structural tags and semantic rules the facade relies on:
// the database must carry at least one text table and no duplicate item
// ids.
func (l *blobLoader) Validate(db *domain.ItemDB) error {
	if db == nil {
		return fmt.Errorf("%w: %s", domain.ErrMalformedDB, ErrMsgBlobNil)
	}

	if err := l.validate.Struct(db); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedDB, err)
	}

	seen := make(map[string]bool, len(db.Items))
	for _, item := range db.Items {
		if seen[item.ID] {
			return fmt.Errorf("%w: '%s'", domain.ErrDuplicateItem, item.ID)
		}
		seen[item.ID] = true
	}

	return nil
}

// DecodeJSON decodes the raw JSON export.
func DecodeJSON(r io.Reader) (*domain.ItemDB, error) {
	var db domain.ItemDB
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlob, err)
	}
	return &db, nil
}

// DecodePack decodes the packed (gzip-wrapped JSON) form.
func DecodePack(r io.Reader) (*domain.ItemDB, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlob, err)
	}
	defer zr.Close()

	return DecodeJSON(zr)
}

// EncodePack writes the packed form consumed by DecodePack. The payload is
// JSON, not gob: gob omits zero-valued struct fields, so pointer overrides
// like an explicit sold=false store modifier would decode as nil and
// silently change pricing after a round trip.
func EncodePack(w io.Writer, db *domain.ItemDB) error {
	zw := gzip.NewWriter(w)
	if err := json.NewEncoder(zw).Encode(db); err != nil {
		return fmt.Errorf("failed to encode database: %w", err)
	}
	return zw.Close()
}
