// Command pack converts the raw JSON item export on stdin into the packed
// blob the application loads at startup, written to stdout.
//
//	pack < items.json > items.db
package main

import (
	"bufio"
	"log"
	"os"

	"github.com/barodex/barodex/internal/dataload"
)

func main() {
	db, err := dataload.DecodeJSON(bufio.NewReader(os.Stdin))
	if err != nil {
		log.Fatalf("Failed to decode export: %v", err)
	}

	loader := dataload.NewLoader()
	if err := loader.Validate(db); err != nil {
		log.Fatalf("Export failed validation: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := dataload.EncodePack(out, db); err != nil {
		log.Fatalf("Failed to encode database: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("Failed to write database: %v", err)
	}

	log.Printf("Packed %d items", len(db.Items))
}
