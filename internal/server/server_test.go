package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barodex/barodex/internal/domain"
	"github.com/barodex/barodex/internal/refdb"
)

func testDatabase(t *testing.T) *refdb.Database {
	t.Helper()

	raw := &domain.ItemDB{
		Texts: map[domain.Language]map[string]string{
			domain.LanguageEnglish: {"entityname.steel": "Steel Bar"},
		},
		Items: []domain.Item{{ID: "steel"}},
	}
	db, err := refdb.Load(raw)
	require.NoError(t, err)
	return db
}

func TestRouting(t *testing.T) {
	srv := NewServer(0, testDatabase(t))

	get := func(t *testing.T, path string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("healthz", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, "/healthz").Code)
	})

	t.Run("version", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, "/version").Code)
	})

	t.Run("metrics", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, "/metrics").Code)
	})

	t.Run("list items", func(t *testing.T) {
		rec := get(t, "/api/v1/items")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Steel Bar")
	})

	t.Run("get item", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, "/api/v1/items/steel").Code)
		assert.Equal(t, http.StatusNotFound, get(t, "/api/v1/items/nope").Code)
	})

	t.Run("search", func(t *testing.T) {
		rec := get(t, "/api/v1/search?q=steel")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "steel")
	})

	t.Run("unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, "/api/v1/unknown").Code)
	})
}
