package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barodex/barodex/internal/domain"
)

func TestForLanguage(t *testing.T) {
	texts := map[domain.Language]map[string]string{
		domain.LanguageEnglish: {"entityname.wrench": "Wrench"},
	}

	t.Run("present language", func(t *testing.T) {
		table, err := ForLanguage(texts, domain.LanguageEnglish)
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("missing language is fatal", func(t *testing.T) {
		_, err := ForLanguage(texts, domain.Language("Klingon"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingLanguage)
	})
}

func TestTable_Name(t *testing.T) {
	table := NewTable(map[string]string{
		"entityname.wrench": "Wrench",
		"storename.merchantcity": "City Merchant",
	})

	t.Run("translated key", func(t *testing.T) {
		assert.Equal(t, "Wrench", table.Name("entityname.wrench", "wrench"))
	})

	t.Run("missing key falls back verbatim", func(t *testing.T) {
		assert.Equal(t, "prototype_gadget", table.Name("entityname.prototype_gadget", "prototype_gadget"))
	})

	t.Run("store key", func(t *testing.T) {
		got := table.Name(domain.MerchantCity.NameTextKey(), string(domain.MerchantCity))
		assert.Equal(t, "City Merchant", got)
	})
}
