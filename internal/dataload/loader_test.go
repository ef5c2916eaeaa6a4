package dataload

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barodex/barodex/internal/domain"
)

func float64Ptr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool          { return &v }

// sampleDB deliberately carries pointers to zero values (sold=false,
// multiplier=0, mincondition=0): a codec that confuses "explicitly zero"
// with "absent" must fail the round-trip test.
func sampleDB() *domain.ItemDB {
	return &domain.ItemDB{
		Texts: map[domain.Language]map[string]string{
			domain.LanguageEnglish: {"entityname.steel": "Steel Bar"},
		},
		Items: []domain.Item{
			{
				ID: "steel",
				Price: &domain.Price{
					BasePrice: 100,
					Sold:      true,
					Modifiers: map[domain.StoreIdentifier]domain.StoreModifier{
						domain.MerchantOutpost: {Sold: boolPtr(false)},
						domain.MerchantMedical: {Multiplier: float64Ptr(0)},
					},
				},
			},
			{
				ID: "screwdriver",
				Fabricate: []domain.Fabricate{
					{
						RequiredItems: []domain.RequiredItem{
							{Item: domain.RequiredRef{ID: "steel"}, Amount: 1},
							{Item: domain.RequiredRef{Tag: "handle"}, Amount: 1},
						},
						RequiredSkills: map[domain.Skill]int{domain.SkillMechanical: 20},
						Amount:         1,
					},
				},
				Deconstruct: []domain.Deconstruct{
					{
						RequiredItems: []domain.RequiredItem{
							{
								Item:      domain.RequiredRef{ID: "steel"},
								Amount:    1,
								Condition: &domain.ConditionRange{Min: float64Ptr(0)},
							},
						},
						Items: []domain.ProducedItem{
							{ID: "steel", Amount: 1, MinCondition: float64Ptr(0)},
						},
					},
				},
			},
		},
	}
}

func TestPackRoundTrip(t *testing.T) {
	db := sampleDB()

	var buf bytes.Buffer
	require.NoError(t, EncodePack(&buf, db))

	decoded, err := DecodePack(&buf)
	require.NoError(t, err)
	assert.Equal(t, db, decoded)

	t.Run("explicit not-sold override survives", func(t *testing.T) {
		modifier := decoded.Items[0].Price.Modifiers[domain.MerchantOutpost]
		require.NotNil(t, modifier.Sold)
		assert.False(t, *modifier.Sold)
	})

	t.Run("pointers to zero stay present", func(t *testing.T) {
		modifier := decoded.Items[0].Price.Modifiers[domain.MerchantMedical]
		require.NotNil(t, modifier.Multiplier)
		assert.Zero(t, *modifier.Multiplier)

		deconstruct := decoded.Items[1].Deconstruct[0]
		require.NotNil(t, deconstruct.RequiredItems[0].Condition.Min)
		require.NotNil(t, deconstruct.Items[0].MinCondition)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("export format", func(t *testing.T) {
		payload := `{
			"texts": {"English": {"entityname.steel": "Steel Bar"}},
			"items": [
				{
					"id": "screwdriver",
					"fabricate": [
						{
							"suitable_fabricators": ["fabricator"],
							"time": 10,
							"required_items": [
								{"item": {"id": "steel"}, "amount": 1},
								{"item": {"tag": "handle"}, "amount": 1}
							],
							"required_skills": {"mechanical": 20},
							"requires_recipe": false,
							"out_condition": 1.0,
							"amount": 1,
							"recycle": false
						}
					],
					"deconstruct": []
				}
			]
		}`

		db, err := DecodeJSON(bytes.NewReader([]byte(payload)))
		require.NoError(t, err)
		require.Len(t, db.Items, 1)

		recipe := db.Items[0].Fabricate[0]
		assert.Equal(t, "steel", recipe.RequiredItems[0].Item.ID)
		assert.False(t, recipe.RequiredItems[0].Item.IsTag())
		assert.Equal(t, "handle", recipe.RequiredItems[1].Item.Tag)
		assert.True(t, recipe.RequiredItems[1].Item.IsTag())
		assert.Equal(t, 20, recipe.RequiredSkills[domain.SkillMechanical])
	})

	t.Run("required ref with both id and tag is rejected", func(t *testing.T) {
		payload := `{
			"texts": {"English": {}},
			"items": [
				{
					"id": "x",
					"fabricate": [
						{"required_items": [{"item": {"id": "a", "tag": "b"}, "amount": 1}]}
					]
				}
			]
		}`
		_, err := DecodeJSON(bytes.NewReader([]byte(payload)))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidBlob)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := DecodeJSON(bytes.NewReader([]byte("{not json")))
		assert.ErrorIs(t, err, ErrInvalidBlob)
	})
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("packed file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodePack(&buf, sampleDB()))

		path := filepath.Join(t.TempDir(), "items.db")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

		db, err := loader.Load(path)
		require.NoError(t, err)
		assert.Len(t, db.Items, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/items.db")
		assert.ErrorIs(t, err, ErrUnreadableBlob)
	})

	t.Run("corrupt packed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.db")
		require.NoError(t, os.WriteFile(path, []byte("not a gzip stream"), 0o600))

		_, err := loader.Load(path)
		assert.ErrorIs(t, err, ErrInvalidBlob)
	})
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid database", func(t *testing.T) {
		assert.NoError(t, loader.Validate(sampleDB()))
	})

	t.Run("nil database", func(t *testing.T) {
		err := loader.Validate(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedDB)
	})

	t.Run("missing texts", func(t *testing.T) {
		err := loader.Validate(&domain.ItemDB{Items: []domain.Item{{ID: "a"}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedDB)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		db := sampleDB()
		db.Items = append(db.Items, domain.Item{ID: "steel"})
		err := loader.Validate(db)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateItem)
		assert.Contains(t, err.Error(), "steel")
	})
}
