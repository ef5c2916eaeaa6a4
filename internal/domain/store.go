package domain

// StoreIdentifier names one of the merchants whose pricing the reference
// tracks. The set is closed: modifiers for other stores are carried in the
// data but never summarized.
type StoreIdentifier string

const (
	MerchantOutpost     StoreIdentifier = "merchantoutpost"
	MerchantCity        StoreIdentifier = "merchantcity"
	MerchantResearch    StoreIdentifier = "merchantresearch"
	MerchantMilitary    StoreIdentifier = "merchantmilitary"
	MerchantMine        StoreIdentifier = "merchantmine"
	MerchantMedical     StoreIdentifier = "merchantmedical"
	MerchantEngineering StoreIdentifier = "merchantengineering"
	MerchantArmory      StoreIdentifier = "merchantarmory"
	MerchantClown       StoreIdentifier = "merchantclown"
	MerchantHusk        StoreIdentifier = "merchanthusk"
)

// TrackedStores lists every merchant shown on item pages, in display order.
var TrackedStores = []StoreIdentifier{
	MerchantOutpost,
	MerchantCity,
	MerchantResearch,
	MerchantMilitary,
	MerchantMine,
	MerchantMedical,
	MerchantEngineering,
	MerchantArmory,
	MerchantClown,
	MerchantHusk,
}

// NameTextKey returns the localization key for the store's display name.
func (s StoreIdentifier) NameTextKey() string {
	return "storename." + string(s)
}

// Price carries an item's base price and per-store overrides.
type Price struct {
	BasePrice int                               `json:"baseprice"`
	Sold      bool                              `json:"sold"`
	Modifiers map[StoreIdentifier]StoreModifier `json:"modifiers"`
}

// StoreModifier overrides pricing behavior for a single store. Nil fields
// mean "no override".
type StoreModifier struct {
	Multiplier *float64 `json:"multiplier,omitempty"`
	Sold       *bool    `json:"sold,omitempty"`
}
