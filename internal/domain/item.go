package domain

import (
	"encoding/json"
	"fmt"
)

// Item is a single game entity with a stable identifier and the recipes
// attached to it. Items are immutable once the database is loaded.
type Item struct {
	ID             string        `json:"id" validate:"required"`
	NameIdentifier string        `json:"nameidentifier,omitempty"`
	Fabricate      []Fabricate   `json:"fabricate"`
	Deconstruct    []Deconstruct `json:"deconstruct"`
	Price          *Price        `json:"price,omitempty"`
}

// NameTextKey returns the localization key for this item's display name.
// Items with an explicit name identifier share a translation entry; the
// rest key off their own id.
func (i *Item) NameTextKey() string {
	if i.NameIdentifier != "" {
		return "entityname." + i.NameIdentifier
	}
	return "entityname." + i.ID
}

// Fabricate is a recipe that produces the owning item.
type Fabricate struct {
	SuitableFabricators []Fabricator   `json:"suitable_fabricators"`
	Time                float64        `json:"time"`
	RequiredItems       []RequiredItem `json:"required_items"`
	RequiredSkills      map[Skill]int  `json:"required_skills"`
	RequiresRecipe      bool           `json:"requires_recipe"`
	OutCondition        float64        `json:"out_condition"`
	Amount              int            `json:"amount"`
	Recycle             bool           `json:"recycle"`
}

// Deconstruct is a recipe that breaks the owning item down into its outputs.
// Output selection by input condition is not modeled: all possible outputs
// are listed regardless of the condition of the item being deconstructed.
type Deconstruct struct {
	Time           float64        `json:"time"`
	RequiredItems  []RequiredItem `json:"required_items"`
	RequiredSkills map[Skill]int  `json:"required_skills"`
	Items          []ProducedItem `json:"items"`
}

// RequiredItem is one input slot of a recipe.
type RequiredItem struct {
	Item      RequiredRef     `json:"item"`
	Amount    int             `json:"amount"`
	Condition *ConditionRange `json:"condition,omitempty"`
}

// ProducedItem is one output slot of a deconstruction recipe. Outputs always
// name a concrete item, never a tag.
type ProducedItem struct {
	ID           string   `json:"id" validate:"required"`
	Amount       int      `json:"amount"`
	MinCondition *float64 `json:"mincondition,omitempty"`
}

// ConditionRange restricts the durability an input must be within.
type ConditionRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// RequiredRef names a recipe input: either a concrete item id or a free-form
// capability tag. Tags are never resolved to a specific item; they render as
// text. Exactly one of the two fields is set.
type RequiredRef struct {
	ID  string
	Tag string
}

// IsTag reports whether the reference is a capability tag rather than a
// concrete item id.
func (r RequiredRef) IsTag() bool { return r.Tag != "" }

// Label returns whichever name the reference carries.
func (r RequiredRef) Label() string {
	if r.IsTag() {
		return r.Tag
	}
	return r.ID
}

// requiredRefJSON mirrors the export format: {"id": "..."} or {"tag": "..."}.
type requiredRefJSON struct {
	ID  string `json:"id,omitempty"`
	Tag string `json:"tag,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r RequiredRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(requiredRefJSON{ID: r.ID, Tag: r.Tag})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RequiredRef) UnmarshalJSON(data []byte) error {
	var raw requiredRefJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == "" && raw.Tag == "" {
		return fmt.Errorf("%w: required item reference has neither id nor tag", ErrInvalidItemRef)
	}
	if raw.ID != "" && raw.Tag != "" {
		return fmt.Errorf("%w: required item reference has both id and tag", ErrInvalidItemRef)
	}
	*r = RequiredRef{ID: raw.ID, Tag: raw.Tag}
	return nil
}

// Fabricator identifies a machine type that can run a fabrication recipe.
type Fabricator string

const (
	FabricatorStandard Fabricator = "fabricator"
	FabricatorMedical  Fabricator = "medicalfabricator"
	FabricatorVending  Fabricator = "vendingmachine"
)

// Skill identifies a crew skill a recipe may require a minimum level in.
type Skill string

const (
	SkillEngineering Skill = "engineering"
	SkillElectrical  Skill = "electrical"
	SkillMedical     Skill = "medical"
	SkillMechanical  Skill = "mechanical"
	SkillWeapons     Skill = "weapons"
	SkillHelm        Skill = "helm"
)
