package domain

// Language selects which text table is active. Only one language table is
// used at a time; the loader fails if the selected table is absent.
type Language string

// LanguageEnglish is the language the reference currently ships with.
const LanguageEnglish Language = "English"

// ItemDB is the fully materialized input database: per-language text tables
// plus the flat item list. It is the shape produced by the export pipeline
// and consumed exactly once at startup.
type ItemDB struct {
	Texts map[Language]map[string]string `json:"texts" validate:"required"`
	Items []Item                         `json:"items" validate:"required,dive"`
}
