package domain

// Filter selects which segments of the active document are visible.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterTranslated   Filter = "translated"
	FilterUntranslated Filter = "untranslated"
)

// ValidFilter reports whether f is one of the three known filters.
func ValidFilter(f Filter) bool {
	return f == FilterAll || f == FilterTranslated || f == FilterUntranslated
}

// Stats is derived from a document's full segment list and never stored.
type Stats struct {
	Total        int `json:"total"`
	Translated   int `json:"translated"`
	Untranslated int `json:"untranslated"`
}
