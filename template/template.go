package template

import "fmt"

// Page type identifiers stamped into every built document.
const (
	PageTypeFAQ        = "faq"
	PageTypeProduct    = "product"
	PageTypeComparison = "comparison"
)

// FieldError reports a missing or empty required field encountered while
// building a page document. Index is the list position for item-level
// failures and -1 otherwise.
type FieldError struct {
	Page  string // page type being built
	Field string // missing field
	Index int    // list position, -1 when not applicable
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s page: item %d missing %q field", e.Page, e.Index, e.Field)
	}
	return fmt.Sprintf("%s page: missing required field %q", e.Page, e.Field)
}
