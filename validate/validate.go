package validate

import (
	"fmt"
	"sort"

	"github.com/hupe1980/contentforge/template"
)

// DefaultMinFAQCount is the minimum number of FAQ entries a page must carry.
const DefaultMinFAQCount = 15

// Error reports a business-rule violation in a generated page.
type Error struct {
	Page string // page type that failed
	Rule string // human readable violation
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s page invalid: %s", e.Page, e.Rule)
}

// Options configures a Validator.
type Options struct {
	// MinFAQCount overrides the minimum FAQ entry count.
	MinFAQCount int
}

// Validator checks assembled pages against the content quality rules.
type Validator struct {
	minFAQCount int
}

// New constructs a Validator.
func New(optFns ...func(o *Options)) *Validator {
	opts := Options{
		MinFAQCount: DefaultMinFAQCount,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Validator{minFAQCount: opts.MinFAQCount}
}

// FAQPage checks the FAQ page: correct page type, at least the minimum
// number of entries, and no entry with an empty question or answer.
func (v *Validator) FAQPage(page *template.FAQPage) error {
	if page == nil {
		return &Error{Page: template.PageTypeFAQ, Rule: "page is empty"}
	}

	if page.PageType != template.PageTypeFAQ {
		return &Error{
			Page: template.PageTypeFAQ,
			Rule: fmt.Sprintf("expected page_type %q, got %q", template.PageTypeFAQ, page.PageType),
		}
	}

	if len(page.FAQs) < v.minFAQCount {
		return &Error{
			Page: template.PageTypeFAQ,
			Rule: fmt.Sprintf("faq count (%d) is less than required minimum (%d)", len(page.FAQs), v.minFAQCount),
		}
	}

	for i, item := range page.FAQs {
		if item.Question == "" || item.Answer == "" {
			return &Error{
				Page: template.PageTypeFAQ,
				Rule: fmt.Sprintf("entry %d has an empty question or answer", i),
			}
		}
	}

	return nil
}

// ProductPage checks the product page: correct page type and non-empty
// required sections. The description section is optional.
func (v *Validator) ProductPage(page *template.ProductPage) error {
	if page == nil {
		return &Error{Page: template.PageTypeProduct, Rule: "page is empty"}
	}

	if page.PageType != template.PageTypeProduct {
		return &Error{
			Page: template.PageTypeProduct,
			Rule: fmt.Sprintf("expected page_type %q, got %q", template.PageTypeProduct, page.PageType),
		}
	}

	s := page.Sections
	switch {
	case s.Name == "":
		return &Error{Page: template.PageTypeProduct, Rule: "sections missing name"}
	case len(s.Ingredients) == 0:
		return &Error{Page: template.PageTypeProduct, Rule: "sections missing ingredients"}
	case len(s.Benefits) == 0:
		return &Error{Page: template.PageTypeProduct, Rule: "sections missing benefits"}
	case s.Usage == "":
		return &Error{Page: template.PageTypeProduct, Rule: "sections missing usage"}
	case s.Price == "":
		return &Error{Page: template.PageTypeProduct, Rule: "sections missing price"}
	}

	return nil
}

// ComparisonPage checks the comparison page: correct page type and exactly
// two compared products.
func (v *Validator) ComparisonPage(page *template.ComparisonPage) error {
	if page == nil {
		return &Error{Page: template.PageTypeComparison, Rule: "page is empty"}
	}

	if page.PageType != template.PageTypeComparison {
		return &Error{
			Page: template.PageTypeComparison,
			Rule: fmt.Sprintf("expected page_type %q, got %q", template.PageTypeComparison, page.PageType),
		}
	}

	if len(page.Products) != 2 {
		return &Error{
			Page: template.PageTypeComparison,
			Rule: fmt.Sprintf("must reference exactly 2 products, got %d", len(page.Products)),
		}
	}

	return nil
}

// Result validates a single committed result when it is one of the page
// types. Intermediate results (the parsed product, the question list, the
// raw input) pass through untouched.
func (v *Validator) Result(result any) error {
	switch page := result.(type) {
	case *template.FAQPage:
		return v.FAQPage(page)
	case *template.ProductPage:
		return v.ProductPage(page)
	case *template.ComparisonPage:
		return v.ComparisonPage(page)
	default:
		return nil
	}
}

// Outputs validates every page in a run's result map, visiting agents in
// name order so the first reported violation is deterministic.
func (v *Validator) Outputs(results map[string]any) error {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if err := v.Result(results[name]); err != nil {
			return fmt.Errorf("agent %q: %w", name, err)
		}
	}

	return nil
}
