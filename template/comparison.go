package template

import "github.com/hupe1980/contentforge/core"

// ComparisonPage is the assembled two-product comparison document.
type ComparisonPage struct {
	PageType string           `json:"page_type"`
	Products []core.Product   `json:"products"`
	Metrics  []map[string]any `json:"comparison_metrics"`
}

// BuildComparisonPage assembles a comparison page for exactly two products.
func BuildComparisonPage(a, b core.Product, metrics []map[string]any) (*ComparisonPage, error) {
	if a.Name == "" {
		return nil, &FieldError{Page: PageTypeComparison, Field: "name", Index: 0}
	}
	if b.Name == "" {
		return nil, &FieldError{Page: PageTypeComparison, Field: "name", Index: 1}
	}

	if metrics == nil {
		metrics = []map[string]any{}
	}

	return &ComparisonPage{
		PageType: PageTypeComparison,
		Products: []core.Product{a, b},
		Metrics:  metrics,
	}, nil
}
