package template

import "github.com/hupe1980/contentforge/core"

// FAQPage is the assembled FAQ document.
type FAQPage struct {
	PageType string         `json:"page_type"`
	Product  string         `json:"product,omitempty"`
	FAQs     []core.FAQItem `json:"faqs"`
}

// BuildFAQPage assembles an FAQ page from generated question/answer pairs.
// Every item must carry both a question and an answer.
func BuildFAQPage(product string, items []core.FAQItem) (*FAQPage, error) {
	for i, item := range items {
		if item.Question == "" {
			return nil, &FieldError{Page: PageTypeFAQ, Field: "question", Index: i}
		}
		if item.Answer == "" {
			return nil, &FieldError{Page: PageTypeFAQ, Field: "answer", Index: i}
		}
	}

	return &FAQPage{
		PageType: PageTypeFAQ,
		Product:  product,
		FAQs:     items,
	}, nil
}
