package validate

import (
	"fmt"
	"testing"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faqPageWith(n int) *template.FAQPage {
	items := make([]core.FAQItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, core.FAQItem{
			Question: fmt.Sprintf("Question %d?", i+1),
			Answer:   fmt.Sprintf("Answer %d.", i+1),
		})
	}

	return &template.FAQPage{
		PageType: template.PageTypeFAQ,
		Product:  "GlowBoost Vitamin C Serum",
		FAQs:     items,
	}
}

func TestValidator_FAQPage(t *testing.T) {
	v := New()

	assert.NoError(t, v.FAQPage(faqPageWith(15)))
	assert.NoError(t, v.FAQPage(faqPageWith(20)))
}

func TestValidator_FAQPage_BelowMinimum(t *testing.T) {
	v := New()

	err := v.FAQPage(faqPageWith(10))

	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, template.PageTypeFAQ, valErr.Page)
	assert.Contains(t, valErr.Rule, "faq count (10)")
	assert.Contains(t, valErr.Rule, "minimum (15)")
}

func TestValidator_FAQPage_CustomMinimum(t *testing.T) {
	v := New(func(o *Options) {
		o.MinFAQCount = 3
	})

	assert.NoError(t, v.FAQPage(faqPageWith(3)))
	assert.Error(t, v.FAQPage(faqPageWith(2)))
}

func TestValidator_FAQPage_EmptyAnswer(t *testing.T) {
	page := faqPageWith(15)
	page.FAQs[7].Answer = ""

	err := New().FAQPage(page)

	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Rule, "entry 7")
}

func TestValidator_FAQPage_Nil(t *testing.T) {
	err := New().FAQPage(nil)
	assert.ErrorContains(t, err, "page is empty")
}

func TestValidator_ProductPage(t *testing.T) {
	v := New()

	page := &template.ProductPage{
		PageType: template.PageTypeProduct,
		Sections: template.ProductSections{
			Name:        "GlowBoost Vitamin C Serum",
			Description: "A brightening serum.",
			Ingredients: []string{"Vitamin C", "Hyaluronic Acid"},
			Benefits:    []string{"Brightening"},
			Usage:       "Apply in the morning",
			Price:       "₹699",
		},
	}
	assert.NoError(t, v.ProductPage(page))

	page.Sections.Description = ""
	assert.NoError(t, v.ProductPage(page), "description is optional")

	page.Sections.Usage = ""
	err := v.ProductPage(page)

	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, template.PageTypeProduct, valErr.Page)
	assert.Contains(t, valErr.Rule, "usage")
}

func TestValidator_ComparisonPage(t *testing.T) {
	v := New()

	page := &template.ComparisonPage{
		PageType: template.PageTypeComparison,
		Products: []core.Product{{Name: "A"}, {Name: "B"}},
		Metrics:  []map[string]any{{"recommendation": "A"}},
	}
	assert.NoError(t, v.ComparisonPage(page))

	page.Products = page.Products[:1]
	err := v.ComparisonPage(page)

	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Rule, "exactly 2 products, got 1")
}

func TestValidator_PageTypeMismatch(t *testing.T) {
	page := faqPageWith(15)
	page.PageType = "product"

	err := New().FAQPage(page)
	assert.ErrorContains(t, err, `expected page_type "faq"`)
}

func TestValidator_Outputs(t *testing.T) {
	v := New(func(o *Options) {
		o.MinFAQCount = 1
	})

	results := map[string]any{
		"input":  map[string]any{"name": "Serum"},
		"parser": &core.Product{Name: "Serum"},
		"faq":    faqPageWith(1),
		"comparison": &template.ComparisonPage{
			PageType: template.PageTypeComparison,
			Products: []core.Product{{Name: "A"}, {Name: "B"}},
		},
	}
	assert.NoError(t, v.Outputs(results))

	results["faq"] = faqPageWith(0)
	err := v.Outputs(results)
	assert.ErrorContains(t, err, `agent "faq"`)

	var valErr *Error
	assert.ErrorAs(t, err, &valErr)
}
