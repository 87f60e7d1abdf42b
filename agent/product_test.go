package agent

import (
	"testing"

	"github.com/hupe1980/contentforge/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductAgent_Execute(t *testing.T) {
	a := NewProductAgent()
	rc := newTestRunContext(t, 0, map[string]any{NameParser: sampleProduct()})

	result, err := a.Execute(rc)
	require.NoError(t, err)

	page, ok := result.(*template.ProductPage)
	require.True(t, ok)

	assert.Equal(t, template.PageTypeProduct, page.PageType)
	assert.Equal(t, "GlowBoost Vitamin C Serum", page.Sections.Name)
	assert.Contains(t, page.Sections.Description, "GlowBoost Vitamin C Serum")
	assert.Contains(t, page.Sections.Description, "10% Vitamin C")
	assert.Contains(t, page.Sections.Description, "Vitamin C, Hyaluronic Acid")
	assert.Equal(t, []string{"Brightening", "Fades dark spots"}, page.Sections.Benefits)
	assert.Equal(t, "₹699", page.Sections.Price)
}

func TestProductAgent_IncompleteProduct(t *testing.T) {
	product := sampleProduct()
	product.Price = ""

	a := NewProductAgent()
	rc := newTestRunContext(t, 0, map[string]any{NameParser: product})

	_, err := a.Execute(rc)

	var fieldErr *template.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "price", fieldErr.Field)
}

func TestProductAgent_MissingDependency(t *testing.T) {
	a := NewProductAgent()
	rc := newTestRunContext(t, 0, nil)

	_, err := a.Execute(rc)
	assert.ErrorContains(t, err, "no committed result")
}
