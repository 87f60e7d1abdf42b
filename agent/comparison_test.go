package agent

import (
	"testing"

	"github.com/hupe1980/contentforge/genai"
	"github.com/hupe1980/contentforge/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonAgent_Execute(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`{
		"name": "RadiantGlow Vitamin C Elixir",
		"concentration": "15% Vitamin C",
		"skin_type": ["Normal", "Dry"],
		"key_ingredients": ["Vitamin C", "Ferulic Acid", "Vitamin E"],
		"benefits": ["Brightening", "Firming"],
		"how_to_use": "Apply 4-5 drops nightly",
		"side_effects": "May cause purging in the first week",
		"price": "₹899"
	}`)
	stub.Enqueue(`{
		"ingredient_comparison": {"common": ["Vitamin C"], "analysis": "Both lead with Vitamin C."},
		"price_comparison": {"price_difference": "₹200 (29%)"},
		"effectiveness_comparison": {"concentration_analysis": "B is stronger."},
		"recommendation": "Product A suits oily skin better."
	}`)

	a := NewComparisonAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{NameParser: sampleProduct()})

	result, err := a.Execute(rc)
	require.NoError(t, err)

	page, ok := result.(*template.ComparisonPage)
	require.True(t, ok)

	assert.Equal(t, template.PageTypeComparison, page.PageType)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "GlowBoost Vitamin C Serum", page.Products[0].Name)
	assert.Equal(t, "RadiantGlow Vitamin C Elixir", page.Products[1].Name)
	require.Len(t, page.Metrics, 1)
	assert.Contains(t, page.Metrics[0], "recommendation")

	assert.Equal(t, 2, rc.Budget.Count())

	calls := stub.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, DefaultCompetitorMaxTokens, calls[0].MaxTokens)
	assert.Equal(t, DefaultAnalysisMaxTokens, calls[1].MaxTokens)
	assert.Contains(t, calls[0].User, "Given this real product:")
	assert.Contains(t, calls[1].User, "Product A: GlowBoost Vitamin C Serum")
	assert.Contains(t, calls[1].User, "Product B: RadiantGlow Vitamin C Elixir")
}

func TestComparisonAgent_CompetitorDefaults(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`{"name": "BrightLift Serum", "price": "", "skin_type": []}`)
	stub.Enqueue(`{"recommendation": "Either works."}`)

	a := NewComparisonAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{NameParser: sampleProduct()})

	result, err := a.Execute(rc)
	require.NoError(t, err)

	page := result.(*template.ComparisonPage)
	competitor := page.Products[1]

	assert.Equal(t, "BrightLift Serum", competitor.Name, "provided values are kept")
	assert.Equal(t, "₹799", competitor.Price, "blank strings are backfilled")
	assert.Equal(t, []string{"Normal", "Dry"}, competitor.SkinTypes, "empty lists are backfilled")
	assert.Equal(t, "15% Vitamin C", competitor.Concentration, "missing fields are backfilled")
	assert.Equal(t, "Apply 2-3 drops daily", competitor.HowToUse)
}

func TestComparisonAgent_MalformedCompetitor(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`sorry, I cannot produce a competitor today`)

	a := NewComparisonAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{NameParser: sampleProduct()})

	_, err := a.Execute(rc)

	assert.ErrorIs(t, err, genai.ErrMalformedResponse)
	assert.Len(t, stub.Calls(), 1, "analysis call must not run after a failed synthesis")
}

func TestComparisonAgent_BudgetCoversBothCalls(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`{"name": "BrightLift Serum"}`)

	a := NewComparisonAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 1, map[string]any{NameParser: sampleProduct()})

	_, err := a.Execute(rc)

	assert.ErrorContains(t, err, "exceeded max generation calls")
	assert.Len(t, stub.Calls(), 1, "second reservation must fail before the provider call")
}
