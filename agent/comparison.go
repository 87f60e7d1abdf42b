package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/genai"
	"github.com/hupe1980/contentforge/internal/util"
	"github.com/hupe1980/contentforge/template"
)

// Token caps for the two comparison calls. Competitor synthesis is a compact
// single object; the analysis carries nested metric sections.
const (
	DefaultCompetitorMaxTokens = 800
	DefaultAnalysisMaxTokens   = 1200
)

const competitorSystemPrompt = `You are a product data specialist. Create realistic fictional competitor products for comparison.`

const competitorUserPromptTemplate = `Given this real product:
Name: {{.name}}
Concentration: {{.concentration}}
Skin Type: {{.skin_types}}
Ingredients: {{.ingredients}}
Benefits: {{.benefits}}
Price: {{.price}}

Create a fictional competitor product (Product B) with this exact JSON structure:
{
  "name": "fictional product name (similar category but different brand)",
  "concentration": "different concentration of similar active ingredient",
  "skin_type": ["different skin types"],
  "key_ingredients": ["3-4 ingredients, some overlapping, some unique"],
  "benefits": ["2-3 benefits, some similar, some different"],
  "how_to_use": "usage instructions",
  "side_effects": "potential side effects",
  "price": "price in ₹ (make it 15-30% different)"
}

Make it realistic and competitive. Return ONLY valid JSON.`

const analysisSystemPrompt = `You are a product comparison expert. Analyze and compare skincare products objectively.`

const analysisUserPromptTemplate = `Compare these two products:

Product A: {{.a_name}}
- Concentration: {{.a_concentration}}
- Ingredients: {{.a_ingredients}}
- Benefits: {{.a_benefits}}
- Price: {{.a_price}}
- Skin Type: {{.a_skin_types}}

Product B: {{.b_name}}
- Concentration: {{.b_concentration}}
- Ingredients: {{.b_ingredients}}
- Benefits: {{.b_benefits}}
- Price: {{.b_price}}
- Skin Type: {{.b_skin_types}}

Generate a JSON comparison with:
{
  "ingredient_comparison": {
    "common": ["shared ingredients"],
    "unique_to_a": ["ingredients only in A"],
    "unique_to_b": ["ingredients only in B"],
    "analysis": "2 sentence comparison of ingredient profiles"
  },
  "price_comparison": {
    "price_difference": "₹ amount and percentage",
    "value_assessment": "which offers better value and why (2 sentences)"
  },
  "effectiveness_comparison": {
    "concentration_analysis": "comparison of active ingredient concentrations",
    "benefit_overlap": ["shared benefits"],
    "unique_benefits_a": ["benefits unique to A"],
    "unique_benefits_b": ["benefits unique to B"]
  },
  "recommendation": "1-2 sentences on which product suits which skin type/concern better"
}

Return ONLY valid JSON.`

// competitorDefaults backfill fields the generation service leaves missing or
// blank, so the competitor record always decodes into a complete product.
var competitorDefaults = map[string]any{
	"name":            "Competitor Vitamin C Serum",
	"concentration":   "15% Vitamin C",
	"skin_type":       []any{"Normal", "Dry"},
	"key_ingredients": []any{"Vitamin C", "Vitamin E"},
	"benefits":        []any{"Brightening", "Anti-aging"},
	"how_to_use":      "Apply 2-3 drops daily",
	"side_effects":    "May cause mild irritation",
	"price":           "₹799",
}

// ComparisonAgentOptions configures a ComparisonAgent.
type ComparisonAgentOptions struct {
	// CompetitorMaxTokens caps the competitor synthesis completion.
	CompetitorMaxTokens int

	// AnalysisMaxTokens caps the comparison analysis completion.
	AnalysisMaxTokens int
}

// ComparisonAgent builds the comparison page in two generation calls: first a
// fictional competitor product grounded in the parsed record, then a metric
// analysis of the two. It depends on the parser agent only.
type ComparisonAgent struct {
	BaseAgent

	client              genai.Client
	competitorMaxTokens int
	analysisMaxTokens   int
}

// NewComparisonAgent constructs a ComparisonAgent backed by the given client.
func NewComparisonAgent(client genai.Client, optFns ...func(o *ComparisonAgentOptions)) *ComparisonAgent {
	opts := ComparisonAgentOptions{
		CompetitorMaxTokens: DefaultCompetitorMaxTokens,
		AnalysisMaxTokens:   DefaultAnalysisMaxTokens,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	a := &ComparisonAgent{
		BaseAgent:           NewBaseAgent(NameComparison, NameParser),
		client:              client,
		competitorMaxTokens: opts.CompetitorMaxTokens,
		analysisMaxTokens:   opts.AnalysisMaxTokens,
	}
	a.SetDescription("Synthesizes a competitor and assembles the comparison page")

	return a
}

// Execute implements core.Agent.
func (a *ComparisonAgent) Execute(rc *core.RunContext) (any, error) {
	productA, err := productResult(rc)
	if err != nil {
		return nil, err
	}

	productB, err := a.generateCompetitor(rc, productA)
	if err != nil {
		return nil, err
	}

	metrics, err := a.generateAnalysis(rc, productA, productB)
	if err != nil {
		return nil, err
	}

	page, err := template.BuildComparisonPage(*productA, *productB, []map[string]any{metrics})
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}

	rc.LogInfo("Assembled comparison page", "agent", a.Name(), "competitor", productB.Name)

	return page, nil
}

// generateCompetitor runs the first call and decodes the fictional product,
// backfilling defaults for any field the service omitted.
func (a *ComparisonAgent) generateCompetitor(rc *core.RunContext, productA *core.Product) (*core.Product, error) {
	if err := rc.ReserveCall(); err != nil {
		return nil, err
	}

	user, err := util.RenderTemplate(competitorUserPromptTemplate, promptState(productA))
	if err != nil {
		return nil, fmt.Errorf("agent %q: render competitor prompt: %w", a.Name(), err)
	}

	var record map[string]any
	if err := a.client.GenerateStructured(rc.Context, competitorSystemPrompt, user, a.competitorMaxTokens, &record); err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}

	fillCompetitorDefaults(record)

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("agent %q: encode competitor record: %w", a.Name(), err)
	}

	var productB core.Product
	if err := json.Unmarshal(raw, &productB); err != nil {
		return nil, fmt.Errorf("agent %q: decode competitor record: %w", a.Name(), err)
	}

	return &productB, nil
}

// generateAnalysis runs the second call and returns the decoded metric object.
func (a *ComparisonAgent) generateAnalysis(rc *core.RunContext, productA, productB *core.Product) (map[string]any, error) {
	if err := rc.ReserveCall(); err != nil {
		return nil, err
	}

	state := make(map[string]any)
	for k, v := range promptState(productA) {
		state["a_"+k] = v
	}

	for k, v := range promptState(productB) {
		state["b_"+k] = v
	}

	user, err := util.RenderTemplate(analysisUserPromptTemplate, state)
	if err != nil {
		return nil, fmt.Errorf("agent %q: render analysis prompt: %w", a.Name(), err)
	}

	var metrics map[string]any
	if err := a.client.GenerateStructured(rc.Context, analysisSystemPrompt, user, a.analysisMaxTokens, &metrics); err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}

	return metrics, nil
}

// fillCompetitorDefaults replaces missing, nil, blank-string and empty-list
// fields with the canonical competitor values.
func fillCompetitorDefaults(record map[string]any) {
	for key, def := range competitorDefaults {
		v, ok := record[key]
		if !ok || v == nil {
			record[key] = def
			continue
		}

		switch value := v.(type) {
		case string:
			if strings.TrimSpace(value) == "" {
				record[key] = def
			}
		case []any:
			if len(value) == 0 {
				record[key] = def
			}
		}
	}
}
