package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProductRecord returns the sample product record used as pipeline input in
// tests and examples.
func ProductRecord() map[string]any {
	return map[string]any{
		"name":            "GlowBoost Vitamin C Serum",
		"concentration":   "10% Vitamin C",
		"skin_type":       []any{"Oily", "Combination"},
		"key_ingredients": []any{"Vitamin C", "Hyaluronic Acid"},
		"benefits":        []any{"Brightening", "Fades dark spots"},
		"how_to_use":      "Apply 2-3 drops in the morning before sunscreen",
		"side_effects":    "Mild tingling for sensitive skin",
		"price":           "₹699",
	}
}

// questionCategories mirrors the categories the question prompt asks for.
var questionCategories = []string{"informational", "safety", "usage", "purchase", "comparison"}

// QuestionsJSON returns a canned question-generation payload with n items
// cycling through the five categories.
func QuestionsJSON(n int) string {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"id":       fmt.Sprintf("q%d", i+1),
			"text":     fmt.Sprintf("Question %d about the serum?", i+1),
			"category": questionCategories[i%len(questionCategories)],
		}
	}

	return mustJSON(items)
}

// FAQAnswersJSON returns a canned FAQ payload answering n questions, matching
// the question texts produced by QuestionsJSON.
func FAQAnswersJSON(n int) string {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"question": fmt.Sprintf("Question %d about the serum?", i+1),
			"answer":   fmt.Sprintf("Answer %d based on the product data.", i+1),
		}
	}

	return mustJSON(items)
}

// CompetitorJSON returns a canned competitor-synthesis payload. Fields listed
// in omit are left out so default-filling paths can be exercised.
func CompetitorJSON(omit ...string) string {
	record := map[string]any{
		"name":            "RadiantC Brightening Serum",
		"concentration":   "12% Vitamin C",
		"skin_type":       []any{"Normal", "Dry"},
		"key_ingredients": []any{"Vitamin C", "Niacinamide", "Vitamin E"},
		"benefits":        []any{"Brightening", "Even tone"},
		"how_to_use":      "Apply 3-4 drops at night",
		"side_effects":    "May cause dryness",
		"price":           "₹849",
	}

	for _, field := range omit {
		delete(record, field)
	}

	return mustJSON(record)
}

// AnalysisJSON returns a canned comparison-analysis payload.
func AnalysisJSON() string {
	return mustJSON(map[string]any{
		"ingredient_comparison": map[string]any{
			"common":      []any{"Vitamin C"},
			"unique_to_a": []any{"Hyaluronic Acid"},
			"unique_to_b": []any{"Niacinamide", "Vitamin E"},
			"analysis":    "Both lead with Vitamin C. Product B adds niacinamide for tone.",
		},
		"price_comparison": map[string]any{
			"price_difference": "₹150 (21%)",
			"value_assessment": "Product A costs less per application. Product B offers more actives.",
		},
		"effectiveness_comparison": map[string]any{
			"concentration_analysis": "B carries a slightly higher concentration.",
			"benefit_overlap":        []any{"Brightening"},
			"unique_benefits_a":      []any{"Fades dark spots"},
			"unique_benefits_b":      []any{"Even tone"},
		},
		"recommendation": "Product A suits oily skin on a budget; B suits dry skin.",
	})
}

// Fenced wraps a payload in markdown code fences the way generation services
// often do despite being told not to.
func Fenced(payload string) string {
	return strings.Join([]string{"```json", payload, "```"}, "\n")
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return string(data)
}
