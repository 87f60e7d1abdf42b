package core

// InputKey is the reserved shared state key holding the raw input record
// handed to ExecuteAll. No agent may register under this name.
const InputKey = "input"

// Product is the normalized product record produced by the parser agent and
// consumed by every downstream agent. JSON tags follow the dataset format.
type Product struct {
	Name           string   `json:"name"`
	Concentration  string   `json:"concentration"`
	SkinTypes      []string `json:"skin_type"`
	KeyIngredients []string `json:"key_ingredients"`
	Benefits       []string `json:"benefits"`
	HowToUse       string   `json:"how_to_use"`
	SideEffects    string   `json:"side_effects,omitempty"`
	Price          string   `json:"price"`
}

// Question is a single categorized customer question generated for a product.
// Text and Category are required in generated items; IDs are synthesized when
// the generation service omits them.
type Question struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Answer   string `json:"answer,omitempty"`
}

// FAQItem pairs a question with its generated answer.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Question categories used by the question generation prompt. Unknown
// categories returned by the service are lower-cased and kept verbatim.
const (
	CategoryInformational = "informational"
	CategorySafety        = "safety"
	CategoryUsage         = "usage"
	CategoryPurchase      = "purchase"
	CategoryComparison    = "comparison"
)

// QuestionCategories lists the categories in prompt order.
func QuestionCategories() []string {
	return []string{CategoryInformational, CategorySafety, CategoryUsage, CategoryPurchase, CategoryComparison}
}
