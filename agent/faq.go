package agent

import (
	"fmt"
	"strings"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/genai"
	"github.com/hupe1980/contentforge/internal/util"
	"github.com/hupe1980/contentforge/template"
)

// DefaultFAQMaxTokens caps the FAQ completion.
const DefaultFAQMaxTokens = 2000

const faqSystemPrompt = `You are a skincare product expert and customer service specialist.
Generate helpful, accurate, and engaging FAQ answers based on product data.
Answers should be informative yet concise (2-4 sentences each).`

const faqUserPromptTemplate = `Generate FAQ answers for this product:

Product Data:
Name: {{.name}}
Concentration: {{.concentration}}
Skin Type: {{.skin_types}}
Ingredients: {{.ingredients}}
Benefits: {{.benefits}}
Usage: {{.how_to_use}}
Side Effects: {{.side_effects}}
Price: {{.price}}

Questions to answer:
{{.questions}}

Return a JSON array with this structure:
[
  {"question": "exact question text", "answer": "helpful answer based on product data"},
  ...
]

Base all answers on the product data provided. Be helpful and accurate. Return ONLY valid JSON.`

// FAQAgentOptions configures an FAQAgent.
type FAQAgentOptions struct {
	// MaxTokens caps the completion size.
	MaxTokens int
}

// FAQAgent answers every generated question against the product record in a
// single structured generation call and assembles the FAQ page. It depends on
// the parser and question agents and guarantees its output carries one answer
// per supplied question.
type FAQAgent struct {
	BaseAgent

	client    genai.Client
	maxTokens int
}

// NewFAQAgent constructs an FAQAgent backed by the given client.
func NewFAQAgent(client genai.Client, optFns ...func(o *FAQAgentOptions)) *FAQAgent {
	opts := FAQAgentOptions{
		MaxTokens: DefaultFAQMaxTokens,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	a := &FAQAgent{
		BaseAgent: NewBaseAgent(NameFAQ, NameParser, NameQuestions),
		client:    client,
		maxTokens: opts.MaxTokens,
	}
	a.SetDescription("Answers generated customer questions and assembles the FAQ page")

	return a
}

// Execute implements core.Agent.
func (a *FAQAgent) Execute(rc *core.RunContext) (any, error) {
	product, err := productResult(rc)
	if err != nil {
		return nil, err
	}

	questions, err := questionsResult(rc)
	if err != nil {
		return nil, err
	}

	if err := rc.ReserveCall(); err != nil {
		return nil, err
	}

	state := promptState(product)
	state["questions"] = formatQuestions(questions)

	user, err := util.RenderTemplate(faqUserPromptTemplate, state)
	if err != nil {
		return nil, fmt.Errorf("agent %q: render prompt: %w", a.Name(), err)
	}

	var items []map[string]any
	if err := a.client.GenerateStructured(rc.Context, faqSystemPrompt, user, a.maxTokens, &items); err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}

	if len(items) != len(questions) {
		return nil, &core.GenerationError{
			Agent:  a.Name(),
			Reason: fmt.Sprintf("generated %d answers for %d questions", len(items), len(questions)),
		}
	}

	if err := validateItems(a.Name(), items, util.CreateSchema(core.FAQItem{})); err != nil {
		return nil, err
	}

	faqItems := make([]core.FAQItem, 0, len(items))
	for _, item := range items {
		faqItems = append(faqItems, core.FAQItem{
			Question: stringField(item, "question"),
			Answer:   stringField(item, "answer"),
		})
	}

	page, err := template.BuildFAQPage(product.Name, faqItems)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}

	rc.LogInfo("Assembled FAQ page", "agent", a.Name(), "faqs", len(page.FAQs))

	return page, nil
}

// formatQuestions renders questions as a numbered list with category markers,
// one per line, the shape the answer prompt expects.
func formatQuestions(questions []core.Question) string {
	lines := make([]string, 0, len(questions))
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s", i+1, q.Category, q.Text))
	}

	return strings.Join(lines, "\n")
}
