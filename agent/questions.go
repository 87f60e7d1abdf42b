package agent

import (
	"fmt"
	"strings"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/genai"
	"github.com/hupe1980/contentforge/internal/util"
)

// DefaultQuestionCount is the number of questions requested per run.
const DefaultQuestionCount = 15

const questionSystemPrompt = `You are a skincare customer insights specialist.
Generate realistic questions potential buyers would ask about a product.
Keep every question specific to the product data provided.`

const questionUserPromptTemplate = `Generate exactly {{.count}} customer questions for this product:

Product Data:
Name: {{.name}}
Concentration: {{.concentration}}
Skin Type: {{.skin_types}}
Ingredients: {{.ingredients}}
Benefits: {{.benefits}}
Usage: {{.how_to_use}}
Side Effects: {{.side_effects}}
Price: {{.price}}

Spread the questions across these categories: {{.categories}}.

Return a JSON array with this structure:
[
  {"id": "q1", "text": "question text", "category": "one of the categories"},
  ...
]

Base all questions on the product data provided. Return ONLY valid JSON.`

// QuestionAgentOptions configures a QuestionAgent.
type QuestionAgentOptions struct {
	// Count is the number of questions requested from the generation service.
	Count int

	// MaxTokens caps the completion size, 0 uses the provider default.
	MaxTokens int
}

// QuestionAgent generates categorized customer questions for the parsed
// product in a single structured generation call. It depends on the parser
// agent.
type QuestionAgent struct {
	BaseAgent

	client    genai.Client
	count     int
	maxTokens int
}

// NewQuestionAgent constructs a QuestionAgent backed by the given client.
func NewQuestionAgent(client genai.Client, optFns ...func(o *QuestionAgentOptions)) *QuestionAgent {
	opts := QuestionAgentOptions{
		Count: DefaultQuestionCount,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	a := &QuestionAgent{
		BaseAgent: NewBaseAgent(NameQuestions, NameParser),
		client:    client,
		count:     opts.Count,
		maxTokens: opts.MaxTokens,
	}
	a.SetDescription("Generates categorized customer questions for the parsed product")

	return a
}

// Execute implements core.Agent.
func (a *QuestionAgent) Execute(rc *core.RunContext) (any, error) {
	product, err := productResult(rc)
	if err != nil {
		return nil, err
	}

	if err := rc.ReserveCall(); err != nil {
		return nil, err
	}

	state := promptState(product)
	state["count"] = a.count
	state["categories"] = strings.Join(core.QuestionCategories(), ", ")

	user, err := util.RenderTemplate(questionUserPromptTemplate, state)
	if err != nil {
		return nil, fmt.Errorf("agent %q: render prompt: %w", a.Name(), err)
	}

	var items []map[string]any
	if err := a.client.GenerateStructured(rc.Context, questionSystemPrompt, user, a.maxTokens, &items); err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}

	if err := validateItems(a.Name(), items, util.CreateSchema(core.Question{})); err != nil {
		return nil, err
	}

	questions := make([]core.Question, 0, len(items))

	for i, item := range items {
		q := core.Question{
			ID:       stringField(item, "id"),
			Text:     stringField(item, "text"),
			Category: strings.ToLower(stringField(item, "category")),
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i+1)
		}

		questions = append(questions, q)
	}

	rc.LogInfo("Generated questions", "agent", a.Name(), "count", len(questions))

	return questions, nil
}
