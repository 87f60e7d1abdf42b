package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/internal/util"
)

// Agent identities as registered with the engine. Dependency declarations
// reference these names, so they double as the shared state keys under which
// each agent's result is committed.
const (
	NameParser     = "parser"
	NameQuestions  = "questions"
	NameFAQ        = "faq"
	NameProduct    = "product"
	NameComparison = "comparison"
)

// BaseAgent bundles identity and dependency declaration. Embed it in concrete
// agent implementations and supply an Execute method to satisfy the
// core.Agent interface. All fields are fixed at construction, so the exported
// methods are safe for concurrent use without locking.
type BaseAgent struct {
	name         string   // Engine-unique identity, also the result key
	description  string   // Detailed description of agent's purpose
	dependencies []string // Names of agents whose results must be committed first
}

// NewBaseAgent constructs a BaseAgent with generated description (customizable
// via SetDescription) and the given upstream dependencies in declaration order.
func NewBaseAgent(name string, dependencies ...string) BaseAgent {
	return BaseAgent{
		name:         name,
		description:  fmt.Sprintf("Agent %s", name),
		dependencies: dependencies,
	}
}

// Name returns the engine-unique identity for this agent.
func (b *BaseAgent) Name() string { return b.name }

// Description returns a detailed description of this agent's purpose.
func (b *BaseAgent) Description() string { return b.description }

// SetDescription updates the agent's description.
// This is useful for providing more detailed information about the agent's capabilities.
func (b *BaseAgent) SetDescription(desc string) { b.description = desc }

// Dependencies returns a copy of the declared upstream agent names.
func (b *BaseAgent) Dependencies() []string {
	deps := make([]string, len(b.dependencies))
	copy(deps, b.dependencies)

	return deps
}

// CanExecute reports whether every declared dependency is present in the
// completed set. It is a pure predicate; the engine calls it on each scan
// pass to pick the next runnable agent.
func (b *BaseAgent) CanExecute(completed map[string]bool) bool {
	for _, dep := range b.dependencies {
		if !completed[dep] {
			return false
		}
	}

	return true
}

// productResult reads the parser agent's committed result from shared state.
func productResult(rc *core.RunContext) (*core.Product, error) {
	v, err := rc.MustResult(NameParser)
	if err != nil {
		return nil, err
	}

	product, ok := v.(*core.Product)
	if !ok {
		return nil, fmt.Errorf("unexpected parser result type %T", v)
	}

	return product, nil
}

// questionsResult reads the question agent's committed result from shared state.
func questionsResult(rc *core.RunContext) ([]core.Question, error) {
	v, err := rc.MustResult(NameQuestions)
	if err != nil {
		return nil, err
	}

	questions, ok := v.([]core.Question)
	if !ok {
		return nil, fmt.Errorf("unexpected questions result type %T", v)
	}

	return questions, nil
}

// validateItems checks every decoded item against the schema, translating the
// first violation into a *core.SchemaError carrying the item index.
func validateItems(agentName string, items []map[string]any, schema map[string]any) error {
	for i, item := range items {
		if err := util.ValidateObject(item, schema); err != nil {
			var fieldErr *util.FieldError
			if errors.As(err, &fieldErr) {
				return &core.SchemaError{Agent: agentName, Field: fieldErr.Field, Index: i}
			}

			return fmt.Errorf("agent %q: item %d: %w", agentName, i, err)
		}
	}

	return nil
}

// stringField returns the string under key, or "" when absent or not a string.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// promptState flattens a product into template variables, list fields
// pre-joined for prompt interpolation.
func promptState(p *core.Product) map[string]any {
	return map[string]any{
		"name":          p.Name,
		"concentration": p.Concentration,
		"skin_types":    strings.Join(p.SkinTypes, ", "),
		"ingredients":   strings.Join(p.KeyIngredients, ", "),
		"benefits":      strings.Join(p.Benefits, ", "),
		"how_to_use":    p.HowToUse,
		"side_effects":  p.SideEffects,
		"price":         p.Price,
	}
}
