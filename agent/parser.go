package agent

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/internal/util"
)

// defaultSideEffects fills the one optional product field when the dataset
// omits it.
const defaultSideEffects = "None reported"

// ParserAgent normalizes the raw input record into the typed product model
// every downstream agent consumes. It has no dependencies and performs no
// external calls, so it is always the first agent to run.
type ParserAgent struct {
	BaseAgent
}

// NewParserAgent constructs a ParserAgent.
func NewParserAgent() *ParserAgent {
	a := &ParserAgent{
		BaseAgent: NewBaseAgent(NameParser),
	}
	a.SetDescription("Normalizes the raw product record into the typed product model")

	return a
}

// Execute implements core.Agent.
func (a *ParserAgent) Execute(rc *core.RunContext) (any, error) {
	record, ok := rc.Input()
	if !ok {
		return nil, fmt.Errorf("agent %q: no input record in shared state", a.Name())
	}

	product, err := ParseProduct(record)
	if err != nil {
		return nil, err
	}

	rc.LogInfo("Parsed product record", "agent", a.Name(), "product", product.Name)

	return product, nil
}

// ParseProduct validates a raw product record and converts it into the typed
// model. Every field except side_effects is required; a missing field is
// reported as a *core.SchemaError. Absent side effects default to
// "None reported".
func ParseProduct(record map[string]any) (*core.Product, error) {
	schema := util.CreateSchema(core.Product{})

	if err := util.ValidateObject(record, schema); err != nil {
		var fieldErr *util.FieldError
		if errors.As(err, &fieldErr) {
			return nil, &core.SchemaError{Agent: NameParser, Field: fieldErr.Field, Index: -1}
		}

		return nil, fmt.Errorf("agent %q: %w", NameParser, err)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("agent %q: encode product record: %w", NameParser, err)
	}

	var product core.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, fmt.Errorf("agent %q: decode product record: %w", NameParser, err)
	}

	if product.SideEffects == "" {
		product.SideEffects = defaultSideEffects
	}

	return &product, nil
}
