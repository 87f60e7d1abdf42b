package agent

import (
	"fmt"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/internal/util"
	"github.com/hupe1980/contentforge/template"
)

const productDescriptionTemplate = `{{.name}} is a {{.concentration}} serum formulated for {{.skin_types}} skin. Key ingredients: {{.ingredients}}. Benefits: {{.benefits}}.`

// ProductAgent assembles the product detail page from the parsed record. It
// depends on the parser agent only and performs no external calls; the page
// description is composed locally from the product fields.
type ProductAgent struct {
	BaseAgent
}

// NewProductAgent constructs a ProductAgent.
func NewProductAgent() *ProductAgent {
	a := &ProductAgent{
		BaseAgent: NewBaseAgent(NameProduct, NameParser),
	}
	a.SetDescription("Assembles the product detail page from the parsed record")

	return a
}

// Execute implements core.Agent.
func (a *ProductAgent) Execute(rc *core.RunContext) (any, error) {
	product, err := productResult(rc)
	if err != nil {
		return nil, err
	}

	description, err := util.RenderTemplate(productDescriptionTemplate, promptState(product))
	if err != nil {
		return nil, fmt.Errorf("agent %q: render description: %w", a.Name(), err)
	}

	page, err := template.BuildProductPage(product, description)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}

	rc.LogInfo("Assembled product page", "agent", a.Name(), "product", product.Name)

	return page, nil
}
