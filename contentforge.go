// Package contentforge provides a high-level façade over the execution engine
// and the five content agents, enabling one-call generation of the FAQ,
// product and comparison pages for a product record. Most applications
// interact with this package by:
//  1. Creating a Pipeline via New() with a generation client
//  2. Calling Generate() with the raw product record
//  3. Writing the returned pages through a sink and validating them
//
// The façade delegates orchestration to engine.Engine while keeping setup and
// usage ergonomics concise. Defaults are safe for local development and
// testing; production deployments typically supply a structured logger and a
// provider-backed client instead of the stub.
package contentforge

import (
	"context"

	"github.com/hupe1980/contentforge/agent"
	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/engine"
	"github.com/hupe1980/contentforge/genai"
	"github.com/hupe1980/contentforge/logging"
	"github.com/hupe1980/contentforge/template"
)

// Output document names used when pages are persisted through a sink.
const (
	DocFAQ        = "faq"
	DocProduct    = "product_page"
	DocComparison = "comparison_page"
)

// Options configures the Pipeline instance.
type Options struct {
	// QuestionCount is the number of customer questions requested per run.
	QuestionCount int

	// CallBudget caps the number of generation calls a single run may issue
	// across all agents. 0 means unlimited.
	CallBudget int

	// Logger receives run and per-agent execution events.
	// Defaults to NoOp logger if nil.
	Logger logging.Logger
}

// Pipeline wires the five content agents into an execution engine. It is the
// high-level entry point for generating all marketing pages in one run.
type Pipeline struct {
	opts   Options
	engine *engine.Engine
}

// New creates a Pipeline around the given generation client. The five agents
// are registered in their canonical order (parser, questions, faq, product,
// comparison), which also fixes the sequential execution order for the
// independent agents.
func New(client genai.Client, optFns ...func(o *Options)) (*Pipeline, error) {
	opts := Options{
		QuestionCount: agent.DefaultQuestionCount,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	eng := engine.New(func(o *engine.Options) {
		o.Logger = opts.Logger
		o.CallBudget = opts.CallBudget
	})

	agents := []core.Agent{
		agent.NewParserAgent(),
		agent.NewQuestionAgent(client, func(o *agent.QuestionAgentOptions) {
			o.Count = opts.QuestionCount
		}),
		agent.NewFAQAgent(client),
		agent.NewProductAgent(),
		agent.NewComparisonAgent(client),
	}

	for _, a := range agents {
		if err := eng.Register(a); err != nil {
			return nil, err
		}
	}

	return &Pipeline{opts: opts, engine: eng}, nil
}

// Result aggregates the outcome of one pipeline run: the typed pages plus
// the full shared state snapshot for callers that need intermediate results.
type Result struct {
	Product    *core.Product
	Questions  []core.Question
	FAQ        *template.FAQPage
	ProductDoc *template.ProductPage
	Comparison *template.ComparisonPage

	// Raw holds every committed result keyed by agent identity, plus the
	// input record under core.InputKey.
	Raw map[string]any
}

// Pages returns the generated pages keyed by output document name, in the
// shape sink.WriteAll expects.
func (r *Result) Pages() map[string]any {
	return map[string]any{
		DocFAQ:        r.FAQ,
		DocProduct:    r.ProductDoc,
		DocComparison: r.Comparison,
	}
}

// Generate runs the full pipeline against the raw product record and returns
// the typed result. The run aborts on the first agent failure with the
// agent's identity wrapped in the error; AgentStatus then reports the
// failed/pending split.
func (p *Pipeline) Generate(ctx context.Context, record map[string]any) (*Result, error) {
	results, err := p.engine.ExecuteAll(ctx, record)
	if err != nil {
		return nil, err
	}

	res := &Result{Raw: results}
	res.Product, _ = results[agent.NameParser].(*core.Product)
	res.Questions, _ = results[agent.NameQuestions].([]core.Question)
	res.FAQ, _ = results[agent.NameFAQ].(*template.FAQPage)
	res.ProductDoc, _ = results[agent.NameProduct].(*template.ProductPage)
	res.Comparison, _ = results[agent.NameComparison].(*template.ComparisonPage)

	return res, nil
}

// AgentStatus returns a snapshot of every agent's current status.
func (p *Pipeline) AgentStatus() map[string]core.Status {
	return p.engine.AgentStatus()
}

// Reset returns every agent to the pending status for a fresh run.
func (p *Pipeline) Reset() {
	p.engine.Reset()
}
