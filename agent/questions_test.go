package agent

import (
	"testing"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionAgent_Execute(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`[
		{"id": "q1", "text": "Is it safe for oily skin?", "category": "SAFETY"},
		{"text": "How often should I apply it?", "category": "usage"},
		{"text": "What does the Vitamin C concentration mean?", "category": "informational"}
	]`)

	a := NewQuestionAgent(genai.NewGenerator(stub), func(o *QuestionAgentOptions) {
		o.Count = 3
	})
	rc := newTestRunContext(t, 5, map[string]any{NameParser: sampleProduct()})

	result, err := a.Execute(rc)
	require.NoError(t, err)

	questions, ok := result.([]core.Question)
	require.True(t, ok)
	require.Len(t, questions, 3)

	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "safety", questions[0].Category, "categories are normalized to lower case")
	assert.Equal(t, "q2", questions[1].ID, "missing IDs are synthesized from the position")
	assert.Equal(t, "q3", questions[2].ID)

	assert.Equal(t, 1, rc.Budget.Count())

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].User, "Generate exactly 3 customer questions")
	assert.Contains(t, calls[0].User, "GlowBoost Vitamin C Serum")
	assert.Contains(t, calls[0].User, "informational, safety, usage, purchase, comparison")
	assert.Contains(t, calls[0].System, "valid JSON only")
}

func TestQuestionAgent_MissingCategory(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`[{"id": "q1", "text": "Is it safe?"}]`)

	a := NewQuestionAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{NameParser: sampleProduct()})

	_, err := a.Execute(rc)

	var schemaErr *core.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, NameQuestions, schemaErr.Agent)
	assert.Equal(t, "category", schemaErr.Field)
	assert.Equal(t, 0, schemaErr.Index)
}

func TestQuestionAgent_MalformedResponse(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`the model rambled instead of answering`)

	a := NewQuestionAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{NameParser: sampleProduct()})

	_, err := a.Execute(rc)
	assert.ErrorIs(t, err, genai.ErrMalformedResponse)
}

func TestQuestionAgent_MissingDependency(t *testing.T) {
	a := NewQuestionAgent(genai.NewGenerator(genai.NewStubProvider()))
	rc := newTestRunContext(t, 5, nil)

	_, err := a.Execute(rc)
	assert.ErrorContains(t, err, "no committed result")
}

func TestQuestionAgent_BudgetExhausted(t *testing.T) {
	stub := genai.NewStubProvider()

	a := NewQuestionAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 1, map[string]any{NameParser: sampleProduct()})
	require.NoError(t, rc.ReserveCall())

	_, err := a.Execute(rc)
	assert.ErrorContains(t, err, "exceeded max generation calls")
	assert.Empty(t, stub.Calls(), "exhausted budget must stop the call before the provider")
}
