package agent

import (
	"testing"

	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/genai"
	"github.com/hupe1980/contentforge/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faqQuestions() []core.Question {
	return []core.Question{
		{ID: "q1", Text: "Is it safe for oily skin?", Category: "safety"},
		{ID: "q2", Text: "How often should I apply it?", Category: "usage"},
	}
}

func TestFAQAgent_Execute(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`[
		{"question": "Is it safe for oily skin?", "answer": "Yes, the 10% concentration suits oily and combination skin."},
		{"question": "How often should I apply it?", "answer": "Apply 2-3 drops every morning before sunscreen."}
	]`)

	a := NewFAQAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{
		NameParser:    sampleProduct(),
		NameQuestions: faqQuestions(),
	})

	result, err := a.Execute(rc)
	require.NoError(t, err)

	page, ok := result.(*template.FAQPage)
	require.True(t, ok)

	assert.Equal(t, template.PageTypeFAQ, page.PageType)
	assert.Equal(t, "GlowBoost Vitamin C Serum", page.Product)
	require.Len(t, page.FAQs, 2)
	assert.Equal(t, "Is it safe for oily skin?", page.FAQs[0].Question)
	assert.NotEmpty(t, page.FAQs[0].Answer)

	assert.Equal(t, 1, rc.Budget.Count())

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, DefaultFAQMaxTokens, calls[0].MaxTokens)
	assert.Contains(t, calls[0].User, "1. [safety] Is it safe for oily skin?")
	assert.Contains(t, calls[0].User, "2. [usage] How often should I apply it?")
}

func TestFAQAgent_AnswerCountMismatch(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`[{"question": "Is it safe for oily skin?", "answer": "Yes."}]`)

	a := NewFAQAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{
		NameParser:    sampleProduct(),
		NameQuestions: faqQuestions(),
	})

	_, err := a.Execute(rc)

	var genErr *core.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, NameFAQ, genErr.Agent)
	assert.Contains(t, genErr.Error(), "1 answers for 2 questions")
}

func TestFAQAgent_MissingAnswer(t *testing.T) {
	stub := genai.NewStubProvider()
	stub.Enqueue(`[
		{"question": "Is it safe for oily skin?"},
		{"question": "How often should I apply it?", "answer": "Every morning."}
	]`)

	a := NewFAQAgent(genai.NewGenerator(stub))
	rc := newTestRunContext(t, 5, map[string]any{
		NameParser:    sampleProduct(),
		NameQuestions: faqQuestions(),
	})

	_, err := a.Execute(rc)

	var schemaErr *core.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, NameFAQ, schemaErr.Agent)
	assert.Equal(t, "answer", schemaErr.Field)
	assert.Equal(t, 0, schemaErr.Index)
}

func TestFAQAgent_MissingQuestionsDependency(t *testing.T) {
	a := NewFAQAgent(genai.NewGenerator(genai.NewStubProvider()))
	rc := newTestRunContext(t, 5, map[string]any{NameParser: sampleProduct()})

	_, err := a.Execute(rc)
	assert.ErrorContains(t, err, "no committed result")
}
