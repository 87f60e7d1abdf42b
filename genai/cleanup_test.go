package genai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_PlainObject(t *testing.T) {
	var out map[string]any

	err := DecodeJSON(`{"name": "GlowBoost", "price": "₹699"}`, &out)

	require.NoError(t, err)
	assert.Equal(t, "GlowBoost", out["name"])
	assert.Equal(t, "₹699", out["price"])
}

func TestDecodeJSON_FencedPayload(t *testing.T) {
	raw := "```json\n[{\"text\": \"Is it safe?\", \"category\": \"safety\"}]\n```"

	var out []map[string]any

	err := DecodeJSON(raw, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "safety", out[0]["category"])
}

func TestDecodeJSON_ProseFraming(t *testing.T) {
	raw := "Here are the questions you asked for:\n[{\"text\": \"q1\", \"category\": \"usage\"}]\nLet me know if you need more."

	var out []map[string]any

	err := DecodeJSON(raw, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "q1", out[0]["text"])
}

func TestDecodeJSON_BracketsInsideStrings(t *testing.T) {
	raw := `{"question": "What does [10%] mean?", "answer": "Concentration {by volume}"}`

	var out map[string]any

	err := DecodeJSON(raw, &out)

	require.NoError(t, err)
	assert.Equal(t, "What does [10%] mean?", out["question"])
}

func TestDecodeJSON_RepairsTrailingComma(t *testing.T) {
	raw := `{"name": "GlowBoost", "benefits": ["Brightening", "Fades dark spots",],}`

	var out map[string]any

	err := DecodeJSON(raw, &out)

	require.NoError(t, err)
	assert.Equal(t, "GlowBoost", out["name"])
}

func TestDecodeJSON_GarbageFails(t *testing.T) {
	var out map[string]any

	err := DecodeJSON("I could not generate anything useful.", &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestDecodeJSON_EmptyFails(t *testing.T) {
	var out map[string]any

	err := DecodeJSON("   \n  ", &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestStripFences_LanguageTag(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripFences(`{"a": 1}`))
}
