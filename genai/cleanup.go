package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// DecodeJSON normalizes raw model output and decodes it into v. Models wrap
// JSON in markdown fences, prefix it with prose or trail it with commentary,
// and occasionally emit broken JSON (trailing commas, single quotes). The
// pipeline is:
//
//  1. strip markdown code fences
//  2. extract the first balanced [...] or {...} span
//  3. json.Unmarshal
//  4. on failure, one jsonrepair pass, then json.Unmarshal again
//
// A payload that survives none of this fails with ErrMalformedResponse.
func DecodeJSON(raw string, v any) error {
	cleaned := stripFences(raw)

	if span, ok := extractJSONSpan(cleaned); ok {
		cleaned = span
	}

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedResponse, firstLine(raw))
	}

	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedResponse, firstLine(raw))
	}

	return nil
}

// stripFences removes markdown code fences (``` or ```json) around a payload.
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.Contains(s, "```") {
		return s
	}

	// Drop everything up to and including the opening fence marker, then cut
	// at the closing fence. A lone fence just gets removed.
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		// Skip an optional language tag like "json" on the fence line.
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			firstLine := strings.TrimSpace(s[:nl])
			if firstLine == "json" || firstLine == "JSON" || firstLine == "" {
				s = s[nl+1:]
			}
		}
	}

	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// extractJSONSpan returns the first balanced top-level [...] or {...} span.
// Brackets inside JSON strings are ignored; escaped quotes are handled.
func extractJSONSpan(s string) (string, bool) {
	start := -1

	var open, close byte

	for i := 0; i < len(s); i++ {
		if s[i] == '[' {
			start, open, close = i, '[', ']'
			break
		}
		if s[i] == '{' {
			start, open, close = i, '{', '}'
			break
		}
	}

	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}

			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	// Unbalanced span; hand the tail to the repair pass.
	return s[start:], true
}

// firstLine truncates a payload for error messages.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[:nl]
	}

	const max = 120
	if len(s) > max {
		s = s[:max] + "..."
	}

	return s
}
