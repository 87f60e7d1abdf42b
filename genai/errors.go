package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrServiceUnavailable is returned when the generation service could not
	// produce a response: the retry budget was exhausted on rate limits or the
	// context deadline expired mid-call.
	ErrServiceUnavailable = fmt.Errorf("generation service unavailable")

	// ErrMalformedResponse is returned when a response was obtained but could
	// not be decoded as JSON even after cleanup and repair.
	ErrMalformedResponse = fmt.Errorf("malformed generation response")
)

// rateLimitPatterns are lowercase substrings that identify transient
// rate-limit / capacity failures worth retrying. Everything else fails fast.
var rateLimitPatterns = []string{
	"rate limit",
	"rate_limit",
	"ratelimit",
	"429",
	"quota",
	"too many requests",
	"resource_exhausted",
	"overloaded",
}

// IsRateLimit reports whether err looks like a rate-limit or capacity error.
// Providers surface these differently (HTTP 429, vendor error codes, plain
// text), so classification is by message substring.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range rateLimitPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}

// IsRetryable reports whether the generator should retry after err.
// Context cancellation and deadline expiry are never retryable.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return IsRateLimit(err)
}
