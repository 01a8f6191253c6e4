// Package llm abstracts generative-language providers behind a single
// prompt-in, text-out capability.
package llm

import (
	"context"
	"errors"
	"strings"
)

// Client abstracts generative-language providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrRateLimited signals an authentication or quota rejection from the
// provider. Callers surface a distinct message for it instead of retrying.
var ErrRateLimited = errors.New("llm: rate limited or quota exceeded")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm: no provider configured")

// PlaceholderClient is used when no provider is configured; every call fails
// so callers fall back to local analysis.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}

// StripCodeFences removes a leading/trailing markdown code fence so fenced
// JSON payloads parse cleanly.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```")
	if idx := strings.Index(out, "\n"); idx >= 0 && !strings.ContainsAny(out[:idx], " \t{[") {
		// Drop the language tag line, e.g. ```json.
		out = out[idx+1:]
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}
