// Package qa answers free-text questions against a single document, either
// through a generative-language provider or a local similarity search.
package qa

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"strategix-backend/internal/lexical"
	"strategix-backend/internal/llm"
	"strategix-backend/internal/shared/telemetry"
)

// Fixed responses. Answerers never propagate provider failures to callers.
const (
	MsgTooShort    = "The document appears to be empty or too short to analyze."
	MsgRateLimited = "The AI service is temporarily rate limited. Please try again in a minute."
	MsgError       = "I'm sorry, I encountered an error while processing the document. Please try again later."
)

const (
	minDocumentChars = 10
	maxContextChars  = 30000
)

// Answerer answers one question against one document's text.
type Answerer interface {
	Answer(ctx context.Context, question, text string) string
}

// Generative delegates to a generative-language provider with a strict
// answer-only-from-context instruction.
type Generative struct {
	LLM llm.Client

	// OnRateLimited and OnFallback are optional hooks for metrics.
	OnRateLimited func()
	OnFallback    func()
}

// Answer builds the context-bound prompt and returns the provider's text. All
// failures map to a fixed message.
func (g *Generative) Answer(ctx context.Context, question, text string) string {
	if msg, ok := rejectDegenerate(question, text); ok {
		return msg
	}

	truncated := text
	if len(truncated) > maxContextChars {
		truncated = truncated[:maxContextChars]
	}
	prompt := buildPrompt(question, truncated)

	answer, err := g.LLM.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			if g.OnRateLimited != nil {
				g.OnRateLimited()
			}
			telemetry.Warn("chat provider rate limited", map[string]any{"error": err.Error()})
			return MsgRateLimited
		}
		if g.OnFallback != nil {
			g.OnFallback()
		}
		telemetry.Warn("chat provider failed", map[string]any{"error": err.Error()})
		return MsgError
	}
	return strings.TrimSpace(answer)
}

func buildPrompt(question, context string) string {
	return fmt.Sprintf(`You are an AI Strategy Assistant for the Strategix platform.
Answer the user's question based ONLY on the context of the business document provided below.
If the answer is not in the document, politely say that you cannot find the information in the current text. Do not make up facts.
Keep the answer concise, professional, and directly address the prompt.

User Question: %s

Document Context:
%s`, question, context)
}

// Local answers by extractive similarity search over the document sentences.
type Local struct{}

// Answer returns the best matching sentence or a fixed fallback.
func (Local) Answer(ctx context.Context, question, text string) string {
	_ = ctx
	if msg, ok := rejectDegenerate(question, text); ok {
		return msg
	}
	return lexical.BestMatchingSentence(question, text)
}

// rejectDegenerate applies the shared input guards: short documents and
// questions with no alphanumeric content.
func rejectDegenerate(question, text string) (string, bool) {
	if len(strings.TrimSpace(text)) < minDocumentChars {
		return MsgTooShort, true
	}
	if !hasAlphanumeric(question) {
		return lexical.MsgNoQuestion, true
	}
	return "", false
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

var (
	_ Answerer = (*Generative)(nil)
	_ Answerer = Local{}
)
