// Package anthropic implements llm.Client on top of the official
// anthropic-sdk-go Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"strategix-backend/internal/llm"
)

const defaultMaxTokens = 1024

// Client implements llm.Client using the Anthropic Messages API.
type Client struct {
	client sdk.Client
	model  string
}

// NewClient constructs an Anthropic client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Anthropic")
	}
	return &Client{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Generate sends the prompt as a single user message and returns the
// concatenated text blocks of the response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: defaultMaxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apierr *sdk.Error
		if errors.As(err, &apierr) {
			switch apierr.StatusCode {
			case http.StatusTooManyRequests, http.StatusUnauthorized, http.StatusForbidden:
				return "", fmt.Errorf("%w: anthropic status %d", llm.ErrRateLimited, apierr.StatusCode)
			}
		}
		return "", fmt.Errorf("anthropic create message: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", fmt.Errorf("anthropic response empty content")
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
