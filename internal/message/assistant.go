package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrAssistantUnavailable indicates no assistant is configured or the
// configured one cannot be reached. Callers fall back to the keyword
// heuristic.
var ErrAssistantUnavailable = errors.New("assistant unavailable")

// Assistant turns a prompt into a commit message. Implementations may
// be entirely absent; the pipeline treats any error as a cue to use the
// keyword heuristic instead.
type Assistant interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const assistantSystemPrompt = "You write git commit messages in conventional-commit " +
	"format (type(scope): description). Reply with the message only, one line, " +
	"no quoting, no explanation."

// Claude is an Assistant backed by the Anthropic API
type Claude struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaude creates a Claude assistant. Returns nil when no API key is
// available, which reads as "assistant absent" downstream.
func NewClaude(apiKey, model string) *Claude {
	if apiKey == "" {
		return nil
	}
	return &Claude{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Generate asks the model for a commit message
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 256,
		System: []anthropic.TextBlockParam{
			{Text: assistantSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	// One line only; the model occasionally adds trailing commentary
	result := strings.TrimSpace(b.String())
	if idx := strings.IndexByte(result, '\n'); idx >= 0 {
		result = strings.TrimSpace(result[:idx])
	}
	if result == "" {
		return "", fmt.Errorf("%w: empty response", ErrAssistantUnavailable)
	}
	return result, nil
}
