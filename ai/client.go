// Package ai wraps the hosted text-intelligence service used for free-form
// generation, confirmation classification and grammar correction.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Client is a single round trip to the text-intelligence service.
type Client interface {
	Generate(ctx context.Context, system string, history []*schema.Message, user string) (string, error)
}

// Config configures the DeepSeek-backed client. DeepSeek exposes an
// OpenAI-compatible chat completions API, so BaseURL points at it.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

const DefaultTimeout = 10 * time.Second

// DeepSeek implements Client on top of an eino chat model. Every call is
// bounded by the configured timeout so a slow upstream degrades into the
// caller's deterministic fallback instead of stalling the conversation.
type DeepSeek struct {
	cm      model.ToolCallingChatModel
	timeout time.Duration
}

func NewDeepSeek(ctx context.Context, cfg Config) (*DeepSeek, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &DeepSeek{cm: cm, timeout: timeout}, nil
}

func (d *DeepSeek) Generate(ctx context.Context, system string, history []*schema.Message, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(system))
	messages = append(messages, history...)
	messages = append(messages, schema.UserMessage(user))

	response, err := d.cm.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	return strings.TrimSpace(response.Content), nil
}
