package augmenter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// ChatCompletionCreator defines the minimal interface for OpenAI chat completions.
type ChatCompletionCreator interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIOptions configures an OpenAI-compatible backend. BaseURL points at a
// local llama.cpp or vLLM server as easily as at api.openai.com.
type OpenAIOptions struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

// OpenAICompleter implements Completer with the chat completions API.
type OpenAICompleter struct {
	client ChatCompletionCreator
	opts   OpenAIOptions
}

var _ Completer = (*OpenAICompleter)(nil)

// NewOpenAICompleter creates a completer. Without a base URL and without an
// API key the completer is returned unloaded.
func NewOpenAICompleter(opts OpenAIOptions) *OpenAICompleter {
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv("OPENAI_API_KEY") // Fallback to env var
	}
	if opts.BaseURL == "" && opts.APIKey == "" {
		log.Warn("OpenAI API key not provided and no base URL set. Augmenter backend will be disabled.")
		return &OpenAICompleter{opts: opts}
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	log.Infof("OpenAI-compatible augmenter backend initialized (model %s, base URL %s)", opts.Model, cfg.BaseURL)
	return NewOpenAICompleterWithClient(openai.NewClientWithConfig(cfg), opts)
}

// NewOpenAICompleterWithClient wraps an existing client.
func NewOpenAICompleterWithClient(client ChatCompletionCreator, opts OpenAIOptions) *OpenAICompleter {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 512
	}
	return &OpenAICompleter{client: client, opts: opts}
}

func (c *OpenAICompleter) Name() string { return "openai" }

func (c *OpenAICompleter) ModelName() string { return c.opts.Model }

func (c *OpenAICompleter) Loaded() bool { return c.client != nil }

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (Completion, error) {
	if c.client == nil {
		return Completion{}, errors.New("OpenAI completer is not initialized")
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Completion{}, errors.New("no choices returned from OpenAI")
	}
	return Completion{
		Text:         strings.TrimSpace(resp.Choices[0].Message.Content),
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
