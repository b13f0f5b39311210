package augmenter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiOptions configures the Gemini backend.
type GeminiOptions struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

// GeminiCompleter implements Completer with Google Gemini.
type GeminiCompleter struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

var _ Completer = (*GeminiCompleter)(nil)

// NewGeminiCompleter creates a Gemini completer. Without an API key it is
// returned unloaded.
func NewGeminiCompleter(ctx context.Context, opts GeminiOptions) (*GeminiCompleter, error) {
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv("GEMINI_API_KEY") // Fallback to env var
	}
	if opts.APIKey == "" {
		log.Warn("Gemini API key not provided. Augmenter backend will be disabled.")
		return &GeminiCompleter{name: opts.Model}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.ResponseMIMEType = "application/json"
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	model.SetTemperature(opts.Temperature)

	log.Infof("Gemini augmenter backend initialized with model %s", opts.Model)
	return &GeminiCompleter{client: client, model: model, name: opts.Model}, nil
}

func (g *GeminiCompleter) Name() string { return "gemini" }

func (g *GeminiCompleter) ModelName() string { return g.name }

func (g *GeminiCompleter) Loaded() bool { return g.model != nil }

func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (Completion, error) {
	if g.model == nil {
		return Completion{}, errors.New("Gemini completer is not initialized (missing API key)")
	}
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Completion{}, fmt.Errorf("Gemini API error generating content: %w", err)
	}
	return completionFromResponse(resp)
}

func completionFromResponse(resp *genai.GenerateContentResponse) (Completion, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Completion{}, errors.New("Gemini API returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	c := Completion{Text: strings.TrimSpace(sb.String())}
	if resp.UsageMetadata != nil {
		c.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		c.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return c, nil
}

// Close cleans up the Gemini client resources.
func (g *GeminiCompleter) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
