package completion

import (
	"context"
	"net/http"
	"time"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"

	"github.com/openai/openai-go/v2"
	openaiOption "github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// openAIClient speaks to any OpenAI-compatible completion endpoint. Groq's
// API is OpenAI-compatible, so the default deployment runs through here.
type openAIClient struct {
	client *openai.Client
	cfg    models.ProviderConfig
}

func newOpenAIClient(cfg models.ProviderConfig) *openAIClient {
	opts := []openaiOption.RequestOption{
		openaiOption.WithAPIKey(cfg.APIKey),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, openaiOption.WithBaseURL(cfg.BaseURL))
	}

	if cfg.TimeoutMs > 0 {
		httpClient := &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond}
		opts = append(opts, openaiOption.WithHTTPClient(httpClient))
	}

	client := openai.NewClient(opts...)
	return &openAIClient{client: &client, cfg: cfg}
}

// Complete performs a single chat completion call and returns the first
// choice's text.
func (c *openAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = openai.Float(c.cfg.Temperature)
	}
	if c.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.cfg.MaxTokens))
	}
	if c.cfg.TopP > 0 {
		params.TopP = openai.Float(c.cfg.TopP)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", models.NewProviderError(c.providerName(), "completion request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", models.NewProviderError(c.providerName(), "completion returned no choices", nil)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *openAIClient) providerName() string {
	if c.cfg.Name != "" {
		return c.cfg.Name
	}
	return "openai"
}
