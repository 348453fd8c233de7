package completion

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicOption "github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicClient speaks the native Anthropic Messages API for deployments
// configured with provider "anthropic".
type anthropicClient struct {
	client *anthropic.Client
	cfg    models.ProviderConfig
}

func newAnthropicClient(cfg models.ProviderConfig) *anthropicClient {
	opts := []anthropicOption.RequestOption{
		anthropicOption.WithAPIKey(cfg.APIKey),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, anthropicOption.WithBaseURL(cfg.BaseURL))
	}

	if cfg.TimeoutMs > 0 {
		httpClient := &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond}
		opts = append(opts, anthropicOption.WithHTTPClient(httpClient))
	}

	client := anthropic.NewClient(opts...)
	return &anthropicClient{client: &client, cfg: cfg}
}

// Complete performs a single Messages call and concatenates the text
// blocks of the reply.
func (c *anthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: int64(c.cfg.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(c.cfg.Temperature)
	}
	if c.cfg.TopP > 0 {
		params.TopP = anthropic.Float(c.cfg.TopP)
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", models.NewProviderError("anthropic", "message request failed", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", models.NewProviderError("anthropic", "message returned no text content", nil)
	}

	return sb.String(), nil
}
