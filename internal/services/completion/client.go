// Package completion wraps the upstream model providers behind a single
// synchronous call: one prompt in, one text completion out. Rate limiting
// and retries are the provider's business, not ours.
package completion

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/utils/clientcache"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Client is the single suspension point of the service: a blocking call to
// the upstream completion endpoint.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var backendCache = clientcache.NewCache[Client]()

// NewClient builds a provider client for the configured backend. Clients
// are cached by a hash of the provider configuration, so repeated
// construction with the same config reuses the underlying HTTP client.
func NewClient(cfg models.ProviderConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, models.NewValidationError("provider API key cannot be empty", nil)
	}

	key, err := configHash(cfg)
	if err != nil {
		fiberlog.Warnf("completion: config hash failed (%v), building uncached client", err)
		return buildClient(cfg)
	}

	return backendCache.GetOrCreate(key, func() (Client, error) {
		fiberlog.Debugf("completion: creating %s client (config hash %.8s)", cfg.Name, key)
		return buildClient(cfg)
	})
}

func buildClient(cfg models.ProviderConfig) (Client, error) {
	switch cfg.Name {
	case "groq", "openai", "":
		return newOpenAIClient(cfg), nil
	case "anthropic":
		return newAnthropicClient(cfg), nil
	default:
		return nil, models.NewValidationError(fmt.Sprintf("unsupported provider %q", cfg.Name), nil)
	}
}

// configHash keys the client cache. The API key is hashed before it joins
// the keyed material so raw secrets never feed the cache key directly.
func configHash(cfg models.ProviderConfig) (string, error) {
	apiKeyHash := sha256.Sum256([]byte(cfg.APIKey))

	material, err := json.Marshal(struct {
		Name       string
		BaseURL    string
		Model      string
		TimeoutMs  int
		APIKeyHash string
	}{
		Name:       cfg.Name,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		TimeoutMs:  cfg.TimeoutMs,
		APIKeyHash: fmt.Sprintf("%x", apiKeyHash[:8]),
	})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(material)
	return fmt.Sprintf("%x", sum[:16]), nil
}
