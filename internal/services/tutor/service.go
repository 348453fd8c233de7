// Package tutor dispatches coding-assistance requests: it assembles the
// prompt context, invokes the completion provider, and runs the result
// through the response cache and post-processor.
package tutor

import (
	"context"
	"fmt"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/config"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/cache"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/completion"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/contextprep"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/langdetect"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/postprocess"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Operation names key the response cache per dispatch path.
const (
	opExplainError        = "explain_error"
	opSuggestOnInactivity = "suggest_on_inactivity"
	opAnswerQuestion      = "answer_question"
)

// Service is the explicitly constructed tutor instance: it owns its prompt
// templates, provider client and response cache, and is handed by reference
// into the HTTP and WebSocket handlers.
type Service struct {
	client       completion.Client
	cache        *cache.ResponseCache
	cacheEnabled bool
}

// NewService builds a Service from configuration, constructing the
// provider client for the configured backend.
func NewService(cfg *config.Config) (*Service, error) {
	client, err := completion.NewClient(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("tutor service initialization failed: %w", err)
	}

	return NewServiceWithClient(client, cache.New(cfg.Cache.Capacity), cfg.Cache.Enabled), nil
}

// NewServiceWithClient wires a Service from parts; used by tests to inject
// a fake provider.
func NewServiceWithClient(client completion.Client, responseCache *cache.ResponseCache, cacheEnabled bool) *Service {
	if client == nil {
		panic("NewServiceWithClient: client cannot be nil")
	}
	if responseCache == nil {
		responseCache = cache.New(cache.DefaultCapacity)
	}

	return &Service{
		client:       client,
		cache:        responseCache,
		cacheEnabled: cacheEnabled,
	}
}

// ExplainError explains a coding error in the context of the code that
// raised it. The reply is code-finalized. A provider failure is returned as
// a fenced error block in the message, alongside the causing error.
func (s *Service) ExplainError(ctx context.Context, codeContext, errorMessage, language, fileName string) (string, error) {
	lang := langdetect.Detect(language, fileName, codeContext)
	prepared := contextprep.Prepare(codeContext)

	key := cache.Key(opExplainError, prepared, errorMessage, lang)
	if cached, ok := s.cacheGet(key); ok {
		fiberlog.Debugf("tutor: explain-error cache hit (%.12s)", key)
		return cached, nil
	}

	raw, err := s.client.Complete(ctx, errorSystemPrompt(prepared, errorMessage, lang, fileName), errorHumanPrompt)
	if err != nil {
		fiberlog.Errorf("tutor: explain-error completion failed: %v", err)
		return errorBlock("Error analyzing code", err), err
	}

	text := postprocess.FinalizeCode(postprocess.Clean(raw), lang)
	s.cachePut(key, text)
	return text, nil
}

// SuggestOnInactivity provides proactive suggestions for the code the user
// has gone quiet over. recent edits are carried into the prompt only; they
// never affect the cache key.
func (s *Service) SuggestOnInactivity(ctx context.Context, codeContext, currentFile, recentEdits, language string) (string, error) {
	lang := langdetect.Detect(language, currentFile, codeContext)
	prepared := contextprep.Prepare(codeContext)

	key := cache.Key(opSuggestOnInactivity, prepared, currentFile, lang)
	if cached, ok := s.cacheGet(key); ok {
		fiberlog.Debugf("tutor: inactivity cache hit (%.12s)", key)
		return cached, nil
	}

	raw, err := s.client.Complete(ctx, inactivitySystemPrompt(prepared, currentFile, recentEdits, lang), inactivityHumanPrompt)
	if err != nil {
		fiberlog.Errorf("tutor: inactivity completion failed: %v", err)
		return errorBlock("Error providing suggestions", err), err
	}

	text := postprocess.FinalizeCode(postprocess.Clean(raw), lang)
	s.cachePut(key, text)
	return text, nil
}

// AnswerQuestion answers a free-form coding question against the provided
// context. The reply is prose-finalized with query-aware unwrapping of
// short definitional answers.
func (s *Service) AnswerQuestion(ctx context.Context, codeContext, currentFile, userQuestion, language string) (string, error) {
	lang := langdetect.Detect(language, currentFile, codeContext)
	prepared := contextprep.Prepare(codeContext)

	key := cache.Key(opAnswerQuestion, prepared, userQuestion, lang)
	if cached, ok := s.cacheGet(key); ok {
		fiberlog.Debugf("tutor: question cache hit (%.12s)", key)
		return cached, nil
	}

	raw, err := s.client.Complete(ctx, questionSystemPrompt(prepared, currentFile, lang, userQuestion), userQuestion)
	if err != nil {
		fiberlog.Errorf("tutor: question completion failed: %v", err)
		return errorBlock("Error answering question", err), err
	}

	text := postprocess.FinalizeProse(postprocess.Clean(raw), userQuestion)
	s.cachePut(key, text)
	return text, nil
}

// AnalyzeProject answers a question over a multi-file project summary,
// framed as architectural analysis. File content is capped per file and in
// total before it reaches the prompt.
func (s *Service) AnalyzeProject(ctx context.Context, files []models.ProjectFile, userMessage, language string) (string, error) {
	combined := contextprep.BuildProjectContext(files)

	question := userMessage
	if question == "" {
		question = defaultProjectQuestion
	}

	return s.AnswerQuestion(ctx, combined, "PROJECT", question, language)
}

func (s *Service) cacheGet(key string) (string, bool) {
	if !s.cacheEnabled {
		return "", false
	}
	return s.cache.Get(key)
}

func (s *Service) cachePut(key, value string) {
	if !s.cacheEnabled {
		return
	}
	s.cache.Put(key, value)
}

// errorBlock shapes a provider failure as a short fenced block so callers
// can relay it as a normal message instead of crashing the request.
func errorBlock(prefix string, err error) string {
	return fmt.Sprintf("```\n%s: %v\n```", prefix, err)
}
