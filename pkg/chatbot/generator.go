package chatbot

import (
	"context"
	"errors"
	"net/http"
	"time"

	"campusai-be/internal/constant"
	"campusai-be/internal/pkg/logger"
	"campusai-be/pkg/llm"
)

// Config holds the generation policy. These are tunables, not structure:
// see config.AIConfig for the environment bindings.
type Config struct {
	MaxRetries  int           // retries after the first attempt (2 => 3 attempts)
	BackoffBase time.Duration // attempt n sleeps 2^n * base
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:  2,
		BackoffBase: 500 * time.Millisecond,
		MaxTokens:   500,
		Temperature: 0.7,
	}
}

// Generator turns a conversation history into the next assistant utterance.
// It degrades through four tiers - model call, retries with backoff, keyword
// fallback, generic apology - and therefore never returns an error: callers
// always get some assistant text.
type Generator struct {
	provider llm.LLMProvider
	logger   logger.ILogger
	cfg      Config
}

func NewGenerator(provider llm.LLMProvider, log logger.ILogger, cfg Config) *Generator {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 500 * time.Millisecond
	}
	return &Generator{
		provider: provider,
		logger:   log,
		cfg:      cfg,
	}
}

// Generate produces the assistant reply for the given history, oldest turn
// first. History roles must already be provider-compatible ("user" /
// "assistant"); the system prompt is prepended here.
func (g *Generator) Generate(ctx context.Context, history []llm.Message) string {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: constant.ChatSystemPrompt,
	})
	messages = append(messages, history...)

	var lastErr error
	for attempt := 0; attempt <= g.cfg.MaxRetries; attempt++ {
		reply, err := g.provider.Chat(ctx, messages,
			llm.WithTemperature(g.cfg.Temperature),
			llm.WithMaxTokens(g.cfg.MaxTokens),
		)
		if err == nil {
			if reply == "" {
				return constant.ChatEmptyCompletion
			}
			return reply
		}

		lastErr = err
		g.logger.Warn("chatbot", "model call failed", map[string]interface{}{
			"attempt":  attempt + 1,
			"attempts": g.cfg.MaxRetries + 1,
			"error":    err.Error(),
		})

		if attempt == g.cfg.MaxRetries {
			break
		}

		// Exponential backoff: base, 2*base, 4*base, ...
		delay := g.cfg.BackoffBase << uint(attempt+1)
		select {
		case <-ctx.Done():
			return g.fallback(history, ctx.Err())
		case <-time.After(delay):
		}
	}

	return g.fallback(history, lastErr)
}

// fallback answers from the keyword rules when possible, otherwise with an
// apology whose wording reflects the provider failure class.
func (g *Generator) fallback(history []llm.Message, cause error) string {
	if userMsg, ok := lastUserMessage(history); ok {
		if answer, matched := FallbackResponse(userMsg); matched {
			g.logger.Info("chatbot", "answered from keyword fallback", nil)
			return answer
		}
	}
	return apologyFor(cause)
}

func lastUserMessage(history []llm.Message) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return history[i].Content, true
		}
	}
	return "", false
}

func apologyFor(err error) string {
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests:
			return constant.ChatApologyRateLimited
		case http.StatusUnauthorized, http.StatusForbidden:
			return constant.ChatApologyAuthFailure
		}
	}
	return constant.ChatApologyGeneric
}
