package chatbot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusai-be/internal/constant"
	"campusai-be/internal/pkg/logger"
	"campusai-be/pkg/llm"
)

// fakeProvider fails failures times, then answers with reply.
type fakeProvider struct {
	failures int
	err      error
	reply    string

	calls       int
	lastHistory []llm.Message
}

func (f *fakeProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	f.lastHistory = history
	if f.calls <= f.failures {
		return "", f.err
	}
	return f.reply, nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BackoffBase = time.Millisecond
	return cfg
}

func TestGenerateReturnsModelReply(t *testing.T) {
	provider := &fakeProvider{reply: "The deadline is May 1st."}
	g := NewGenerator(provider, logger.NewNopLogger(), testConfig())

	reply := g.Generate(context.Background(), []llm.Message{
		{Role: "user", Content: "When is the deadline?"},
	})

	assert.Equal(t, "The deadline is May 1st.", reply)
	assert.Equal(t, 1, provider.calls)
}

func TestGeneratePrependsSystemPrompt(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	g := NewGenerator(provider, logger.NewNopLogger(), testConfig())

	g.Generate(context.Background(), []llm.Message{
		{Role: "user", Content: "hello"},
	})

	assert.Len(t, provider.lastHistory, 2)
	assert.Equal(t, "system", provider.lastHistory[0].Role)
	assert.Equal(t, constant.ChatSystemPrompt, provider.lastHistory[0].Content)
	assert.Equal(t, "user", provider.lastHistory[1].Role)
}

func TestGenerateRetriesThenSucceeds(t *testing.T) {
	provider := &fakeProvider{
		failures: 2,
		err:      errors.New("transient"),
		reply:    "recovered",
	}
	g := NewGenerator(provider, logger.NewNopLogger(), testConfig())

	reply := g.Generate(context.Background(), []llm.Message{
		{Role: "user", Content: "asdfqwerty123"},
	})

	assert.Equal(t, "recovered", reply)
	assert.Equal(t, 3, provider.calls)
}

func TestGenerateExhaustedFallsBackToKeywordRule(t *testing.T) {
	provider := &fakeProvider{
		failures: 10,
		err:      errors.New("down"),
	}
	g := NewGenerator(provider, logger.NewNopLogger(), testConfig())

	reply := g.Generate(context.Background(), []llm.Message{
		{Role: "assistant", Content: constant.ChatGreetingMessage},
		{Role: "user", Content: "how much is the tuition"},
	})

	assert.Contains(t, reply, "Tuition fees vary by program")
	assert.Equal(t, 3, provider.calls)
}

func TestGenerateApologyVariants(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rate limited",
			err:  &llm.StatusError{StatusCode: 429, Body: "slow down"},
			want: constant.ChatApologyRateLimited,
		},
		{
			name: "unauthorized",
			err:  &llm.StatusError{StatusCode: 401, Body: "bad key"},
			want: constant.ChatApologyAuthFailure,
		},
		{
			name: "forbidden",
			err:  &llm.StatusError{StatusCode: 403, Body: "no access"},
			want: constant.ChatApologyAuthFailure,
		},
		{
			name: "server error",
			err:  &llm.StatusError{StatusCode: 500, Body: "boom"},
			want: constant.ChatApologyGeneric,
		},
		{
			name: "non status error",
			err:  errors.New("connection refused"),
			want: constant.ChatApologyGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{failures: 10, err: tt.err}
			g := NewGenerator(provider, logger.NewNopLogger(), testConfig())

			// No keyword rule matches, so the apology tier answers.
			reply := g.Generate(context.Background(), []llm.Message{
				{Role: "user", Content: "asdfqwerty123"},
			})

			assert.Equal(t, tt.want, reply)
		})
	}
}

func TestGenerateNeverReturnsEmpty(t *testing.T) {
	provider := &fakeProvider{reply: ""}
	g := NewGenerator(provider, logger.NewNopLogger(), testConfig())

	reply := g.Generate(context.Background(), []llm.Message{
		{Role: "user", Content: "anything"},
	})

	assert.NotEmpty(t, reply)
	assert.Equal(t, constant.ChatEmptyCompletion, reply)
}

func TestGenerateCancelledContextFallsBack(t *testing.T) {
	provider := &fakeProvider{failures: 10, err: errors.New("down")}
	cfg := testConfig()
	cfg.BackoffBase = time.Minute
	g := NewGenerator(provider, logger.NewNopLogger(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply := g.Generate(ctx, []llm.Message{
		{Role: "user", Content: "scholarship options"},
	})

	// First failure hits the cancelled context before sleeping a minute.
	assert.Contains(t, reply, "merit-based scholarships")
	assert.Equal(t, 1, provider.calls)
}
