package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/repository/memory"
	"campusai-be/internal/repository/unitofwork"
	"campusai-be/internal/service"
	"campusai-be/pkg/chatbot"
	"campusai-be/pkg/llm"
)

type stubProvider struct {
	reply string
}

func (s *stubProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return s.reply, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	generator := chatbot.NewGenerator(&stubProvider{reply: "Happy to help!"}, logger.NewNopLogger(), chatbot.Config{
		MaxRetries:  0,
		BackoffBase: time.Millisecond,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	chatService := service.NewChatService(factory, generator, logger.NewNopLogger())

	app := fiber.New()
	api := app.Group("/api")
	NewChatController(chatService).RegisterRoutes(api)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func createSession(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, env := doRequest(t, app, fiber.MethodPost, "/api/chat/session", "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestCreateSessionEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, env := doRequest(t, app, fiber.MethodPost, "/api/chat/session", "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	var data struct {
		Token    string `json:"token"`
		Messages []struct {
			Role    string `json:"role"`
			Message string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	require.Len(t, data.Messages, 2)
	assert.Equal(t, "assistant", data.Messages[0].Role)
	assert.Equal(t, "assistant", data.Messages[1].Role)
}

func TestGetMessagesUnknownTokenEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, env := doRequest(t, app, fiber.MethodGet, "/api/chat/no-such-token/messages", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestSendMessageEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := createSession(t, app)

	resp, env := doRequest(t, app, fiber.MethodPost, "/api/chat/"+token+"/message",
		`{"message": "When is the deadline?"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var data struct {
		UserMessage struct {
			Role    string `json:"role"`
			Message string `json:"message"`
		} `json:"userMessage"`
		BotMessage struct {
			Role    string `json:"role"`
			Message string `json:"message"`
		} `json:"botMessage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "user", data.UserMessage.Role)
	assert.Equal(t, "When is the deadline?", data.UserMessage.Message)
	assert.Equal(t, "assistant", data.BotMessage.Role)
	assert.Equal(t, "Happy to help!", data.BotMessage.Message)
}

func TestSendMessageValidation(t *testing.T) {
	app := newTestApp(t)
	token := createSession(t, app)

	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"message": ""}`},
		{"missing field", `{}`},
		{"malformed json", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doRequest(t, app, fiber.MethodPost, "/api/chat/"+token+"/message", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.False(t, env.Success)
		})
	}
}

func TestSendMessageUnknownTokenEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, env := doRequest(t, app, fiber.MethodPost, "/api/chat/no-such-token/message",
		`{"message": "hello"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}
