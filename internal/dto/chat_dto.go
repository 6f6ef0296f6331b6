package dto

import "time"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

type ChatMessageResponse struct {
	Id        int       `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSessionResponse struct {
	Token    string                `json:"token"`
	Messages []ChatMessageResponse `json:"messages"`
}

type SessionMessagesResponse struct {
	Token    string                `json:"token"`
	Messages []ChatMessageResponse `json:"messages"`
}

type SendMessageResponse struct {
	UserMessage ChatMessageResponse `json:"userMessage"`
	BotMessage  ChatMessageResponse `json:"botMessage"`
}
