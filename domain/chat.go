package domain

import "errors"

var (
	MessageFailedChat       = "failed to process chat message"
	MessageFailedGetHistory = "failed to retrieve chat history"

	ErrCompletionFailed = errors.New("completion request failed")
)

type (
	ChatRequest struct {
		Content string `json:"content" validate:"required"`
	}
)
