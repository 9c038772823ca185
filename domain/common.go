package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	MessageFailedBodyRequest    = "invalid request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageInvalidID            = "invalid id"
)
