package domain

import "errors"

var (
	MessageInvalidCredentials = "Invalid credentials"
	MessageUserNotFound       = "User not found"
	MessageFailedLogin        = "failed to process login"
	MessageFailedUpdateUser   = "failed to update user"

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// LoginOutcome tags how a login request resolved. The original behavior is that
// logging in with an unseen username creates the account on the fly.
type LoginOutcome string

const (
	LoginExistingUserMatched LoginOutcome = "existing_user_matched"
	LoginNewUserCreated      LoginOutcome = "new_user_created"
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UpdateUserRequest struct {
		Username     string `json:"username" validate:"required"`
		Password     string `json:"password" validate:"required"`
		Email        string `json:"email" validate:"required"`
		Organization string `json:"organization" validate:"required"`
	}
)
