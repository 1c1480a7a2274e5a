package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// LoginRequest - POST /v1/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

// NormalizedEmail: email được lưu lowercase
func NormalizedEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LoginResponse - access token của admin session
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	Session     SessionInfo `json:"session"`
}

// SessionInfo hiển thị trên header của admin shell
type SessionInfo struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// CreateUserRequest - labelctl user create
type CreateUserRequest struct {
	Email    string
	Password string
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat, validation.Length(3, 255)),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(MinPasswordLength, MaxPasswordLength).
				Error("password must be 8-128 characters"),
		),
	)
}
