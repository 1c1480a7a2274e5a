// Package session carries the authenticated caller through a request context.
// An anonymous caller is represented by uuid.Nil.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type contextKey struct{}

// Caller là người dùng đã đăng nhập của request hiện tại
type Caller struct {
	UserID uuid.UUID
	Email  string
	// TokenID là jti của access token, dùng khi logout
	TokenID   string
	ExpiresAt time.Time
}

// WithCaller gắn caller vào context
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}

// FromContext trả về caller; ok=false nếu request anonymous
func FromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(contextKey{}).(Caller)
	if !ok || caller.UserID == uuid.Nil {
		return Caller{}, false
	}
	return caller, true
}

// UserID trả về id của caller hoặc uuid.Nil
func UserID(ctx context.Context) uuid.UUID {
	caller, _ := FromContext(ctx)
	return caller.UserID
}
