package service

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/auth/model"
	"hypehouse-backend/internal/shared/session"
)

// ServiceInterface là authorization gate của admin CMS
type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, caller session.Caller) error

	// VerifyAccessToken dùng bởi middleware.Authenticate
	VerifyAccessToken(ctx context.Context, token string) (session.Caller, error)
	// IsAdmin dùng bởi middleware.RequireAdmin
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)

	Session(ctx context.Context, caller session.Caller) (*model.SessionInfo, error)

	// Quản trị identity (labelctl)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	GrantRole(ctx context.Context, email string, role model.Role) error
	RevokeRole(ctx context.Context, email string, role model.Role) (bool, error)
	ListRoles(ctx context.Context) ([]model.RoleAssignment, error)
}
