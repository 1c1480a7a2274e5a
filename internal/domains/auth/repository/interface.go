package repository

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/auth/model"
)

// RepositoryInterface truy cập users và user_roles
type RepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error

	// HasRole đi qua hàm has_role() của database (SECURITY DEFINER)
	HasRole(ctx context.Context, userID uuid.UUID, role model.Role) (bool, error)

	// Các thao tác dưới đây chạy bằng kết nối owner (labelctl)
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GrantRole(ctx context.Context, userID uuid.UUID, role model.Role) error
	RevokeRole(ctx context.Context, userID uuid.UUID, role model.Role) (bool, error)
	ListRoles(ctx context.Context) ([]model.RoleAssignment, error)
}
