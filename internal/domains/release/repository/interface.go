package repository

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/release/model"
)

type RepositoryInterface interface {
	// ListActive: genre rỗng = mọi genre
	ListActive(ctx context.Context, genre string) ([]model.Release, error)

	ListAll(ctx context.Context) ([]model.Release, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Release, error)
	// Create và Update copy tên artist hiện tại vào artist_name trong cùng transaction
	Create(ctx context.Context, release *model.Release) (*model.Release, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateReleaseRequest) (*model.Release, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Release, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Release, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
