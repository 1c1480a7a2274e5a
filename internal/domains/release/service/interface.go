package service

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/release/model"
)

type ServiceInterface interface {
	ListPublic(ctx context.Context, genre string) ([]model.Release, error)

	ListAll(ctx context.Context) ([]model.Release, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Release, error)
	Create(ctx context.Context, req model.CreateReleaseRequest) (*model.Release, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateReleaseRequest) (*model.Release, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Release, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Release, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
