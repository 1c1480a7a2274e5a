package repository

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/promo/model"
)

type RepositoryInterface interface {
	// ListActiveForZone: position = zone hoặc both, theo display_order, created_at
	ListActiveForZone(ctx context.Context, zone model.Zone) ([]model.Slide, error)

	ListAll(ctx context.Context) ([]model.Slide, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Slide, error)
	Create(ctx context.Context, slide *model.Slide) (*model.Slide, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateSlideRequest) (*model.Slide, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Slide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
