package repository

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/artist/model"
)

type RepositoryInterface interface {
	// Public reads: chỉ artist đang active
	ListActive(ctx context.Context) ([]model.Artist, error)
	GetActiveBySlug(ctx context.Context, slug string) (*model.Artist, error)
	ListOptions(ctx context.Context) ([]model.Option, error)

	// Admin
	ListAll(ctx context.Context) ([]model.Artist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateArtistRequest) (*model.Artist, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
