package service

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/artist/model"
)

type ServiceInterface interface {
	// Public
	ListPublic(ctx context.Context) ([]model.Artist, error)
	GetPublicBySlug(ctx context.Context, slug string) (*model.Artist, error)

	// Admin
	ListAll(ctx context.Context) ([]model.Artist, error)
	Options(ctx context.Context) ([]model.Option, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	Create(ctx context.Context, req model.CreateArtistRequest) (*model.Artist, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateArtistRequest) (*model.Artist, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
