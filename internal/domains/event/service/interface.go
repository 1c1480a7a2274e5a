package service

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/event/model"
)

type ServiceInterface interface {
	ListPublic(ctx context.Context) (*model.Listing, error)
	// GetPublic nhận id dạng chuỗi; id sai format cũng nhận placeholder
	GetPublic(ctx context.Context, rawID string) (*model.Event, error)

	ListAll(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateEventRequest) (*model.Event, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
