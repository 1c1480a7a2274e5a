package repository

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/event/model"
)

type RepositoryInterface interface {
	// ListActive sắp theo event_date tăng dần; upcoming/past do service tính
	ListActive(ctx context.Context) ([]model.Event, error)
	GetActive(ctx context.Context, id uuid.UUID) (*model.Event, error)

	ListAll(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateEventRequest) (*model.Event, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
