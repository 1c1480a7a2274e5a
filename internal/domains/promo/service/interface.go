package service

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/promo/model"
)

type ServiceInterface interface {
	// ListPublic nhận zone thô từ query string; zone khác top|bottom trả ErrInvalidZone
	ListPublic(ctx context.Context, zone string) ([]model.Slide, error)

	ListAll(ctx context.Context) ([]model.Slide, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Slide, error)
	Create(ctx context.Context, req model.CreateSlideRequest) (*model.Slide, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateSlideRequest) (*model.Slide, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*model.Slide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
