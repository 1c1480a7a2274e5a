package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/event/model"
	"hypehouse-backend/internal/domains/event/repository"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/cache"
)

const cacheNamespace cache.Namespace = "public:events"

const (
	cacheKeyList     = "list"
	cacheKeyIDPrefix = "id:"
)

type eventService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewEventService(repo repository.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &eventService{repo: repo, cache: c, cacheTTL: cacheTTL, now: time.Now}
}

// ListPublic: danh sách được cache, phân loại upcoming/past luôn tính theo giờ hiện tại
func (s *eventService) ListPublic(ctx context.Context) (*model.Listing, error) {
	events, err := cache.ReadThrough(ctx, s.cache, cacheNamespace, cacheKeyList, s.cacheTTL, s.repo.ListActive)
	if err != nil {
		return nil, err
	}
	listing := model.Partition(events, s.now())
	return &listing, nil
}

func (s *eventService) GetPublic(ctx context.Context, rawID string) (*model.Event, error) {
	id := utils.ParseStringToUUID(rawID)
	if id == uuid.Nil {
		return model.PlaceholderEvent(id, s.now()), nil
	}

	event, err := cache.ReadThrough(ctx, s.cache, cacheNamespace, cacheKeyIDPrefix+id.String(), s.cacheTTL,
		func(ctx context.Context) (*model.Event, error) {
			return s.repo.GetActive(ctx, id)
		})
	if errors.Is(err, model.ErrEventNotFound) {
		return model.PlaceholderEvent(id, s.now()), nil
	}
	return event, err
}

func (s *eventService) ListAll(ctx context.Context) ([]model.Event, error) {
	return s.repo.ListAll(ctx)
}

func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req model.UpdateEventRequest) (*model.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *eventService) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return event, nil
}

func (s *eventService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.repo.ToggleFeatured(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *eventService) invalidate(ctx context.Context) {
	cache.Invalidate(ctx, s.cache, cacheNamespace)
}
