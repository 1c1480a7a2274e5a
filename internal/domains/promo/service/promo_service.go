package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/promo/model"
	"hypehouse-backend/internal/domains/promo/repository"
	"hypehouse-backend/pkg/cache"
)

const cacheNamespace cache.Namespace = "public:promos"

type promoService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPromoService(repo repository.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &promoService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

func (s *promoService) ListPublic(ctx context.Context, rawZone string) ([]model.Slide, error) {
	zone, err := model.ParseZone(rawZone)
	if err != nil {
		return nil, err
	}
	return cache.ReadThrough(ctx, s.cache, cacheNamespace, "zone:"+string(zone), s.cacheTTL,
		func(ctx context.Context) ([]model.Slide, error) {
			return s.repo.ListActiveForZone(ctx, zone)
		})
}

func (s *promoService) ListAll(ctx context.Context) ([]model.Slide, error) {
	return s.repo.ListAll(ctx)
}

func (s *promoService) Get(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *promoService) Create(ctx context.Context, req model.CreateSlideRequest) (*model.Slide, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return created, nil
}

func (s *promoService) Update(ctx context.Context, id uuid.UUID, req model.UpdateSlideRequest) (*model.Slide, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return updated, nil
}

func (s *promoService) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	slide, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return slide, nil
}

func (s *promoService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return nil
}
