package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/release/model"
	"hypehouse-backend/internal/domains/release/repository"
	"hypehouse-backend/pkg/cache"
)

const cacheNamespace cache.Namespace = "public:releases"

type releaseService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewReleaseService(repo repository.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &releaseService{repo: repo, cache: c, cacheTTL: cacheTTL, now: time.Now}
}

func (s *releaseService) ListPublic(ctx context.Context, genre string) ([]model.Release, error) {
	genre = strings.TrimSpace(genre)
	key := "all"
	if genre != "" {
		key = "genre:" + genre
	}
	return cache.ReadThrough(ctx, s.cache, cacheNamespace, key, s.cacheTTL, func(ctx context.Context) ([]model.Release, error) {
		return s.repo.ListActive(ctx, genre)
	})
}

func (s *releaseService) ListAll(ctx context.Context) ([]model.Release, error) {
	return s.repo.ListAll(ctx)
}

func (s *releaseService) Get(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *releaseService) Create(ctx context.Context, req model.CreateReleaseRequest) (*model.Release, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, req.ToEntity(s.now()))
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return created, nil
}

func (s *releaseService) Update(ctx context.Context, id uuid.UUID, req model.UpdateReleaseRequest) (*model.Release, error) {
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

func (s *releaseService) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	rel, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return rel, nil
}

func (s *releaseService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	rel, err := s.repo.ToggleFeatured(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return rel, nil
}

func (s *releaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, s.cache, cacheNamespace)
	return nil
}
