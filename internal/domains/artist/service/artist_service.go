package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/artist/model"
	"hypehouse-backend/internal/domains/artist/repository"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/cache"
)

const cacheNamespace cache.Namespace = "public:artists"

const (
	cacheKeyList       = "list"
	cacheKeySlugPrefix = "slug:"
)

// Release lưu artist_id; xóa artist làm đổi dữ liệu release public
const cacheNamespaceReleases cache.Namespace = "public:releases"

type artistService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewArtistService(repo repository.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &artistService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

func (s *artistService) ListPublic(ctx context.Context) ([]model.Artist, error) {
	return cache.ReadThrough(ctx, s.cache, cacheNamespace, cacheKeyList, s.cacheTTL, s.repo.ListActive)
}

// GetPublicBySlug không bao giờ trả not found: slug lạ hoặc artist đã ẩn
// nhận placeholder
func (s *artistService) GetPublicBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !utils.IsValidSlug(slug) {
		return model.PlaceholderArtist(slug), nil
	}

	artist, err := cache.ReadThrough(ctx, s.cache, cacheNamespace, cacheKeySlugPrefix+slug, s.cacheTTL,
		func(ctx context.Context) (*model.Artist, error) {
			return s.repo.GetActiveBySlug(ctx, slug)
		})
	if errors.Is(err, model.ErrArtistNotFound) {
		return model.PlaceholderArtist(slug), nil
	}
	return artist, err
}

func (s *artistService) ListAll(ctx context.Context) ([]model.Artist, error) {
	return s.repo.ListAll(ctx)
}

func (s *artistService) Options(ctx context.Context) ([]model.Option, error) {
	return s.repo.ListOptions(ctx)
}

func (s *artistService) Get(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *artistService) Create(ctx context.Context, req model.CreateArtistRequest) (*model.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	artist := &model.Artist{
		Name:          strings.TrimSpace(req.Name),
		Slug:          req.ResolveSlug(),
		Bio:           utils.NullIfEmpty(req.Bio),
		ShortBio:      utils.NullIfEmpty(req.ShortBio),
		ImageURL:      utils.NullIfEmpty(req.ImageURL),
		Genre:         utils.NullIfEmpty(req.Genre),
		SpotifyURL:    utils.NullIfEmpty(req.SpotifyURL),
		SoundcloudURL: utils.NullIfEmpty(req.SoundcloudURL),
		InstagramURL:  utils.NullIfEmpty(req.InstagramURL),
		YoutubeURL:    utils.NullIfEmpty(req.YoutubeURL),
		IsFeatured:    req.IsFeatured != nil && *req.IsFeatured,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}

	created, err := s.repo.Create(ctx, artist)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *artistService) Update(ctx context.Context, id uuid.UUID, req model.UpdateArtistRequest) (*model.Artist, error) {
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

func (s *artistService) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	artist, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return artist, nil
}

func (s *artistService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	artist, err := s.repo.ToggleFeatured(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return artist, nil
}

func (s *artistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	cache.Invalidate(ctx, s.cache, cacheNamespaceReleases)
	return nil
}

func (s *artistService) invalidate(ctx context.Context) {
	cache.Invalidate(ctx, s.cache, cacheNamespace)
}
