package service

import (
	"context"
	"sort"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypehouse-backend/internal/domains/promo/model"
	"hypehouse-backend/pkg/cache"
)

// fakeRepo áp dụng cùng luật lọc/sắp xếp với câu SQL
type fakeRepo struct {
	slides []model.Slide
	clock  time.Time
}

func (f *fakeRepo) ordered(keep func(model.Slide) bool) []model.Slide {
	out := make([]model.Slide, 0)
	for _, s := range f.slides {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (f *fakeRepo) ListActiveForZone(_ context.Context, zone model.Zone) ([]model.Slide, error) {
	return f.ordered(func(s model.Slide) bool { return s.IsActive && s.ShowsIn(zone) }), nil
}

func (f *fakeRepo) ListAll(context.Context) ([]model.Slide, error) {
	return f.ordered(func(model.Slide) bool { return true }), nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Slide, error) {
	for _, s := range f.slides {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, model.ErrSlideNotFound
}

func (f *fakeRepo) Create(_ context.Context, s *model.Slide) (*model.Slide, error) {
	f.clock = f.clock.Add(time.Second)
	cp := *s
	cp.ID = uuid.New()
	cp.CreatedAt = f.clock
	f.slides = append(f.slides, cp)
	return &cp, nil
}

func (f *fakeRepo) Update(context.Context, uuid.UUID, model.UpdateSlideRequest) (*model.Slide, error) {
	return nil, model.ErrEmptyUpdate
}

func (f *fakeRepo) ToggleActive(_ context.Context, id uuid.UUID) (*model.Slide, error) {
	for i := range f.slides {
		if f.slides[i].ID == id {
			f.slides[i].IsActive = !f.slides[i].IsActive
			cp := f.slides[i]
			return &cp, nil
		}
	}
	return nil, model.ErrSlideNotFound
}

func (f *fakeRepo) Delete(context.Context, uuid.UUID) error { return nil }

func create(t *testing.T, svc ServiceInterface, title string, pos model.Position, order int) *model.Slide {
	t.Helper()
	s, err := svc.Create(context.Background(), model.CreateSlideRequest{
		ImageURL:     "https://cdn.hypehouse.test/" + title + ".jpg",
		Title:        title,
		Position:     &pos,
		DisplayOrder: &order,
	})
	require.NoError(t, err)
	return s
}

func titles(slides []model.Slide) []string {
	out := make([]string, 0, len(slides))
	for _, s := range slides {
		out = append(out, s.Title)
	}
	return out
}

func TestListPublic_ZoneFilterAndRotationOrder(t *testing.T) {
	svc := NewPromoService(&fakeRepo{}, cache.NewMemoryCache(), time.Minute)
	ctx := context.Background()

	create(t, svc, "bottom-only", model.PositionBottom, 0)
	create(t, svc, "everywhere-late", model.PositionBoth, 2)
	create(t, svc, "top-first", model.PositionTop, 1)
	create(t, svc, "top-tie", model.PositionTop, 1)
	hidden := create(t, svc, "hidden", model.PositionTop, 0)
	_, err := svc.ToggleActive(ctx, hidden.ID)
	require.NoError(t, err)

	top, err := svc.ListPublic(ctx, "top")
	require.NoError(t, err)
	assert.Equal(t, []string{"top-first", "top-tie", "everywhere-late"}, titles(top))

	bottom, err := svc.ListPublic(ctx, "BOTTOM")
	require.NoError(t, err)
	assert.Equal(t, []string{"bottom-only", "everywhere-late"}, titles(bottom))
}

func TestListPublic_InvalidZone(t *testing.T) {
	svc := NewPromoService(&fakeRepo{}, cache.NewMemoryCache(), time.Minute)
	for _, zone := range []string{"", "both", "sidebar"} {
		_, err := svc.ListPublic(context.Background(), zone)
		assert.ErrorIs(t, err, model.ErrInvalidZone, zone)
	}
}

func TestListPublic_EmptyIsNotAnError(t *testing.T) {
	svc := NewPromoService(&fakeRepo{}, cache.NewMemoryCache(), time.Minute)
	slides, err := svc.ListPublic(context.Background(), "top")
	require.NoError(t, err)
	assert.NotNil(t, slides)
	assert.Empty(t, slides)
}

func TestCreate_DefaultsAndValidation(t *testing.T) {
	svc := NewPromoService(&fakeRepo{}, cache.NewMemoryCache(), time.Minute)
	ctx := context.Background()

	s, err := svc.Create(ctx, model.CreateSlideRequest{ImageURL: "https://cdn.hypehouse.test/a.jpg", Title: "Tour"})
	require.NoError(t, err)
	assert.Equal(t, model.PositionBoth, s.Position)
	assert.Equal(t, 0, s.DisplayOrder)
	assert.True(t, s.IsActive)

	side := model.Position("side")
	neg := -1
	_, err = svc.Create(ctx, model.CreateSlideRequest{ImageURL: "cdn/a.jpg", Position: &side, DisplayOrder: &neg})
	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"image_url", "title", "position", "display_order"} {
		assert.Contains(t, verr, field)
	}
}
