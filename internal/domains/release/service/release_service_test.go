package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypehouse-backend/internal/domains/release/model"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/cache"
)

// fakeRepo copy artist_name từ bảng artists giả lập như repository thật
type fakeRepo struct {
	mu        sync.Mutex
	artists   map[uuid.UUID]string
	releases  map[uuid.UUID]model.Release
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{artists: make(map[uuid.UUID]string), releases: make(map[uuid.UUID]model.Release)}
}

func (f *fakeRepo) sorted(keep func(model.Release) bool) []model.Release {
	out := make([]model.Release, 0)
	for _, r := range f.releases {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReleaseDate != out[j].ReleaseDate {
			return out[i].ReleaseDate > out[j].ReleaseDate
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeRepo) ListActive(_ context.Context, genre string) ([]model.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.sorted(func(r model.Release) bool {
		return r.IsActive && (genre == "" || utils.Deref(r.Genre) == genre)
	}), nil
}

func (f *fakeRepo) ListAll(context.Context) ([]model.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(model.Release) bool { return true }), nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.releases[id]
	if !ok {
		return nil, model.ErrReleaseNotFound
	}
	return &r, nil
}

func (f *fakeRepo) Create(_ context.Context, rel *model.Release) (*model.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rel
	if cp.ArtistID != nil {
		name, ok := f.artists[*cp.ArtistID]
		if !ok {
			return nil, model.ErrUnknownArtist
		}
		cp.ArtistName = name
	}
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now().Add(time.Duration(len(f.releases)) * time.Millisecond)
	f.releases[cp.ID] = cp
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, req model.UpdateReleaseRequest) (*model.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.releases[id]
	if !ok {
		return nil, model.ErrReleaseNotFound
	}
	artistID, name, err := req.ResolveArtist(r.ArtistID, r.ArtistName)
	if err != nil {
		return nil, err
	}
	if artistID != nil {
		linked, ok := f.artists[*artistID]
		if !ok {
			return nil, model.ErrUnknownArtist
		}
		name = linked
	}
	r.ArtistID, r.ArtistName = artistID, name
	if req.Title != nil {
		r.Title = *req.Title
	}
	f.releases[id] = r
	return &r, nil
}

func (f *fakeRepo) ToggleActive(_ context.Context, id uuid.UUID) (*model.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.releases[id]
	if !ok {
		return nil, model.ErrReleaseNotFound
	}
	r.IsActive = !r.IsActive
	f.releases[id] = r
	return &r, nil
}

func (f *fakeRepo) ToggleFeatured(_ context.Context, id uuid.UUID) (*model.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.releases[id]
	if !ok {
		return nil, model.ErrReleaseNotFound
	}
	r.IsFeatured = !r.IsFeatured
	f.releases[id] = r
	return &r, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.releases[id]; !ok {
		return model.ErrReleaseNotFound
	}
	delete(f.releases, id)
	return nil
}

func newTestService(t *testing.T) (*releaseService, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	svc := NewReleaseService(repo, cache.NewMemoryCache(), time.Minute).(*releaseService)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate_CopiesLinkedArtistName(t *testing.T) {
	svc, repo := newTestService(t)
	artistID := uuid.New()
	repo.artists[artistID] = "Marcus Wave"
	idStr := artistID.String()

	rel, err := svc.Create(context.Background(), model.CreateReleaseRequest{
		Title:      "Midnight",
		ArtistID:   &idStr,
		ArtistName: utils.StringPtr("typed by hand"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Marcus Wave", rel.ArtistName)
	assert.Equal(t, "2025-03-01", rel.ReleaseDate)
}

func TestCreate_UnknownArtist(t *testing.T) {
	svc, _ := newTestService(t)
	idStr := uuid.NewString()

	_, err := svc.Create(context.Background(), model.CreateReleaseRequest{Title: "Midnight", ArtistID: &idStr})
	assert.ErrorIs(t, err, model.ErrUnknownArtist)
}

func TestUpdate_RenamedArtistIsRecopied(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	artistID := uuid.New()
	repo.artists[artistID] = "Marcus Wave"
	idStr := artistID.String()

	rel, err := svc.Create(ctx, model.CreateReleaseRequest{Title: "Midnight", ArtistID: &idStr})
	require.NoError(t, err)

	// Đổi tên artist không làm đổi release cho tới lần ghi kế tiếp
	repo.artists[artistID] = "M. Wave"
	stored, err := svc.Get(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marcus Wave", stored.ArtistName)

	updated, err := svc.Update(ctx, rel.ID, model.UpdateReleaseRequest{Title: utils.StringPtr("Midnight (Remix)")})
	require.NoError(t, err)
	assert.Equal(t, "M. Wave", updated.ArtistName)
}

func TestListPublic_GenreFilterAndOrder(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	mk := func(title, date, genre string, active bool) {
		_, err := svc.Create(ctx, model.CreateReleaseRequest{
			Title: title, ArtistName: utils.StringPtr("X"), ReleaseDate: &date,
			Genre: &genre, IsActive: &active,
		})
		require.NoError(t, err)
	}
	mk("Old", "2023-01-01", "Pop", true)
	mk("New", "2025-01-01", "Pop", true)
	mk("Hidden", "2025-02-01", "Pop", false)
	mk("Other", "2024-01-01", "Jazz", true)

	all, err := svc.ListPublic(ctx, "")
	require.NoError(t, err)
	titles := make([]string, 0, len(all))
	for _, r := range all {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"New", "Other", "Old"}, titles)

	pop, err := svc.ListPublic(ctx, "Pop")
	require.NoError(t, err)
	assert.Len(t, pop, 2)

	calls := repo.listCalls
	_, err = svc.ListPublic(ctx, "Pop")
	require.NoError(t, err)
	assert.Equal(t, calls, repo.listCalls)
}
