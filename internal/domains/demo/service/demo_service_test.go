package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hypehouse-backend/internal/domains/demo/model"
)

type fakeRepo struct {
	subs []model.Submission
}

func (f *fakeRepo) Insert(_ context.Context, s *model.Submission) error {
	cp := *s
	cp.ID = uuid.New()
	cp.CreatedAt = time.Date(2025, 4, 1, 9, len(f.subs), 0, 0, time.UTC)
	f.subs = append(f.subs, cp)
	return nil
}

func (f *fakeRepo) List(_ context.Context, filter model.StatusFilter) ([]model.Submission, error) {
	out := make([]model.Submission, 0)
	for i := len(f.subs) - 1; i >= 0; i-- {
		if filter == "" || string(f.subs[i].Status) == string(filter) {
			out = append(out, f.subs[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) find(id uuid.UUID) (*model.Submission, error) {
	for i := range f.subs {
		if f.subs[i].ID == id {
			return &f.subs[i], nil
		}
	}
	return nil, model.ErrSubmissionNotFound
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.Status) (*model.Submission, error) {
	s, err := f.find(id)
	if err != nil {
		return nil, err
	}
	s.Status = status
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) UpdateNotes(_ context.Context, id uuid.UUID, notes *string) (*model.Submission, error) {
	s, err := f.find(id)
	if err != nil {
		return nil, err
	}
	s.AdminNotes = notes
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.subs {
		if f.subs[i].ID == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return nil
		}
	}
	return model.ErrSubmissionNotFound
}

func form(name string) model.SubmitRequest {
	return model.SubmitRequest{
		ArtistName: name,
		Email:      strings.ToLower(name) + "@example.com",
		Genre:      "Afrobeats",
		MusicLink:  "https://soundcloud.com/" + strings.ToLower(name),
		Bio:        strings.Repeat("I make music. ", 5),
		SocialLink: "https://instagram.com/" + strings.ToLower(name),
	}
}

func TestSubmit_InvalidFormWritesNothing(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDemoService(repo)

	bad := form("Kofi")
	bad.Bio = "too short"
	err := svc.Submit(context.Background(), bad)

	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "bio")
	assert.Empty(t, repo.subs)
}

func TestSubmit_BioLengthCountsTrimmedText(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDemoService(repo)

	padded := form("Kofi")
	padded.Bio = strings.Repeat("b", 48) + "  "
	var verr validation.Errors
	require.ErrorAs(t, svc.Submit(context.Background(), padded), &verr)
	assert.Contains(t, verr, "bio")
	assert.Empty(t, repo.subs)

	exact := form("Kofi")
	exact.Bio = "  " + strings.Repeat("b", 50) + "  "
	require.NoError(t, svc.Submit(context.Background(), exact))
	require.Len(t, repo.subs, 1)
	assert.Equal(t, strings.Repeat("b", 50), repo.subs[0].Bio)
}

func TestSubmit_StoresPendingAndTrimmed(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDemoService(repo)

	req := form("Kofi")
	req.ArtistName = "  Kofi  "
	require.NoError(t, svc.Submit(context.Background(), req))

	require.Len(t, repo.subs, 1)
	assert.Equal(t, "Kofi", repo.subs[0].ArtistName)
	assert.Equal(t, model.StatusPending, repo.subs[0].Status)
	assert.Equal(t, "https://instagram.com/kofi", *repo.subs[0].SocialLink)
}

func TestReviewFlow(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDemoService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, form("Kofi")))
	require.NoError(t, svc.Submit(ctx, form("Lena")))

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Lena", all[0].ArtistName)

	_, err = svc.UpdateStatus(ctx, all[0].ID, model.UpdateStatusRequest{Status: "archived"})
	var verr validation.Errors
	assert.ErrorAs(t, err, &verr)

	accepted, err := svc.UpdateStatus(ctx, all[0].ID, model.UpdateStatusRequest{Status: model.StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, accepted.Status)

	noted, err := svc.UpdateNotes(ctx, all[0].ID, model.UpdateNotesRequest{AdminNotes: " Call back in May "})
	require.NoError(t, err)
	assert.Equal(t, "Call back in May", *noted.AdminNotes)

	cleared, err := svc.UpdateNotes(ctx, all[0].ID, model.UpdateNotesRequest{AdminNotes: ""})
	require.NoError(t, err)
	assert.Nil(t, cleared.AdminNotes)

	pending, err := svc.List(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Kofi", pending[0].ArtistName)

	_, err = svc.List(ctx, "archived")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)

	require.NoError(t, svc.Delete(ctx, pending[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, pending[0].ID), model.ErrSubmissionNotFound)
}

func TestExport(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDemoService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Submit(ctx, form("Kofi")))
	require.NoError(t, svc.Submit(ctx, form("Lena")))

	f, err := svc.Export(ctx, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	reopened, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Artist Name", rows[0][1])
	assert.Equal(t, "Lena", rows[1][1])
	assert.Equal(t, "pending", rows[2][6])
}
