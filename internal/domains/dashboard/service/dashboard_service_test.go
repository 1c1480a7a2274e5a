package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypehouse-backend/internal/domains/dashboard/model"
)

type fakeRepo struct {
	counts map[model.Section]model.Counts
	demos  model.DemoCounts
	err    error
}

func (f *fakeRepo) CountSection(_ context.Context, section model.Section) (model.Counts, error) {
	if f.err != nil && section == model.SectionEvents {
		return model.Counts{}, f.err
	}
	return f.counts[section], nil
}

func (f *fakeRepo) CountDemos(context.Context) (model.DemoCounts, error) {
	return f.demos, nil
}

func TestSummary(t *testing.T) {
	repo := &fakeRepo{
		counts: map[model.Section]model.Counts{
			model.SectionArtists:  {Total: 5, Active: 4},
			model.SectionReleases: {Total: 12, Active: 10},
			model.SectionEvents:   {Total: 3, Active: 3},
			model.SectionPromos:   {Total: 2, Active: 1},
		},
		demos: model.DemoCounts{Total: 9, Pending: 6},
	}

	summary, err := NewDashboardService(repo).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Counts{Total: 5, Active: 4}, summary.Artists)
	assert.Equal(t, model.Counts{Total: 12, Active: 10}, summary.Releases)
	assert.Equal(t, model.Counts{Total: 3, Active: 3}, summary.Events)
	assert.Equal(t, model.Counts{Total: 2, Active: 1}, summary.Promos)
	assert.Equal(t, 6, summary.Demos.Pending)
}

func TestSummary_AnyFailureFailsWhole(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := NewDashboardService(&fakeRepo{err: boom}).Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}
