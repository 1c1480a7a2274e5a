package model

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day int, featured bool) Event {
	return Event{
		ID:         uuid.New(),
		Title:      "day",
		EventDate:  time.Date(2025, 5, day, 20, 0, 0, 0, time.UTC),
		IsFeatured: featured,
		IsActive:   true,
	}
}

func TestPartition(t *testing.T) {
	now := time.Date(2025, 5, 10, 20, 0, 0, 0, time.UTC)

	t.Run("boundary counts as upcoming", func(t *testing.T) {
		events := []Event{at(1, false), at(10, false), at(20, false)}
		l := Partition(events, now)
		require.Len(t, l.Past, 1)
		require.Len(t, l.Upcoming, 2)
		assert.Equal(t, events[1].ID, l.Upcoming[0].ID)
		assert.Equal(t, events[1].ID, l.Featured.ID)
	})

	t.Run("first featured upcoming wins", func(t *testing.T) {
		events := []Event{at(1, true), at(11, false), at(15, true), at(20, true)}
		l := Partition(events, now)
		assert.Equal(t, events[2].ID, l.Featured.ID)
	})

	t.Run("featured past event is ignored", func(t *testing.T) {
		events := []Event{at(1, true), at(12, false)}
		l := Partition(events, now)
		assert.Equal(t, events[1].ID, l.Featured.ID)
	})

	t.Run("nothing upcoming", func(t *testing.T) {
		l := Partition([]Event{at(1, true)}, now)
		assert.Nil(t, l.Featured)
		assert.Empty(t, l.Upcoming)
		assert.Len(t, l.Past, 1)
	})

	t.Run("empty input gives empty lists", func(t *testing.T) {
		l := Partition(nil, now)
		assert.NotNil(t, l.Upcoming)
		assert.NotNil(t, l.Past)
		assert.Nil(t, l.Featured)
	})
}

func TestCreateEventRequest_Validate(t *testing.T) {
	valid := CreateEventRequest{
		Title:     "Summer Showcase",
		Venue:     "The Warehouse",
		Location:  "Los Angeles, CA",
		EventDate: "2025-07-01T20:00:00-07:00",
	}
	require.NoError(t, valid.Validate())

	e := valid.ToEntity()
	assert.True(t, e.IsActive)
	assert.Equal(t, time.Date(2025, 7, 2, 3, 0, 0, 0, time.UTC), e.EventDate.UTC())

	bad := valid
	bad.EventDate = "2025-07-01 20:00"
	bad.Venue = " "
	var verr validation.Errors
	require.ErrorAs(t, bad.Validate(), &verr)
	assert.Contains(t, verr, "event_date")
	assert.Contains(t, verr, "venue")
}

func TestPlaceholderEvent(t *testing.T) {
	now := time.Now()
	p := PlaceholderEvent(uuid.Nil, now)
	assert.True(t, p.Placeholder)
	assert.Equal(t, "Event", p.Title)
	assert.Equal(t, "TBA", p.Venue)
	assert.Equal(t, "TBA", *p.TicketPrice)
}
