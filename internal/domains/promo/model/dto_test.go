package model

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positionPtr(p Position) *Position { return &p }

func TestCreateSlideRequest_Position(t *testing.T) {
	base := CreateSlideRequest{ImageURL: "https://cdn.hypehouse.test/slide.jpg", Title: "Summer Tour"}

	tests := []struct {
		name     string
		position *Position
		want     Position
	}{
		{"absent", nil, PositionBoth},
		{"empty string", positionPtr(""), PositionBoth},
		{"top", positionPtr(PositionTop), PositionTop},
		{"bottom", positionPtr(PositionBottom), PositionBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Position = tt.position
			require.NoError(t, req.Validate())
			assert.Equal(t, tt.want, req.ToEntity().Position)
		})
	}

	req := base
	req.Position = positionPtr("sidebar")
	var verr validation.Errors
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Contains(t, verr, "position")
}
