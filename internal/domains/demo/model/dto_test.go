package model

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() SubmitRequest {
	return SubmitRequest{
		ArtistName: "Nova Jae",
		Email:      "nova@example.com",
		Genre:      "Electronic / Dance",
		MusicLink:  "https://soundcloud.com/nova-jae/demo",
		Bio:        strings.Repeat("b", 50),
	}
}

func TestSubmitRequest_Validate(t *testing.T) {
	require.NoError(t, validSubmission().Validate())

	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
		field  string
	}{
		{"artist name too short", func(r *SubmitRequest) { r.ArtistName = "N" }, "artistName"},
		{"artist name too long", func(r *SubmitRequest) { r.ArtistName = strings.Repeat("n", 101) }, "artistName"},
		{"bad email", func(r *SubmitRequest) { r.Email = "nova@" }, "email"},
		{"email too long", func(r *SubmitRequest) { r.Email = strings.Repeat("a", 250) + "@x.com" }, "email"},
		{"unknown genre", func(r *SubmitRequest) { r.Genre = "Polka" }, "genre"},
		{"missing genre", func(r *SubmitRequest) { r.Genre = "" }, "genre"},
		{"relative music link", func(r *SubmitRequest) { r.MusicLink = "soundcloud.com/nova" }, "musicLink"},
		{"music link too long", func(r *SubmitRequest) { r.MusicLink = "https://x.com/" + strings.Repeat("a", 490) }, "musicLink"},
		{"bio 49 chars", func(r *SubmitRequest) { r.Bio = strings.Repeat("b", 49) }, "bio"},
		{"bio 1001 chars", func(r *SubmitRequest) { r.Bio = strings.Repeat("b", 1001) }, "bio"},
		{"social link not a url", func(r *SubmitRequest) { r.SocialLink = "@nova" }, "socialLink"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmission()
			tt.mutate(&req)
			var verr validation.Errors
			require.ErrorAs(t, req.Validate(), &verr)
			assert.Contains(t, verr, tt.field)
		})
	}
}

func TestSubmitRequest_LengthsCountCharacters(t *testing.T) {
	req := validSubmission()
	// 50 ký tự nhiều byte vẫn hợp lệ
	req.Bio = strings.Repeat("é", 50)
	req.ArtistName = "Ké"
	assert.NoError(t, req.Validate())
}

func TestSubmitRequest_ToEntityForcesPending(t *testing.T) {
	req := validSubmission()
	req.SocialLink = "  "
	sub := req.Normalize().ToEntity()
	assert.Equal(t, StatusPending, sub.Status)
	assert.Nil(t, sub.SocialLink)
}

func TestParseStatusFilter(t *testing.T) {
	for raw, want := range map[string]StatusFilter{"": "", "all": "", "ALL": "", "pending": "pending", "Rejected": "rejected"} {
		got, err := ParseStatusFilter(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseStatusFilter("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
