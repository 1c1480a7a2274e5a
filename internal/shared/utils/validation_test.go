package utils

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestAbsoluteURL(t *testing.T) {
	assert.NoError(t, validation.Validate("https://open.spotify.com/artist/1", AbsoluteURL))
	assert.NoError(t, validation.Validate("http://soundcloud.com/x", AbsoluteURL))
	assert.NoError(t, validation.Validate("", AbsoluteURL))

	var nilPtr *string
	assert.NoError(t, validation.Validate(nilPtr, AbsoluteURL))

	assert.Error(t, validation.Validate("soundcloud.com/x", AbsoluteURL))
	assert.Error(t, validation.Validate("ftp://files.example.com/a.wav", AbsoluteURL))
	assert.Error(t, validation.Validate("not a url", AbsoluteURL))
}

func TestRuneLength_CountsCharacters(t *testing.T) {
	rule := RuneLength(2, 4)

	assert.NoError(t, validation.Validate("éé", rule), "two characters, four bytes")
	assert.NoError(t, validation.Validate("ñaña", rule))
	assert.Error(t, validation.Validate("é", rule))
	assert.Error(t, validation.Validate("ééééé", rule))
}

func TestNotBlank(t *testing.T) {
	blank := "   "
	value := "x"
	var absent *string

	assert.Error(t, validation.Validate(&blank, NotBlank))
	assert.NoError(t, validation.Validate(&value, NotBlank))
	assert.NoError(t, validation.Validate(absent, NotBlank))
}

func TestUpdateBuilder(t *testing.T) {
	name := " Luna "
	cleared := ""
	active := false

	b := NewUpdateBuilder("artists").
		SetRequiredString("name", &name).
		SetString("bio", &cleared).
		SetString("genre", nil).
		SetBool("is_active", &active)

	query, args := b.Build("id-1", "id")
	assert.Equal(t, `UPDATE "artists" SET "name" = $1, "bio" = $2, "is_active" = $3 WHERE id = $4 RETURNING id`, query)
	assert.Equal(t, []interface{}{"Luna", nil, false, "id-1"}, args)
	assert.False(t, b.Empty())
	assert.True(t, NewUpdateBuilder("artists").Empty())
}
