package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"hypehouse-backend/internal/shared/utils"
)

const (
	maxNameLength = 255
	maxURLLength  = 500
)

// CreateArtistRequest - POST /admin/artists
type CreateArtistRequest struct {
	Name          string  `json:"name"`
	Slug          *string `json:"slug"`
	Bio           *string `json:"bio"`
	ShortBio      *string `json:"short_bio"`
	ImageURL      *string `json:"image_url"`
	Genre         *string `json:"genre"`
	SpotifyURL    *string `json:"spotify_url"`
	SoundcloudURL *string `json:"soundcloud_url"`
	InstagramURL  *string `json:"instagram_url"`
	YoutubeURL    *string `json:"youtube_url"`
	IsFeatured    *bool   `json:"is_featured"`
	IsActive      *bool   `json:"is_active"`
}

func urlRules() []validation.Rule {
	return []validation.Rule{utils.AbsoluteURL, utils.RuneLength(0, maxURLLength)}
}

func (r CreateArtistRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, utils.NotBlank, utils.RuneLength(1, maxNameLength)),
		validation.Field(&r.Slug, utils.Slug, utils.RuneLength(0, maxNameLength)),
		validation.Field(&r.ImageURL, urlRules()...),
		validation.Field(&r.SpotifyURL, urlRules()...),
		validation.Field(&r.SoundcloudURL, urlRules()...),
		validation.Field(&r.InstagramURL, urlRules()...),
		validation.Field(&r.YoutubeURL, urlRules()...),
	)
	if err != nil {
		return err
	}
	if r.ResolveSlug() == "" {
		return validation.Errors{"name": errors.New("must contain at least one letter or digit")}
	}
	return nil
}

// ResolveSlug: slug nhập tay nếu có, không thì sinh từ name
func (r CreateArtistRequest) ResolveSlug() string {
	if s := utils.Deref(utils.NullIfEmpty(r.Slug)); s != "" {
		return s
	}
	return utils.GenerateSlug(r.Name)
}

// UpdateArtistRequest - PATCH /admin/artists/:id.
// nil = giữ nguyên, "" = xóa field optional.
type UpdateArtistRequest struct {
	Name          *string `json:"name"`
	Slug          *string `json:"slug"`
	Bio           *string `json:"bio"`
	ShortBio      *string `json:"short_bio"`
	ImageURL      *string `json:"image_url"`
	Genre         *string `json:"genre"`
	SpotifyURL    *string `json:"spotify_url"`
	SoundcloudURL *string `json:"soundcloud_url"`
	InstagramURL  *string `json:"instagram_url"`
	YoutubeURL    *string `json:"youtube_url"`
	IsFeatured    *bool   `json:"is_featured"`
	IsActive      *bool   `json:"is_active"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, utils.NotBlank, utils.RuneLength(1, maxNameLength)),
		validation.Field(&r.Slug, validation.NilOrNotEmpty, utils.Slug, utils.RuneLength(0, maxNameLength)),
		validation.Field(&r.ImageURL, urlRules()...),
		validation.Field(&r.SpotifyURL, urlRules()...),
		validation.Field(&r.SoundcloudURL, urlRules()...),
		validation.Field(&r.InstagramURL, urlRules()...),
		validation.Field(&r.YoutubeURL, urlRules()...),
	)
}

// ApplyTo ghi các field có mặt vào UpdateBuilder
func (r UpdateArtistRequest) ApplyTo(b *utils.UpdateBuilder) {
	b.SetRequiredString("name", r.Name).
		SetRequiredString("slug", r.Slug).
		SetString("bio", r.Bio).
		SetString("short_bio", r.ShortBio).
		SetString("image_url", r.ImageURL).
		SetString("genre", r.Genre).
		SetString("spotify_url", r.SpotifyURL).
		SetString("soundcloud_url", r.SoundcloudURL).
		SetString("instagram_url", r.InstagramURL).
		SetString("youtube_url", r.YoutubeURL).
		SetBool("is_featured", r.IsFeatured).
		SetBool("is_active", r.IsActive)
}
