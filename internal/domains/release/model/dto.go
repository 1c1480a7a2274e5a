package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"hypehouse-backend/internal/shared/utils"
)

const (
	maxTitleLength = 255
	maxURLLength   = 500
	maxGenreLength = 100
)

func urlRules() []validation.Rule {
	return []validation.Rule{utils.AbsoluteURL, utils.RuneLength(0, maxURLLength)}
}

// CreateReleaseRequest - POST /admin/releases
type CreateReleaseRequest struct {
	Title         string  `json:"title"`
	ArtistID      *string `json:"artist_id"`
	ArtistName    *string `json:"artist_name"`
	CoverURL      *string `json:"cover_url"`
	ReleaseDate   *string `json:"release_date"`
	Genre         *string `json:"genre"`
	SpotifyURL    *string `json:"spotify_url"`
	AppleMusicURL *string `json:"apple_music_url"`
	SoundcloudURL *string `json:"soundcloud_url"`
	DownloadURL   *string `json:"download_url"`
	IsFeatured    *bool   `json:"is_featured"`
	IsActive      *bool   `json:"is_active"`
}

func (r CreateReleaseRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, utils.NotBlank, utils.RuneLength(1, maxTitleLength)),
		validation.Field(&r.ArtistID, is.UUID),
		validation.Field(&r.ArtistName, utils.RuneLength(0, maxTitleLength)),
		validation.Field(&r.ReleaseDate, utils.DateOnly),
		validation.Field(&r.Genre, utils.RuneLength(0, maxGenreLength)),
		validation.Field(&r.CoverURL, urlRules()...),
		validation.Field(&r.SpotifyURL, urlRules()...),
		validation.Field(&r.AppleMusicURL, urlRules()...),
		validation.Field(&r.SoundcloudURL, urlRules()...),
		validation.Field(&r.DownloadURL, urlRules()...),
	)
	if err != nil {
		return err
	}
	if r.ParsedArtistID() == nil && utils.NullIfEmpty(r.ArtistName) == nil {
		return validation.Errors{"artist_name": errors.New("select an artist or enter an artist name")}
	}
	return nil
}

// ParsedArtistID trả về nil khi không chọn artist
func (r CreateReleaseRequest) ParsedArtistID() *uuid.UUID {
	return parseOptionalUUID(r.ArtistID)
}

// ToEntity: release_date mặc định là ngày hiện tại (UTC)
func (r CreateReleaseRequest) ToEntity(now time.Time) *Release {
	date := utils.Deref(utils.NullIfEmpty(r.ReleaseDate))
	if date == "" {
		date = now.UTC().Format(time.DateOnly)
	}
	return &Release{
		Title:         strings.TrimSpace(r.Title),
		ArtistID:      r.ParsedArtistID(),
		ArtistName:    utils.Deref(utils.NullIfEmpty(r.ArtistName)),
		CoverURL:      utils.NullIfEmpty(r.CoverURL),
		ReleaseDate:   date,
		Genre:         utils.NullIfEmpty(r.Genre),
		SpotifyURL:    utils.NullIfEmpty(r.SpotifyURL),
		AppleMusicURL: utils.NullIfEmpty(r.AppleMusicURL),
		SoundcloudURL: utils.NullIfEmpty(r.SoundcloudURL),
		DownloadURL:   utils.NullIfEmpty(r.DownloadURL),
		IsFeatured:    r.IsFeatured != nil && *r.IsFeatured,
		IsActive:      r.IsActive == nil || *r.IsActive,
	}
}

// UpdateReleaseRequest - PATCH /admin/releases/:id.
// artist_id: nil = giữ nguyên, "" = bỏ liên kết, uuid = liên kết artist mới.
type UpdateReleaseRequest struct {
	Title         *string `json:"title"`
	ArtistID      *string `json:"artist_id"`
	ArtistName    *string `json:"artist_name"`
	CoverURL      *string `json:"cover_url"`
	ReleaseDate   *string `json:"release_date"`
	Genre         *string `json:"genre"`
	SpotifyURL    *string `json:"spotify_url"`
	AppleMusicURL *string `json:"apple_music_url"`
	SoundcloudURL *string `json:"soundcloud_url"`
	DownloadURL   *string `json:"download_url"`
	IsFeatured    *bool   `json:"is_featured"`
	IsActive      *bool   `json:"is_active"`
}

func (r UpdateReleaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, utils.NotBlank, utils.RuneLength(1, maxTitleLength)),
		validation.Field(&r.ArtistID, is.UUID),
		validation.Field(&r.ArtistName, utils.RuneLength(0, maxTitleLength)),
		validation.Field(&r.ReleaseDate, validation.NilOrNotEmpty, utils.DateOnly),
		validation.Field(&r.Genre, utils.RuneLength(0, maxGenreLength)),
		validation.Field(&r.CoverURL, urlRules()...),
		validation.Field(&r.SpotifyURL, urlRules()...),
		validation.Field(&r.AppleMusicURL, urlRules()...),
		validation.Field(&r.SoundcloudURL, urlRules()...),
		validation.Field(&r.DownloadURL, urlRules()...),
	)
}

// ResolveArtist tính artist_id và artist_name hiệu lực sau patch.
// linkedName != "" khi artist_id hiệu lực khác nil; repository tra tên artist trước khi gọi.
func (r UpdateReleaseRequest) ResolveArtist(currentID *uuid.UUID, currentName string) (*uuid.UUID, string, error) {
	id := currentID
	if r.ArtistID != nil {
		id = parseOptionalUUID(r.ArtistID)
	}

	name := currentName
	if r.ArtistName != nil {
		name = strings.TrimSpace(*r.ArtistName)
	}
	if id == nil && name == "" {
		return nil, "", validation.Errors{"artist_name": errors.New("select an artist or enter an artist name")}
	}
	return id, name, nil
}

// ApplyTo ghi các cột không liên quan tới artist vào UpdateBuilder
func (r UpdateReleaseRequest) ApplyTo(b *utils.UpdateBuilder) {
	b.SetRequiredString("title", r.Title).
		SetString("cover_url", r.CoverURL).
		SetString("genre", r.Genre).
		SetString("spotify_url", r.SpotifyURL).
		SetString("apple_music_url", r.AppleMusicURL).
		SetString("soundcloud_url", r.SoundcloudURL).
		SetString("download_url", r.DownloadURL).
		SetBool("is_featured", r.IsFeatured).
		SetBool("is_active", r.IsActive)
	if r.ReleaseDate != nil {
		if d, err := ParseDate(*r.ReleaseDate); err == nil {
			b.Set("release_date", d)
		}
	}
}

// ParseDate đọc ngày YYYY-MM-DD thành time.Time (UTC) để bind vào cột DATE
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(s))
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil || id == uuid.Nil {
		return nil
	}
	return &id
}
