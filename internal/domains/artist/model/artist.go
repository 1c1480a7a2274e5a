package model

import (
	"time"

	"github.com/google/uuid"
)

// Artist là một nghệ sĩ trong roster của label
type Artist struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Bio           *string   `json:"bio"`
	ShortBio      *string   `json:"short_bio"`
	ImageURL      *string   `json:"image_url"`
	Genre         *string   `json:"genre"`
	SpotifyURL    *string   `json:"spotify_url"`
	SoundcloudURL *string   `json:"soundcloud_url"`
	InstagramURL  *string   `json:"instagram_url"`
	YoutubeURL    *string   `json:"youtube_url"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Placeholder = true khi trang chi tiết không tìm thấy nghệ sĩ
	Placeholder bool `json:"placeholder,omitempty"`
}

// Option là một dòng của dropdown chọn nghệ sĩ
type Option struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

const (
	placeholderName     = "Artist"
	placeholderGenre    = "Music"
	placeholderImageURL = "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&q=80"
	placeholderShortBio = "Talented artist on the Hype House roster."
	placeholderBio      = "This artist is part of the Hype House Creative family. Check back soon for more information about their music and upcoming releases."
)

// PlaceholderArtist được trả về cho slug không tồn tại hoặc đã ẩn
func PlaceholderArtist(slug string) *Artist {
	genre, image, shortBio, bio := placeholderGenre, placeholderImageURL, placeholderShortBio, placeholderBio
	return &Artist{
		Name:        placeholderName,
		Slug:        slug,
		Genre:       &genre,
		ImageURL:    &image,
		ShortBio:    &shortBio,
		Bio:         &bio,
		IsActive:    true,
		Placeholder: true,
	}
}
