package model

import (
	"time"

	"github.com/google/uuid"
)

// Release là một bản phát hành âm nhạc.
// ArtistName được copy từ artist tại thời điểm ghi, không join khi đọc.
type Release struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	ArtistID      *uuid.UUID `json:"artist_id"`
	ArtistName    string     `json:"artist_name"`
	CoverURL      *string    `json:"cover_url"`
	ReleaseDate   string     `json:"release_date"` // YYYY-MM-DD
	Genre         *string    `json:"genre"`
	SpotifyURL    *string    `json:"spotify_url"`
	AppleMusicURL *string    `json:"apple_music_url"`
	SoundcloudURL *string    `json:"soundcloud_url"`
	DownloadURL   *string    `json:"download_url"`
	IsFeatured    bool       `json:"is_featured"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
