package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status là trạng thái review của một demo
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Statuses theo thứ tự hiển thị của bộ lọc admin
var Statuses = []Status{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusFilter rỗng = mọi trạng thái
type StatusFilter string

// ParseStatusFilter: "", "all" hoặc một Status
func ParseStatusFilter(raw string) (StatusFilter, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "all" {
		return "", nil
	}
	if !Status(raw).Valid() {
		return "", ErrInvalidStatus
	}
	return StatusFilter(raw), nil
}

// Genres của form gửi demo
var Genres = []string{
	"Hip-Hop",
	"R&B",
	"Pop",
	"Electronic / Dance",
	"Rock",
	"Alternative",
	"Soul / Funk",
	"Jazz",
	"Afrobeats",
	"Latin",
	"Other",
}

// Submission là một demo gửi từ form public; người gửi không sửa được sau khi tạo
type Submission struct {
	ID         uuid.UUID `json:"id"`
	ArtistName string    `json:"artist_name"`
	Email      string    `json:"email"`
	Genre      string    `json:"genre"`
	MusicLink  string    `json:"music_link"`
	Bio        string    `json:"bio"`
	SocialLink *string   `json:"social_link"`
	Status     Status    `json:"status"`
	AdminNotes *string   `json:"admin_notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
