package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Position là vùng hiển thị của slide trên trang chủ
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionBoth   Position = "both"
)

func (p Position) Valid() bool {
	return p == PositionTop || p == PositionBottom || p == PositionBoth
}

// Zone là vùng được hỏi khi đọc public: top hoặc bottom
type Zone string

const (
	ZoneTop    Zone = "top"
	ZoneBottom Zone = "bottom"
)

// ParseZone chỉ nhận top|bottom
func ParseZone(s string) (Zone, error) {
	switch z := Zone(strings.ToLower(strings.TrimSpace(s))); z {
	case ZoneTop, ZoneBottom:
		return z, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidZone, s)
	}
}

type Slide struct {
	ID           uuid.UUID `json:"id"`
	ImageURL     string    `json:"image_url"`
	Title        string    `json:"title"`
	Subtitle     *string   `json:"subtitle"`
	Link         *string   `json:"link"`
	Position     Position  `json:"position"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ShowsIn báo slide có thuộc zone không (position = zone hoặc both)
func (s Slide) ShowsIn(zone Zone) bool {
	return s.Position == PositionBoth || string(s.Position) == string(zone)
}
