package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	EventDate   time.Time `json:"event_date"`
	ImageURL    *string   `json:"image_url"`
	TicketURL   *string   `json:"ticket_url"`
	TicketPrice *string   `json:"ticket_price"`
	IsFeatured  bool      `json:"is_featured"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Chỉ có trên placeholder của trang chi tiết
	FullDescription *string `json:"full_description,omitempty"`
	Placeholder     bool    `json:"placeholder,omitempty"`
}

// Listing là trang events public, phân loại tại thời điểm request
type Listing struct {
	Featured *Event  `json:"featured"`
	Upcoming []Event `json:"upcoming"`
	Past     []Event `json:"past"`
}

// Partition chia events (đã sắp theo event_date tăng dần) thành upcoming
// (event_date >= now) và past. Featured là upcoming đầu tiên có is_featured,
// không có thì là upcoming sớm nhất.
func Partition(events []Event, now time.Time) Listing {
	listing := Listing{Upcoming: make([]Event, 0), Past: make([]Event, 0)}
	for _, e := range events {
		if e.EventDate.Before(now) {
			listing.Past = append(listing.Past, e)
		} else {
			listing.Upcoming = append(listing.Upcoming, e)
		}
	}

	for i := range listing.Upcoming {
		if listing.Upcoming[i].IsFeatured {
			featured := listing.Upcoming[i]
			listing.Featured = &featured
			return listing
		}
	}
	if len(listing.Upcoming) > 0 {
		featured := listing.Upcoming[0]
		listing.Featured = &featured
	}
	return listing
}

const (
	placeholderTitle           = "Event"
	placeholderTBA             = "TBA"
	placeholderImageURL        = "https://images.unsplash.com/photo-1540039155733-5bb30b53aa14?w=1200&q=80"
	placeholderDescription     = "More details coming soon."
	placeholderFullDescription = "Check back soon for full event details."
)

// PlaceholderEvent được trả về khi id không tồn tại, đã ẩn hoặc sai format
func PlaceholderEvent(id uuid.UUID, now time.Time) *Event {
	image, desc, full, price := placeholderImageURL, placeholderDescription, placeholderFullDescription, placeholderTBA
	return &Event{
		ID:              id,
		Title:           placeholderTitle,
		Venue:           placeholderTBA,
		Location:        placeholderTBA,
		EventDate:       now,
		ImageURL:        &image,
		Description:     &desc,
		FullDescription: &full,
		TicketPrice:     &price,
		IsActive:        true,
		Placeholder:     true,
	}
}
