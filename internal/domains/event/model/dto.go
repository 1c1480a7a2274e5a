package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"hypehouse-backend/internal/shared/utils"
)

const (
	maxTextLength  = 255
	maxURLLength   = 500
	maxPriceLength = 100
)

func urlRules() []validation.Rule {
	return []validation.Rule{utils.AbsoluteURL, utils.RuneLength(0, maxURLLength)}
}

// CreateEventRequest - POST /admin/events; event_date là RFC3339
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Venue       string  `json:"venue"`
	Location    string  `json:"location"`
	EventDate   string  `json:"event_date"`
	ImageURL    *string `json:"image_url"`
	TicketURL   *string `json:"ticket_url"`
	TicketPrice *string `json:"ticket_price"`
	IsFeatured  *bool   `json:"is_featured"`
	IsActive    *bool   `json:"is_active"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, utils.NotBlank, utils.RuneLength(1, maxTextLength)),
		validation.Field(&r.Venue, validation.Required, utils.NotBlank, utils.RuneLength(1, maxTextLength)),
		validation.Field(&r.Location, validation.Required, utils.NotBlank, utils.RuneLength(1, maxTextLength)),
		validation.Field(&r.EventDate, validation.Required, utils.RFC3339),
		validation.Field(&r.ImageURL, urlRules()...),
		validation.Field(&r.TicketURL, urlRules()...),
		validation.Field(&r.TicketPrice, utils.RuneLength(0, maxPriceLength)),
	)
}

// ToEntity gọi sau Validate
func (r CreateEventRequest) ToEntity() *Event {
	date, _ := time.Parse(time.RFC3339, r.EventDate)
	return &Event{
		Title:       strings.TrimSpace(r.Title),
		Description: utils.NullIfEmpty(r.Description),
		Venue:       strings.TrimSpace(r.Venue),
		Location:    strings.TrimSpace(r.Location),
		EventDate:   date,
		ImageURL:    utils.NullIfEmpty(r.ImageURL),
		TicketURL:   utils.NullIfEmpty(r.TicketURL),
		TicketPrice: utils.NullIfEmpty(r.TicketPrice),
		IsFeatured:  r.IsFeatured != nil && *r.IsFeatured,
		IsActive:    r.IsActive == nil || *r.IsActive,
	}
}

// UpdateEventRequest - PATCH /admin/events/:id
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Venue       *string `json:"venue"`
	Location    *string `json:"location"`
	EventDate   *string `json:"event_date"`
	ImageURL    *string `json:"image_url"`
	TicketURL   *string `json:"ticket_url"`
	TicketPrice *string `json:"ticket_price"`
	IsFeatured  *bool   `json:"is_featured"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, utils.NotBlank, utils.RuneLength(1, maxTextLength)),
		validation.Field(&r.Venue, validation.NilOrNotEmpty, utils.NotBlank, utils.RuneLength(1, maxTextLength)),
		validation.Field(&r.Location, validation.NilOrNotEmpty, utils.NotBlank, utils.RuneLength(1, maxTextLength)),
		validation.Field(&r.EventDate, validation.NilOrNotEmpty, utils.RFC3339),
		validation.Field(&r.ImageURL, urlRules()...),
		validation.Field(&r.TicketURL, urlRules()...),
		validation.Field(&r.TicketPrice, utils.RuneLength(0, maxPriceLength)),
	)
}

func (r UpdateEventRequest) ApplyTo(b *utils.UpdateBuilder) {
	b.SetRequiredString("title", r.Title).
		SetString("description", r.Description).
		SetRequiredString("venue", r.Venue).
		SetRequiredString("location", r.Location).
		SetString("image_url", r.ImageURL).
		SetString("ticket_url", r.TicketURL).
		SetString("ticket_price", r.TicketPrice).
		SetBool("is_featured", r.IsFeatured).
		SetBool("is_active", r.IsActive)
	if r.EventDate != nil {
		if date, err := time.Parse(time.RFC3339, strings.TrimSpace(*r.EventDate)); err == nil {
			b.Set("event_date", date)
		}
	}
}
