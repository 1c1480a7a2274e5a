package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"hypehouse-backend/internal/shared/utils"
)

const (
	maxTitleLength = 255
	maxURLLength   = 500
)

var positionRule = validation.In(PositionTop, PositionBottom, PositionBoth).
	Error("must be one of top, bottom, both")

// CreateSlideRequest - POST /admin/promos
type CreateSlideRequest struct {
	ImageURL     string    `json:"image_url"`
	Title        string    `json:"title"`
	Subtitle     *string   `json:"subtitle"`
	Link         *string   `json:"link"`
	Position     *Position `json:"position"`
	DisplayOrder *int      `json:"display_order"`
	IsActive     *bool     `json:"is_active"`
}

func (r CreateSlideRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ImageURL, validation.Required, utils.AbsoluteURL, utils.RuneLength(0, maxURLLength)),
		validation.Field(&r.Title, validation.Required, utils.NotBlank, utils.RuneLength(1, maxTitleLength)),
		validation.Field(&r.Link, utils.AbsoluteURL, utils.RuneLength(0, maxURLLength)),
		validation.Field(&r.Position, positionRule),
		validation.Field(&r.DisplayOrder, validation.Min(0)),
	)
}

// ToEntity: position mặc định both (kể cả khi gửi ""), display_order mặc định 0
func (r CreateSlideRequest) ToEntity() *Slide {
	s := &Slide{
		ImageURL: strings.TrimSpace(r.ImageURL),
		Title:    strings.TrimSpace(r.Title),
		Subtitle: utils.NullIfEmpty(r.Subtitle),
		Link:     utils.NullIfEmpty(r.Link),
		Position: PositionBoth,
		IsActive: r.IsActive == nil || *r.IsActive,
	}
	if r.Position != nil && *r.Position != "" {
		s.Position = *r.Position
	}
	if r.DisplayOrder != nil {
		s.DisplayOrder = *r.DisplayOrder
	}
	return s
}

// UpdateSlideRequest - PATCH /admin/promos/:id
type UpdateSlideRequest struct {
	ImageURL     *string   `json:"image_url"`
	Title        *string   `json:"title"`
	Subtitle     *string   `json:"subtitle"`
	Link         *string   `json:"link"`
	Position     *Position `json:"position"`
	DisplayOrder *int      `json:"display_order"`
	IsActive     *bool     `json:"is_active"`
}

func (r UpdateSlideRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ImageURL, validation.NilOrNotEmpty, utils.AbsoluteURL, utils.RuneLength(0, maxURLLength)),
		validation.Field(&r.Title, validation.NilOrNotEmpty, utils.NotBlank, utils.RuneLength(1, maxTitleLength)),
		validation.Field(&r.Link, utils.AbsoluteURL, utils.RuneLength(0, maxURLLength)),
		validation.Field(&r.Position, validation.NilOrNotEmpty, positionRule),
		validation.Field(&r.DisplayOrder, validation.Min(0)),
	)
}

func (r UpdateSlideRequest) ApplyTo(b *utils.UpdateBuilder) {
	b.SetRequiredString("image_url", r.ImageURL).
		SetRequiredString("title", r.Title).
		SetString("subtitle", r.Subtitle).
		SetString("link", r.Link).
		SetInt("display_order", r.DisplayOrder).
		SetBool("is_active", r.IsActive)
	if r.Position != nil {
		b.Set("position", string(*r.Position))
	}
}
