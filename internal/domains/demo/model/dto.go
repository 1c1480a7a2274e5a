package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"hypehouse-backend/internal/shared/utils"
)

const maxNotesLength = 5000

// SubmitRequest - POST /demos. Field JSON theo form public (camelCase).
type SubmitRequest struct {
	ArtistName string `json:"artistName"`
	Email      string `json:"email"`
	Genre      string `json:"genre"`
	MusicLink  string `json:"musicLink"`
	Bio        string `json:"bio"`
	SocialLink string `json:"socialLink"`
}

func genreValues() []interface{} {
	out := make([]interface{}, len(Genres))
	for i, g := range Genres {
		out[i] = g
	}
	return out
}

// Validate chạy trên bản đã Normalize
func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistName,
			validation.Required.Error("Artist name is required"),
			utils.RuneLength(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Please enter a valid email"),
			utils.RuneLength(0, 255),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("Please select a genre"),
			validation.In(genreValues()...).Error("Please select a genre"),
		),
		validation.Field(&r.MusicLink,
			validation.Required.Error("Music link is required"),
			utils.AbsoluteURL,
			utils.RuneLength(0, 500),
		),
		validation.Field(&r.Bio,
			validation.Required.Error("Bio is required"),
			utils.RuneLength(50, 1000),
		),
		validation.Field(&r.SocialLink,
			utils.AbsoluteURL,
			utils.RuneLength(0, 500),
		),
	)
}

// Normalize trim mọi field
func (r SubmitRequest) Normalize() SubmitRequest {
	return SubmitRequest{
		ArtistName: strings.TrimSpace(r.ArtistName),
		Email:      strings.TrimSpace(r.Email),
		Genre:      strings.TrimSpace(r.Genre),
		MusicLink:  strings.TrimSpace(r.MusicLink),
		Bio:        strings.TrimSpace(r.Bio),
		SocialLink: strings.TrimSpace(r.SocialLink),
	}
}

// ToEntity: status luôn là pending
func (r SubmitRequest) ToEntity() *Submission {
	return &Submission{
		ArtistName: r.ArtistName,
		Email:      r.Email,
		Genre:      r.Genre,
		MusicLink:  r.MusicLink,
		Bio:        r.Bio,
		SocialLink: utils.NullIfEmpty(&r.SocialLink),
		Status:     StatusPending,
	}
}

// UpdateStatusRequest - PATCH /admin/demos/:id/status
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required,
			validation.In(StatusPending, StatusReviewed, StatusAccepted, StatusRejected).
				Error("must be one of pending, reviewed, accepted, rejected"),
		),
	)
}

// UpdateNotesRequest - PATCH /admin/demos/:id/notes; chuỗi rỗng xóa ghi chú
type UpdateNotesRequest struct {
	AdminNotes string `json:"admin_notes"`
}

func (r UpdateNotesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AdminNotes, utils.RuneLength(0, maxNotesLength)),
	)
}

// SubmitResponse không trả lại dữ liệu đã gửi
type SubmitResponse struct {
	Submitted bool `json:"submitted"`
}
