package model

import (
	"errors"
	"net/http"

	"hypehouse-backend/pkg/database"
)

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrDuplicateSlug  = errors.New("an artist with this slug already exists")
	ErrEmptyUpdate    = errors.New("no fields to update")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		return "ARTIST_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrEmptyUpdate):
		return "EMPTY_UPDATE"
	case database.IsForbidden(err):
		return "FORBIDDEN"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyUpdate):
		return http.StatusBadRequest
	case database.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
