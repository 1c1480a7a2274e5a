package model

import (
	"errors"
	"net/http"

	"hypehouse-backend/pkg/database"
)

var (
	ErrSlideNotFound = errors.New("promo slide not found")
	ErrInvalidZone   = errors.New("zone must be top or bottom")
	ErrEmptyUpdate   = errors.New("no fields to update")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrSlideNotFound):
		return "PROMO_NOT_FOUND"
	case errors.Is(err, ErrInvalidZone):
		return "INVALID_ZONE"
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
	case errors.Is(err, ErrSlideNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidZone), errors.Is(err, ErrEmptyUpdate):
		return http.StatusBadRequest
	case database.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
