package model

import (
	"errors"
	"net/http"

	"hypehouse-backend/pkg/database"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEmptyUpdate   = errors.New("no fields to update")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "EVENT_NOT_FOUND"
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
	case errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyUpdate):
		return http.StatusBadRequest
	case database.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
