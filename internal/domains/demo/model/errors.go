package model

import (
	"errors"
	"net/http"

	"hypehouse-backend/pkg/database"
)

var (
	ErrSubmissionNotFound = errors.New("demo submission not found")
	ErrInvalidStatus      = errors.New("status must be all, pending, reviewed, accepted or rejected")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrSubmissionNotFound):
		return "DEMO_NOT_FOUND"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case database.IsForbidden(err):
		return "FORBIDDEN"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrSubmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	case database.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
