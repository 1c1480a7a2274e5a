package model

import (
	"errors"
	"net/http"

	"hypehouse-backend/pkg/database"
)

var (
	ErrReleaseNotFound = errors.New("release not found")
	// artist_id trỏ tới artist không tồn tại
	ErrUnknownArtist = errors.New("selected artist does not exist")
	ErrEmptyUpdate   = errors.New("no fields to update")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrReleaseNotFound):
		return "RELEASE_NOT_FOUND"
	case errors.Is(err, ErrUnknownArtist):
		return "UNKNOWN_ARTIST"
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
	case errors.Is(err, ErrReleaseNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownArtist), errors.Is(err, ErrEmptyUpdate):
		return http.StatusBadRequest
	case database.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
