package model

import (
	"errors"
	"net/http"
)

var (
	ErrNoFiles      = errors.New("no files uploaded")
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
	ErrEmptyFile    = errors.New("file is empty")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNoFiles):
		return "NO_FILES"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoFiles):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
