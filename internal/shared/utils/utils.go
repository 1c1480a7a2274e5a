package utils

import (
	"strings"

	"github.com/google/uuid"
)

func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return uid
}

// NullIfEmpty trim chuỗi; chuỗi rỗng thành nil (cột NULL)
func NullIfEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func StringPtr(s string) *string {
	return &s
}

// Deref trả về "" cho nil
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
