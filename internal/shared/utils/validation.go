package utils

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AbsoluteURL là ozzo rule: chuỗi rỗng được bỏ qua, còn lại phải là URL http(s) tuyệt đối.
// is.URL chấp nhận cả "example.com" nên không dùng được ở đây.
var AbsoluteURL = validation.By(func(value interface{}) error {
	s, isNil := stringValue(value)
	if isNil || s == "" {
		return nil
	}
	if !IsAbsoluteURL(s) {
		return errors.New("must be an absolute http(s) URL")
	}
	return nil
})

// IsAbsoluteURL: scheme http/https và có host
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// RuneLength là Length tính theo ký tự thay vì byte; min/max = 0 là không giới hạn
func RuneLength(min, max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, isNil := stringValue(value)
		if isNil || s == "" {
			return nil
		}
		n := utf8.RuneCountInString(s)
		switch {
		case min > 0 && max > 0 && (n < min || n > max):
			return validation.NewError("validation_length_out_of_range", "the length must be between {{.min}} and {{.max}}").
				SetParams(map[string]interface{}{"min": min, "max": max})
		case min > 0 && n < min:
			return validation.NewError("validation_length_too_short", "the length must be no less than {{.min}}").
				SetParams(map[string]interface{}{"min": min})
		case max > 0 && n > max:
			return validation.NewError("validation_length_too_long", "the length must be no more than {{.max}}").
				SetParams(map[string]interface{}{"max": max})
		}
		return nil
	})
}

// Slug rule cho slug nhập tay
var Slug = validation.By(func(value interface{}) error {
	s, isNil := stringValue(value)
	if isNil || s == "" {
		return nil
	}
	if !IsValidSlug(s) {
		return errors.New("must contain only lowercase letters, digits and single hyphens")
	}
	return nil
})

// RFC3339 rule cho timestamp dạng chuỗi
var RFC3339 = validation.By(func(value interface{}) error {
	s, isNil := stringValue(value)
	if isNil || s == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return errors.New("must be an RFC3339 timestamp")
	}
	return nil
})

// DateOnly rule cho ngày dạng YYYY-MM-DD
var DateOnly = validation.By(func(value interface{}) error {
	s, isNil := stringValue(value)
	if isNil || s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return errors.New("must be a date in YYYY-MM-DD format")
	}
	return nil
})

// NotBlank: Required nhưng không chấp nhận chuỗi chỉ có khoảng trắng
var NotBlank = validation.By(func(value interface{}) error {
	s, isNil := stringValue(value)
	if !isNil && strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, false
	case *string:
		if v == nil {
			return "", true
		}
		return *v, false
	default:
		s, err := validation.EnsureString(value)
		if err != nil {
			return "", true
		}
		return s, false
	}
}
