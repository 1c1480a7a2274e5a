package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Các chữ cái không tách được bằng NFD
var foldReplacer = strings.NewReplacer(
	"đ", "d", "Đ", "D",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
)

// GenerateSlug chuyển tên thành slug URL-safe:
// "Marcus Wave!!" → "marcus-wave", " Néon   Pulse " → "neon-pulse"
func GenerateSlug(input string) string {
	// Step 1: bỏ dấu ("Néon" → "Neon")
	ascii := RemoveDiacritics(input)

	// Step 2: lowercase
	lower := strings.ToLower(ascii)

	// Step 3: mỗi cụm ký tự ngoài [a-z0-9] thành một dấu "-"
	hyphenated := nonSlugChars.ReplaceAllString(lower, "-")

	// Step 4: trim "-" ở hai đầu
	return strings.Trim(hyphenated, "-")
}

// RemoveDiacritics: NFD decomposition rồi bỏ combining marks (Mn)
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, foldReplacer.Replace(input))
	if err != nil {
		return input
	}
	return out
}

// IsValidSlug kiểm tra slug do admin nhập tay
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
