package identity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Both limits match the 254-char columns on the accounts table.
const (
	MaxUsernameLen = 254
	MaxEmailLen    = 254
)

// NormalizeUsername trims surrounding whitespace and applies NFC so visually
// identical handles compare equal. Case is preserved.
func NormalizeUsername(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// NormalizeEmail trims and lowercases; email uniqueness is case-insensitive.
func NormalizeEmail(raw string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(raw)))
}
