package validation

import (
	"errors"
	"strings"
	"unicode"
)

// MaxQueryLength caps the size of an ad-hoc statement accepted from a client.
const MaxQueryLength = 64 * 1024

var ErrQueryTooLong = errors.New("query exceeds maximum length")

// StripUnprintable removes non-printable characters, allowing common whitespace
// like space, tab, newline, and carriage return.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}

// NormalizeQuery prepares client-supplied SQL for the allow-list check:
// control characters are dropped and surrounding whitespace trimmed.
func NormalizeQuery(query string) (string, error) {
	if len(query) > MaxQueryLength {
		return "", ErrQueryTooLong
	}
	return strings.TrimSpace(StripUnprintable(query)), nil
}
