package waitlist

import (
	"regexp"
	"strings"
)

var (
	// Shape check only: non-whitespace local part, one @, a dot in the
	// domain. No DNS or mailbox verification.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Twitter handles: 3-15 characters of letters, digits, underscores.
	handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,15}$`)
)

// ValidEmail reports whether input is a syntactically plausible address.
func ValidEmail(input string) bool {
	return emailPattern.MatchString(input)
}

// ValidHandle reports whether input, after stripping one optional leading @,
// is a well-formed handle.
func ValidHandle(input string) bool {
	return handlePattern.MatchString(NormalizeHandle(input))
}

// NormalizeHandle strips one optional leading @. Case is preserved.
func NormalizeHandle(input string) string {
	return strings.TrimPrefix(input, "@")
}

// handleKey is the canonical lowercased form used for case-insensitive
// uniqueness checks and the unique index.
func handleKey(handle string) string {
	return strings.ToLower(NormalizeHandle(handle))
}
