package utils

import (
	"strings"
)

// NormalizeEmail trims surrounding whitespace and lower-cases an email
// address. Challenge lookups key on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the address is plausibly an email: non-empty
// with an @ separating a local part and a domain.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
