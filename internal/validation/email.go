package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")

	// Strict pattern: letters/digits/._%+- local part, dotted domain,
	// alphabetic TLD of at least 2 characters. Input is lowercased before
	// matching, so lowercase classes are enough.
	emailRegex = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

	// Disposable email domains are rejected outright
	blockedDomains = map[string]bool{
		"tempmail.com":   true,
		"throwaway.com":  true,
		"mailinator.com": true,
	}
)

// SanitizeEmail trims, lowercases and validates a raw email address,
// returning the normalized form. It never panics on malformed input;
// anything that fails validation returns ErrInvalidEmail.
func SanitizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))

	// RFC 5321 bounds the full address at 254; anything under 5 ("a@b.c"
	// being the shortest plausible address) is junk
	if len(email) < 5 || len(email) > 254 {
		return "", ErrInvalidEmail
	}

	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}

	_, domain, _ := strings.Cut(email, "@")
	if blockedDomains[domain] {
		return "", ErrInvalidEmail
	}

	return email, nil
}
