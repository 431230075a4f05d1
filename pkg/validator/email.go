package validator

import (
	"regexp"
)

// emailRegex matches local@domain.tld with no whitespace
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether email looks like a deliverable address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
