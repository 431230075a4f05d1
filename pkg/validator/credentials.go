package validator

import (
	"strings"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// ValidateRegistration checks a registration request in field order
func ValidateRegistration(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return newMissingField("username")
	}
	if strings.TrimSpace(req.Email) == "" {
		return newMissingField("email")
	}
	if req.Password == "" {
		return newMissingField("password")
	}
	if !IsValidEmail(strings.TrimSpace(req.Email)) {
		return newInvalidEmail("email")
	}
	if len(req.Password) < MinPasswordLength {
		return newOutOfRange("password", "Password must be at least 6 characters long")
	}
	return nil
}

// ValidateLogin checks a login request in field order
func ValidateLogin(req *models.LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return newMissingField("email")
	}
	if req.Password == "" {
		return newMissingField("password")
	}
	return nil
}
