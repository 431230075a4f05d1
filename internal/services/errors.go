package services

import (
	"errors"
)

var (
	// ErrInvalidStatus indicates a status value outside the allowed set
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAdvisorDisabled indicates the pricing advisor is not running,
	// so personalized recommendations cannot be produced
	ErrAdvisorDisabled = errors.New("pricing advisor disabled")
)
