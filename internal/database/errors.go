package database

import (
	"errors"
)

var (
	ErrTourNotFound              = errors.New("tour not found")
	ErrBookingNotFound           = errors.New("booking not found")
	ErrUserNotFound              = errors.New("user not found")
	ErrGuideNotFound             = errors.New("guide not found")
	ErrGuideRequestNotFound      = errors.New("guide request not found")
	ErrCustomTourRequestNotFound = errors.New("custom tour request not found")
	ErrDuplicateUser             = errors.New("user with this email or username already exists")
)
