package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/pkg/jwt"
	"github.com/mathangi54/Travelling-System/pkg/validator"
)

// AuthService owns registration and login
type AuthService struct {
	users      *database.UserRepository
	jwtService *jwt.Service
	logger     *logrus.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users *database.UserRepository, jwtService *jwt.Service, logger *logrus.Logger) *AuthService {
	return &AuthService{users: users, jwtService: jwtService, logger: logger}
}

// Register creates an account and returns it with a fresh token
func (s *AuthService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validator.ValidateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and returns the account with a fresh
// token. Unknown emails and wrong passwords are indistinguishable.
func (s *AuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validator.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}
