// Package auth implements account signup/login with opaque bearer tokens
// persisted alongside the game data.
package auth

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DamienCastello/red-dawn-raid/internal/storage"
)

var (
	ErrCredentialsRequired = errors.New("username & password required")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid auth token")
)

// Service issues and validates sessions against the user/token tables.
type Service struct {
	repo storage.Repository
}

// NewService wires an auth service over the given repository.
func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// Signup creates an account with a bcrypt password hash and returns it.
func (s *Service) Signup(username, password string) (*storage.User, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	if _, err := s.repo.GetUserByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &storage.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and issues a fresh opaque bearer token.
func (s *Service) Login(username, password string) (*storage.User, string, error) {
	u, err := s.repo.GetUserByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	if err := s.repo.SaveToken(&storage.AuthToken{Token: token, UserID: u.ID}); err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// RequireUser resolves a bearer token to its account.
func (s *Service) RequireUser(token string) (*storage.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	t, err := s.repo.GetToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := s.repo.GetUserByID(t.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}
