package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bookshelfapp/bookshelf-server/internal/auth"
	"github.com/bookshelfapp/bookshelf-server/internal/models"
	repo "github.com/bookshelfapp/bookshelf-server/internal/repository"
	"github.com/bookshelfapp/bookshelf-server/internal/validate"
)

type UserService struct {
	users  repo.Users
	tokens *auth.TokenManager
}

func NewUserService(users repo.Users, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register validates and normalizes the identity fields, hashes the
// password, and creates the account. Uniqueness of name and email rides on
// the database constraints, so a concurrent duplicate surfaces here as
// ErrEmailTaken rather than slipping through a racy pre-check.
func (s *UserService) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, "", &validate.Error{Message: "Please enter all fields"}
	}
	name, err := validate.UserName(name)
	if err != nil {
		return models.User{}, "", err
	}
	if err := validate.Password(password); err != nil {
		return models.User{}, "", err
	}
	email, err = validate.Email(email)
	if err != nil {
		return models.User{}, "", err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}
	u, err := s.users.Create(ctx, name, email, hash)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.User{}, "", ErrEmailTaken
	}
	if err != nil {
		return models.User{}, "", err
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

// Login resolves the identity by normalized email and verifies the
// password. Both a missing account and a wrong password come back as
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}
