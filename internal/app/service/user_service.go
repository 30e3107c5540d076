package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"taskhive/internal/core/domain"
	"taskhive/internal/core/ports"
)

// Minimum lengths the account schema has always required.
const (
	minUsernameLength = 3
	minPasswordLength = 6
)

type UserService struct {
	userRepository ports.UserRepository
	tokens         ports.TokenIssuer
}

func NewUserService(userRepository ports.UserRepository, tokens ports.TokenIssuer) *UserService {
	return &UserService{userRepository: userRepository, tokens: tokens}
}

// Register hashes the password with bcrypt (the salt lives inside the
// hash) and persists the account. The username is trimmed before any
// check, and both fields must meet the schema minimums. The unique index
// on username is the source of truth for conflicts, so a lost race still
// fails cleanly.
func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if utf8.RuneCountInString(username) < minUsernameLength {
		return domain.User{}, domain.ErrUsernameTooShort
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return domain.User{}, domain.ErrPasswordTooShort
	}

	if _, err := s.userRepository.FindByUsername(ctx, username); err == nil {
		return domain.User{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("check existing username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepository.Create(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Login reports a missing account and a wrong password as distinct
// errors, matching the behavior the web client relies on.
func (s *UserService) Login(ctx context.Context, input domain.LoginInput) (domain.User, string, error) {
	user, err := s.userRepository.FindByUsername(ctx, input.Username)
	if err != nil {
		return domain.User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

var _ ports.UserService = (*UserService)(nil)
