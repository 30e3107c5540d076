package ports

import (
	"context"

	"taskhive/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, input domain.LoginInput) (domain.User, string, error)
}

// TokenIssuer mints and verifies the bearer tokens handed out at login.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
