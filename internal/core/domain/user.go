package domain

import "time"

// User is an account record. PasswordHash is a bcrypt digest and never
// leaves the domain/service layers.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}
