package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"taskhive/internal/core/domain"
	"taskhive/internal/core/ports"
)

const (
	insertUserQuery = `
INSERT INTO users (id, username, password_hash)
VALUES (:id, :username, :password_hash);
`
	findUserByUsernameQuery = `
SELECT id, username, password_hash, created_at, updated_at
FROM users
WHERE username = ?;
`
	findUserByIDQuery = `
SELECT id, username, password_hash, created_at, updated_at
FROM users
WHERE id = ?;
`
)

const mysqlDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return domain.User{}, err
	}

	row := userRow{
		ID:           id.String(),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}

	if _, err := r.db.NamedExecContext(ctx, insertUserQuery, row); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.User{}, domain.ErrUsernameTaken
		}
		return domain.User{}, err
	}

	return r.findByID(ctx, id.String())
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByUsernameQuery, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) findByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
