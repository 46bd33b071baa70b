package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dwikikusuma/storefront/internal/user/app"
	"github.com/dwikikusuma/storefront/internal/user/domain"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, password_hash, cart_id, created_at`

const (
	insertUser = `
		INSERT INTO users (id, username, password_hash, cart_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	selectUserByID       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	selectUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
)

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CartID       string    `db:"cart_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type UserRepo struct {
	db *sqlx.DB
}

var _ app.UserRepo = (*UserRepo)(nil)

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	_, err := r.db.ExecContext(ctx, insertUser, u.ID, u.Username, u.PasswordHash, u.CartID, u.CreatedAt)
	if postgres.IsUniqueViolation(err) {
		return domain.User{}, app.ErrUsernameTaken
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.User{}, app.ErrUserNotFound
	}
	return r.get(ctx, selectUserByID, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.get(ctx, selectUserByUsername, username)
}

func (r *UserRepo) get(ctx context.Context, query, arg string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, app.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CartID:       row.CartID,
		CreatedAt:    row.CreatedAt,
	}, nil
}
