package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
)

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminExists   = errors.New("admin already exists")
)

type AdminRepository struct {
	db *pgxpool.Pool
}

// Create inserts a new admin account. The username is unique; a duplicate
// reports ErrAdminExists.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	a.ID = uuid.New().String()
	const q = `
INSERT INTO admins (id, username, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at
`
	row := r.db.QueryRow(ctx, q, a.ID, a.Username, a.PasswordHash, a.Role)
	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAdminExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByUsername returns an admin by username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const q = `
SELECT id, username, password_hash, role, created_at, updated_at
FROM admins
WHERE username = $1
`
	var a model.Admin
	row := r.db.QueryRow(ctx, q, username)
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin by username: %w", err)
	}
	return &a, nil
}
