package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

// Schema creates the admins table used by PostgresStore.
const Schema = `
CREATE TABLE IF NOT EXISTS admins (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	password   TEXT NOT NULL,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	last_login TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL
);`

const adminColumns = `id, username, name, password, is_active, last_login, created_at`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create admins schema: %w", err)
	}
	return nil
}

func (p *PostgresStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return p.scanOne(p.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = $1`, username))
}

func (p *PostgresStore) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	return p.scanOne(p.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

func (p *PostgresStore) scanOne(row *sql.Row) (*models.Admin, error) {
	var (
		a         models.Admin
		lastLogin sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Username, &a.Name, &a.Password, &a.IsActive, &lastLogin, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("admin: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	if lastLogin.Valid {
		a.LastLogin = &lastLogin.Time
	}
	return &a, nil
}

func (p *PostgresStore) Create(ctx context.Context, a *models.Admin) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO admins (`+adminColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Username, a.Name, a.Password, a.IsActive, a.LastLogin, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (p *PostgresStore) UpdatePassword(ctx context.Context, id, hash string) error {
	return p.exec(ctx, `UPDATE admins SET password = $2 WHERE id = $1`, id, hash)
}

func (p *PostgresStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return p.exec(ctx, `UPDATE admins SET last_login = $2 WHERE id = $1`, id, at)
}

func (p *PostgresStore) exec(ctx context.Context, query string, id string, arg interface{}) error {
	res, err := p.db.ExecContext(ctx, query, id, arg)
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("admin %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
