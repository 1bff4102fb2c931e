package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lt1hs/d-bms/internal/database"
	"github.com/lt1hs/d-bms/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, username, password_hash, role, COALESCE(permissions, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	var rawPerms string
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &rawPerms, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// Permissions live in a text column; tolerate empty and garbage values.
	u.Permissions = models.ParsePermissions([]byte(rawPerms))
	return &u, nil
}

// List returns all user accounts
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByUsername retrieves a user by username
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user account
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, role, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	perms, err := encodePermissions(user.Permissions)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Role, perms,
		user.CreatedAt, user.UpdatedAt,
	)
	return err
}

// Update rewrites role and permissions of an existing user
func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET username = $1, password_hash = $2, role = $3, permissions = $4, updated_at = $5
		WHERE id = $6
	`
	user.UpdatedAt = time.Now()
	perms, err := encodePermissions(user.Permissions)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.Role, perms, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete permanently removes a user account
func (r *userRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// UsernameExists checks if a user with the given username exists
func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	return exists, err
}

// CountByRole returns the number of users holding a role
func (r *userRepo) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE role = $1", role).Scan(&count)
	return count, err
}

// encodePermissions serializes the capability set for the text column.
func encodePermissions(p models.Permissions) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
