package repository

import (
	"context"
	"database/sql"

	"github.com/lt1hs/d-bms/internal/database"
	"github.com/lt1hs/d-bms/internal/models"
)

// tokenRepo is the concrete implementation of TokenRepository
type tokenRepo struct {
	db *database.DB
}

// NewTokenRepo creates a new token repository
func NewTokenRepo(db *database.DB) TokenRepository {
	return &tokenRepo{db: db}
}

// Create stores a token hash for a user
func (r *tokenRepo) Create(ctx context.Context, token *models.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (id, user_id, token_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		token.ID, token.UserID, token.TokenHash, token.CreatedAt,
	)
	return err
}

// GetUserByHash resolves a presented token hash to its owning user.
// An unknown hash yields (nil, nil).
func (r *tokenRepo) GetUserByHash(ctx context.Context, tokenHash string) (*models.User, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.role, COALESCE(u.permissions, ''), u.created_at, u.updated_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token_hash = $1
	`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, tokenHash))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteByHash revokes a single token (logout)
func (r *tokenRepo) DeleteByHash(ctx context.Context, tokenHash string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM auth_tokens WHERE token_hash = $1", tokenHash)
	return err
}

// DeleteForUser revokes every token of a user (account deletion)
func (r *tokenRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM auth_tokens WHERE user_id = $1", userID)
	return err
}
