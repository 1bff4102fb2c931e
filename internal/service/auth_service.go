package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService
type authService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newAuthService(repos *repository.Repositories, log zerolog.Logger) AuthService {
	return &authService{
		repos: repos,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

// hashToken derives the storage key for a bearer token. Tokens are opaque
// uuids; only the SHA-256 digest is persisted.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login verifies credentials and issues a fresh bearer token.
func (s *authService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	user, err := s.repos.User.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a comparison anyway so unknown usernames cost the same.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000"), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	record := &models.AuthToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: hashToken(token),
		CreatedAt: time.Now(),
	}
	if err := s.repos.Token.Create(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("User logged in")
	return &models.LoginResponse{User: user, Token: token}, nil
}

// Logout revokes the presented token. Revoking an already-revoked token is
// a no-op, not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.repos.Token.DeleteByHash(ctx, hashToken(token))
}

// UserFromToken resolves a bearer token to its user; (nil, nil) for an
// unknown or revoked token.
func (s *authService) UserFromToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	return s.repos.Token.GetUserByHash(ctx, hashToken(token))
}

// EnsureSuperAdmin seeds the initial SUPER_ADMIN account when none exists.
// Runs at startup; a present super admin makes this a no-op.
func (s *authService) EnsureSuperAdmin(ctx context.Context, username, password string) error {
	count, err := s.repos.User.CountByRole(ctx, models.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		Permissions: models.Permissions{
			CanAdd:    true,
			CanEdit:   true,
			CanDelete: true,
			CanHide:   true,
		},
	}
	if err := s.repos.User.Create(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Msg("Seeded initial SUPER_ADMIN account")
	return nil
}
