package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/repository"
	"github.com/lt1hs/d-bms/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService
type userService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newUserService(repos *repository.Repositories, log zerolog.Logger) UserService {
	return &userService{
		repos: repos,
		log:   log.With().Str("service", "user").Logger(),
	}
}

func requireSuperAdmin(actor *models.User) error {
	if actor == nil {
		return ErrUnauthorized
	}
	if actor.Role != models.RoleSuperAdmin {
		return ErrForbidden
	}
	return nil
}

// List returns all accounts; SUPER_ADMIN only.
func (s *userService) List(ctx context.Context, actor *models.User) ([]*models.User, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	return s.repos.User.List(ctx)
}

// Create adds an account; SUPER_ADMIN only. Username must be unique.
func (s *userService) Create(ctx context.Context, actor *models.User, req *CreateUserRequest) (*models.User, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	if errs := validation.ValidateNewUser(req.Username, req.Password, req.Role); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}

	exists, err := s.repos.User.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ConflictError{Field: "username"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		Permissions:  req.Permissions,
	}
	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Str("actor", actor.Username).
		Msg("User created")

	return user, nil
}

// Update modifies role, permissions and optionally the password of an
// account; SUPER_ADMIN only.
func (s *userService) Update(ctx context.Context, actor *models.User, id string, req *UpdateUserRequest) (*models.User, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}

	user, err := s.repos.User.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Username != "" && req.Username != user.Username {
		exists, err := s.repos.User.UsernameExists(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &ConflictError{Field: "username"}
		}
		user.Username = req.Username
	}
	if req.Role != "" {
		if !models.ValidRoles[req.Role] {
			return nil, &ValidationFailure{Errors: []validation.ValidationError{
				{Field: "role", Message: "invalid role, must be one of: SUPER_ADMIN, ADMIN", Value: req.Role},
			}}
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		if len(req.Password) < validation.MinPasswordLength {
			return nil, &ValidationFailure{Errors: []validation.ValidationError{
				{Field: "password", Message: "password too short"},
			}}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.Permissions = req.Permissions

	if err := s.repos.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("actor", actor.Username).
		Msg("User updated")

	return user, nil
}

// Delete removes an account; SUPER_ADMIN only. Two hard invariants beyond
// the role gate: a SUPER_ADMIN account can never be deleted, and an actor
// can never delete the account it is logged in as. Both checks run before
// any write.
func (s *userService) Delete(ctx context.Context, actor *models.User, id string) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	if actor.ID == id {
		return ErrForbidden
	}

	target, err := s.repos.User.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}
	if target.Role == models.RoleSuperAdmin {
		return ErrForbidden
	}

	// Revoke sessions first so a half-failed delete can't leave a live
	// token for a missing user.
	if err := s.repos.Token.DeleteForUser(ctx, id); err != nil {
		return err
	}
	if err := s.repos.User.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.log.Info().
		Str("user_id", id).
		Str("username", target.Username).
		Str("actor", actor.Username).
		Msg("User deleted")

	return nil
}
