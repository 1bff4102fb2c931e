package repository

import (
	"context"
	"errors"

	"github.com/lt1hs/d-bms/internal/database"
	"github.com/lt1hs/d-bms/internal/models"
)

// ErrNotFound is returned when a mutation targets a row that no longer
// exists. Callers surface it as a distinct "record vanished" condition
// rather than a silent success.
var ErrNotFound = errors.New("record not found")

// BookRepository defines the interface for publication data operations
type BookRepository interface {
	List(ctx context.Context) ([]*models.Book, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id string) error
	ISBNExists(ctx context.Context, isbn, excludeID string) (bool, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// UserRepository defines the interface for user account operations
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

// TokenRepository defines the interface for bearer token storage
type TokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	GetUserByHash(ctx context.Context, tokenHash string) (*models.User, error)
	DeleteByHash(ctx context.Context, tokenHash string) error
	DeleteForUser(ctx context.Context, userID string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Book  BookRepository
	User  UserRepository
	Token TokenRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Book:  NewBookRepo(db),
		User:  NewUserRepo(db),
		Token: NewTokenRepo(db),
	}
}
