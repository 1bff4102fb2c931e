package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lt1hs/d-bms/internal/catalog"
	"github.com/lt1hs/d-bms/internal/config"
	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/repository"
	"github.com/lt1hs/d-bms/internal/validation"
	"github.com/rs/zerolog"
)

// Sentinel errors shared by all services. Handlers translate them to HTTP
// statuses; services never touch status codes themselves.
var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("permission denied")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ConflictError reports a uniqueness violation (ISBN, username).
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// ValidationFailure wraps field-level validation errors.
type ValidationFailure struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Errors))
}

// CatalogService defines the publication catalog operations
type CatalogService interface {
	ListBooks(ctx context.Context, viewer *models.User, query catalog.Query) ([]*models.Book, error)
	GetBook(ctx context.Context, viewer *models.User, id string) (*models.Book, error)
	CreateBook(ctx context.Context, actor *models.User, book *models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, actor *models.User, id string, book *models.Book) (*models.Book, error)
	DeleteBook(ctx context.Context, actor *models.User, id string) error
	Stats(ctx context.Context) (map[string]int, error)
}

// AuthService defines login/logout/token resolution
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	UserFromToken(ctx context.Context, token string) (*models.User, error)
	EnsureSuperAdmin(ctx context.Context, username, password string) error
}

// UserService defines SUPER_ADMIN-only account management
type UserService interface {
	List(ctx context.Context, actor *models.User) ([]*models.User, error)
	Create(ctx context.Context, actor *models.User, req *CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, actor *models.User, id string, req *UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, id string) error
}

// CreateUserRequest is the payload for account creation.
type CreateUserRequest struct {
	Username    string             `json:"username"`
	Password    string             `json:"password"`
	Role        string             `json:"role"`
	Permissions models.Permissions `json:"permissions"`
}

// UpdateUserRequest is the payload for account updates. Password is
// optional; empty means unchanged.
type UpdateUserRequest struct {
	Username    string             `json:"username"`
	Password    string             `json:"password"`
	Role        string             `json:"role"`
	Permissions models.Permissions `json:"permissions"`
}

// Services holds all service interfaces
type Services struct {
	Catalog CatalogService
	Auth    AuthService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Catalog: newCatalogService(repos, log),
		Auth:    newAuthService(repos, log),
		User:    newUserService(repos, log),
	}
}
