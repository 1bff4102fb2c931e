package mocks

import (
	"context"

	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/repository"
)

// MockBookRepository is a mock implementation of BookRepository.
// Insertion order is preserved because the query engine depends on it.
type MockBookRepository struct {
	Books       []*models.Book
	ListError   error
	CreateError error
	UpdateError error
	DeleteCalls int
}

func NewMockBookRepository() *MockBookRepository {
	return &MockBookRepository{}
}

func (m *MockBookRepository) List(ctx context.Context) ([]*models.Book, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Books, nil
}

func (m *MockBookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	for _, b := range m.Books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *MockBookRepository) Create(ctx context.Context, book *models.Book) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Books = append(m.Books, book)
	return nil
}

func (m *MockBookRepository) Update(ctx context.Context, book *models.Book) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	for i, b := range m.Books {
		if b.ID == book.ID {
			m.Books[i] = book
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockBookRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCalls++
	for i, b := range m.Books {
		if b.ID == id {
			m.Books = append(m.Books[:i], m.Books[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockBookRepository) ISBNExists(ctx context.Context, isbn, excludeID string) (bool, error) {
	for _, b := range m.Books {
		if b.ISBN == isbn && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockBookRepository) Count(ctx context.Context) (int, error) {
	return len(m.Books), nil
}

func (m *MockBookRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	count := 0
	for _, b := range m.Books {
		if b.Status == status {
			count++
		}
	}
	return count, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       []*models.User
	CreateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	return m.Users, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Users = append(m.Users, user)
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	for i, u := range m.Users {
		if u.ID == user.ID {
			m.Users[i] = user
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	for i, u := range m.Users {
		if u.ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	count := 0
	for _, u := range m.Users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	Tokens map[string]*models.AuthToken // keyed by token hash
	users  *MockUserRepository
}

func NewMockTokenRepository(users *MockUserRepository) *MockTokenRepository {
	return &MockTokenRepository{
		Tokens: make(map[string]*models.AuthToken),
		users:  users,
	}
}

func (m *MockTokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	m.Tokens[token.TokenHash] = token
	return nil
}

func (m *MockTokenRepository) GetUserByHash(ctx context.Context, tokenHash string) (*models.User, error) {
	token, ok := m.Tokens[tokenHash]
	if !ok {
		return nil, nil
	}
	return m.users.GetByID(ctx, token.UserID)
}

func (m *MockTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	delete(m.Tokens, tokenHash)
	return nil
}

func (m *MockTokenRepository) DeleteForUser(ctx context.Context, userID string) error {
	for hash, token := range m.Tokens {
		if token.UserID == userID {
			delete(m.Tokens, hash)
		}
	}
	return nil
}

// NewMockRepositories bundles all mocks into a repository set
func NewMockRepositories() (*repository.Repositories, *MockBookRepository, *MockUserRepository, *MockTokenRepository) {
	books := NewMockBookRepository()
	users := NewMockUserRepository()
	tokens := NewMockTokenRepository(users)
	repos := &repository.Repositories{
		Book:  books,
		User:  users,
		Token: tokens,
	}
	return repos, books, users, tokens
}
