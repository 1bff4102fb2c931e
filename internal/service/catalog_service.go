package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lt1hs/d-bms/internal/catalog"
	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/repository"
	"github.com/lt1hs/d-bms/internal/validation"
	"github.com/rs/zerolog"
)

// catalogService is the concrete implementation of CatalogService
type catalogService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCatalogService(repos *repository.Repositories, log zerolog.Logger) CatalogService {
	return &catalogService{
		repos: repos,
		log:   log.With().Str("service", "catalog").Logger(),
	}
}

// ListBooks loads the record set, drops what the viewer may not see, then
// runs the query pipeline. Order is repository insertion order throughout.
func (s *catalogService) ListBooks(ctx context.Context, viewer *models.User, query catalog.Query) ([]*models.Book, error) {
	books, err := s.repos.Book.List(ctx)
	if err != nil {
		return nil, err
	}
	books = catalog.FilterVisible(books, viewer)
	return query.Apply(books), nil
}

// GetBook returns a single record. A hidden record looks like a missing one
// to anonymous viewers; existence must not leak through the detail route.
func (s *catalogService) GetBook(ctx context.Context, viewer *models.User, id string) (*models.Book, error) {
	book, err := s.repos.Book.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil || !catalog.VisibleTo(book, viewer) {
		return nil, ErrNotFound
	}
	return book, nil
}

// CreateBook inserts a new publication for an actor holding canAdd.
func (s *catalogService) CreateBook(ctx context.Context, actor *models.User, book *models.Book) (*models.Book, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if !catalog.HasPermission(actor, catalog.PermAdd) {
		return nil, ErrForbidden
	}
	if errs := validation.ValidateBook(book); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}
	if book.ISBN != "" {
		exists, err := s.repos.Book.ISBNExists(ctx, book.ISBN, "")
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &ConflictError{Field: "isbn"}
		}
	}

	book.ID = uuid.New().String()
	if err := s.repos.Book.Create(ctx, book); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("book_id", book.ID).
		Str("title", book.Title).
		Str("actor", actor.Username).
		Msg("Publication created")

	return book, nil
}

// UpdateBook rewrites a publication. canEdit covers any change; canHide
// alone is enough when the update touches nothing but public_visible.
func (s *catalogService) UpdateBook(ctx context.Context, actor *models.User, id string, book *models.Book) (*models.Book, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	existing, err := s.repos.Book.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if !catalog.HasPermission(actor, catalog.PermEdit) {
		if !catalog.HasPermission(actor, catalog.PermHide) || !onlyTogglesVisibility(existing, book) {
			return nil, ErrForbidden
		}
	}

	if errs := validation.ValidateBook(book); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}
	if book.ISBN != "" && book.ISBN != existing.ISBN {
		exists, err := s.repos.Book.ISBNExists(ctx, book.ISBN, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &ConflictError{Field: "isbn"}
		}
	}

	book.ID = id
	book.CreatedAt = existing.CreatedAt
	if err := s.repos.Book.Update(ctx, book); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.log.Info().
		Str("book_id", id).
		Str("actor", actor.Username).
		Msg("Publication updated")

	return book, nil
}

// DeleteBook permanently removes a publication for an actor holding
// canDelete. A second delete of the same id reports not-found.
func (s *catalogService) DeleteBook(ctx context.Context, actor *models.User, id string) error {
	if actor == nil {
		return ErrUnauthorized
	}
	if !catalog.HasPermission(actor, catalog.PermDelete) {
		return ErrForbidden
	}

	if err := s.repos.Book.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.log.Info().
		Str("book_id", id).
		Str("actor", actor.Username).
		Msg("Publication deleted")

	return nil
}

// Stats returns record counts by lifecycle state for the metrics endpoint.
func (s *catalogService) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int)

	total, err := s.repos.Book.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats["total"] = total

	for _, status := range []string{
		models.StatusStopped, models.StatusInProgress,
		models.StatusPrinted, models.StatusInPrinting,
	} {
		count, err := s.repos.Book.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		stats[status] = count
	}

	return stats, nil
}

// onlyTogglesVisibility reports whether incoming differs from existing in
// nothing but the public_visible flag. Identity and timestamps are owned by
// the server and ignored in the comparison.
func onlyTogglesVisibility(existing, incoming *models.Book) bool {
	a, b := *existing, *incoming
	a.PublicVisible, b.PublicVisible = nil, nil
	a.ID, b.ID = "", ""
	a.CreatedAt, b.CreatedAt = time.Time{}, time.Time{}
	a.UpdatedAt, b.UpdatedAt = time.Time{}, time.Time{}
	return a == b
}
