package catalog

import (
	"strings"

	"github.com/lt1hs/d-bms/internal/models"
)

// Pseudo-views that place no category restriction on the record set.
const (
	ViewDashboard = "dashboard"
	ViewSearch    = "search"
	ViewUsers     = "users"
	ViewSettings  = "settings"
)

// StatusAll is the sentinel that disables the status stage.
const StatusAll = "all"

// SearchField selects which attribute the search stage inspects.
type SearchField string

const (
	FieldTitle    SearchField = "title"
	FieldAuthor   SearchField = "author"
	FieldDirector SearchField = "director"
	FieldISBN     SearchField = "isbn"
	FieldYear     SearchField = "year"
	FieldAll      SearchField = "all"
)

// Query narrows a record set. Stages run in fixed order — category, status,
// search — each on the output of the previous. All three are pure narrowing
// filters: the incoming order is preserved and nothing is re-sorted.
type Query struct {
	View   string      // category value, pseudo-view, or empty
	Status string      // status value, StatusAll, or empty
	Search string      // free text; empty skips the search stage
	Field  SearchField // defaults to FieldAll when empty
}

// Apply runs the query pipeline over the record set.
func (q Query) Apply(books []*models.Book) []*models.Book {
	result := books

	if !bypassesCategory(q.View) {
		result = filter(result, func(b *models.Book) bool {
			return b.Category == q.View
		})
	}

	if q.Status != "" && q.Status != StatusAll {
		result = filter(result, func(b *models.Book) bool {
			return b.Status == q.Status
		})
	}

	if needle := strings.ToLower(strings.TrimSpace(q.Search)); needle != "" {
		field := q.Field
		if field == "" {
			field = FieldAll
		}
		result = filter(result, func(b *models.Book) bool {
			return matches(b, field, needle)
		})
	}

	return result
}

func bypassesCategory(view string) bool {
	switch view {
	case "", ViewDashboard, ViewSearch, ViewUsers, ViewSettings:
		return true
	}
	return false
}

// matches reports whether the selected field contains the case-folded needle.
// Missing fields compare as empty strings, never as a match.
func matches(b *models.Book, field SearchField, needle string) bool {
	contains := func(haystack string) bool {
		return strings.Contains(strings.ToLower(haystack), needle)
	}
	switch field {
	case FieldTitle:
		return contains(b.Title)
	case FieldAuthor:
		return contains(b.Author)
	case FieldDirector:
		return contains(b.Director)
	case FieldISBN:
		return contains(b.ISBN)
	case FieldYear:
		return contains(b.PublicationYear)
	case FieldAll:
		return contains(b.Title) || contains(b.Author) || contains(b.Director) ||
			contains(b.ISBN) || contains(b.PublicationYear)
	}
	return false
}

func filter(books []*models.Book, keep func(*models.Book) bool) []*models.Book {
	result := make([]*models.Book, 0, len(books))
	for _, b := range books {
		if keep(b) {
			result = append(result, b)
		}
	}
	return result
}
