package validation

import (
	"fmt"

	"github.com/lt1hs/d-bms/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// MinPasswordLength matches the backend's minimum at account creation.
const MinPasswordLength = 6

// ValidateBook validates a publication record before create/update.
func ValidateBook(book *models.Book) []ValidationError {
	var errors []ValidationError

	if book.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if book.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	}

	if book.Category != "" && !models.ValidCategories[book.Category] {
		errors = append(errors, ValidationError{Field: "category", Message: "invalid category", Value: book.Category})
	}
	if book.Type != "" && !models.ValidTypes[book.Type] {
		errors = append(errors, ValidationError{Field: "type", Message: "invalid publication type", Value: book.Type})
	}
	if book.Size != "" && !models.ValidSizes[book.Size] {
		errors = append(errors, ValidationError{Field: "size", Message: "invalid size", Value: book.Size})
	}
	if book.Size == models.SizeCustom && book.CustomSize == "" {
		errors = append(errors, ValidationError{Field: "custom_size", Message: "custom_size is required when size is custom"})
	}
	if book.Status != "" && !models.ValidStatuses[book.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "invalid status", Value: book.Status})
	}

	if book.PageCount < 0 {
		errors = append(errors, ValidationError{Field: "page_count", Message: "page_count must be non-negative", Value: book.PageCount})
	}

	return errors
}

// ValidateNewUser validates a user creation request. Username uniqueness is
// the repository's concern; only shape is checked here.
func ValidateNewUser(username, password, role string) []ValidationError {
	var errors []ValidationError

	if username == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	}
	if password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	} else if len(password) < MinPasswordLength {
		errors = append(errors, ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
		})
	}
	if role == "" {
		errors = append(errors, ValidationError{Field: "role", Message: "role is required"})
	} else if !models.ValidRoles[role] {
		errors = append(errors, ValidationError{Field: "role", Message: "invalid role, must be one of: SUPER_ADMIN, ADMIN", Value: role})
	}

	return errors
}
