package catalog

import (
	"github.com/lt1hs/d-bms/internal/models"
)

// VisibleTo reports whether the viewer may see the record at all.
// Anonymous viewers are excluded from hidden records entirely; any
// authenticated viewer sees every record regardless of public_visible
// (changing the flag is gated separately by canHide).
func VisibleTo(book *models.Book, viewer *models.User) bool {
	if viewer != nil {
		return true
	}
	return book.IsPublic()
}

// FilterVisible returns the records the viewer may see, preserving order.
func FilterVisible(books []*models.Book, viewer *models.User) []*models.Book {
	if viewer != nil {
		return books
	}
	result := make([]*models.Book, 0, len(books))
	for _, b := range books {
		if b.IsPublic() {
			result = append(result, b)
		}
	}
	return result
}

// Redact builds the public view of a record. Everything not listed here
// stays on the server for anonymous requests: lifecycle dates, artifact
// URLs, admin notes, deposit number, ISBN, status, page count.
func Redact(book *models.Book) *models.PublicBook {
	return &models.PublicBook{
		ID:               book.ID,
		Category:         book.Category,
		Title:            book.Title,
		Author:           book.Author,
		ScientificReview: book.ScientificReview,
		Translation:      book.Translation,
		PublicationYear:  book.PublicationYear,
		Type:             book.Type,
		Size:             book.Size,
		CustomSize:       book.CustomSize,
		Image:            book.Image,
	}
}

// RedactAll maps Redact over a record set.
func RedactAll(books []*models.Book) []*models.PublicBook {
	result := make([]*models.PublicBook, len(books))
	for i, b := range books {
		result[i] = Redact(b)
	}
	return result
}
