package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lt1hs/d-bms/internal/database"
	"github.com/lt1hs/d-bms/internal/models"
)

// bookRepo is the concrete implementation of BookRepository
type bookRepo struct {
	db *database.DB
}

// NewBookRepo creates a new book repository
func NewBookRepo(db *database.DB) BookRepository {
	return &bookRepo{db: db}
}

// bookColumns is the canonical column order shared by every SELECT;
// scanBook must stay in sync with it.
const bookColumns = `
	id, COALESCE(category, ''), title, author,
	COALESCE(scientific_review, ''), COALESCE(translation, ''),
	COALESCE(linguistic_corrector, ''), COALESCE(investigation, ''),
	COALESCE(director, ''), COALESCE(cover_designer, ''),
	COALESCE(publication_year, ''), COALESCE(edition, ''),
	COALESCE(type, ''), COALESCE(size, ''), COALESCE(custom_size, ''),
	COALESCE(status, ''), COALESCE(image, ''),
	COALESCE(deposit_number, ''), COALESCE(isbn, ''), COALESCE(page_count, 0),
	COALESCE(received_from_research_date, ''), COALESCE(title_approval_date, ''),
	COALESCE(deposit_request_date, ''), COALESCE(deposit_receive_date, ''),
	COALESCE(org_word_receive_date, ''), COALESCE(abstract_receive_date, ''),
	COALESCE(disbursement_form_date, ''), COALESCE(sent_to_director_date, ''),
	COALESCE(received_from_director_date, ''), COALESCE(sent_to_designer_date, ''),
	COALESCE(received_from_designer_date, ''), COALESCE(digital_print_date, ''),
	COALESCE(offset_print_date, ''), COALESCE(cover_endorsement_date, ''),
	COALESCE(receive_from_print_date, ''),
	COALESCE(printing_house, ''), COALESCE(print_quantity, ''), COALESCE(executor, ''),
	COALESCE(cover_editable_url, ''), COALESCE(cover_viewable_url, ''),
	COALESCE(cover_printable_url, ''), COALESCE(cover_signature_url, ''),
	COALESCE(body_editable_url, ''), COALESCE(body_pdf_url, ''),
	COALESCE(body_watermark_url, ''), COALESCE(body_signatures_url, ''),
	COALESCE(admin_notes, ''), public_visible, created_at, updated_at`

func scanBook(row interface{ Scan(...interface{}) error }) (*models.Book, error) {
	var b models.Book
	var publicVisible sql.NullBool
	err := row.Scan(
		&b.ID, &b.Category, &b.Title, &b.Author,
		&b.ScientificReview, &b.Translation,
		&b.LinguisticCorrector, &b.Investigation,
		&b.Director, &b.CoverDesigner,
		&b.PublicationYear, &b.Edition,
		&b.Type, &b.Size, &b.CustomSize,
		&b.Status, &b.Image,
		&b.DepositNumber, &b.ISBN, &b.PageCount,
		&b.ReceivedFromResearchDate, &b.TitleApprovalDate,
		&b.DepositRequestDate, &b.DepositReceiveDate,
		&b.OrgWordReceiveDate, &b.AbstractReceiveDate,
		&b.DisbursementFormDate, &b.SentToDirectorDate,
		&b.ReceivedFromDirectorDate, &b.SentToDesignerDate,
		&b.ReceivedFromDesignerDate, &b.DigitalPrintDate,
		&b.OffsetPrintDate, &b.CoverEndorsementDate,
		&b.ReceiveFromPrintDate,
		&b.PrintingHouse, &b.PrintQuantity, &b.Executor,
		&b.CoverEditableURL, &b.CoverViewableURL,
		&b.CoverPrintableURL, &b.CoverSignatureURL,
		&b.BodyEditableURL, &b.BodyPdfURL,
		&b.BodyWatermarkURL, &b.BodySignaturesURL,
		&b.AdminNotes, &publicVisible, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if publicVisible.Valid {
		b.PublicVisible = &publicVisible.Bool
	}
	return &b, nil
}

// List returns all publications in insertion order. Downstream filtering
// relies on this order being stable.
func (r *bookRepo) List(ctx context.Context) ([]*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// GetByID retrieves a publication by ID
func (r *bookRepo) GetByID(ctx context.Context, id string) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a new publication
func (r *bookRepo) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (
			id, category, title, author, scientific_review, translation,
			linguistic_corrector, investigation, director, cover_designer,
			publication_year, edition, type, size, custom_size, status, image,
			deposit_number, isbn, page_count,
			received_from_research_date, title_approval_date,
			deposit_request_date, deposit_receive_date,
			org_word_receive_date, abstract_receive_date,
			disbursement_form_date, sent_to_director_date,
			received_from_director_date, sent_to_designer_date,
			received_from_designer_date, digital_print_date,
			offset_print_date, cover_endorsement_date, receive_from_print_date,
			printing_house, print_quantity, executor,
			cover_editable_url, cover_viewable_url, cover_printable_url,
			cover_signature_url, body_editable_url, body_pdf_url,
			body_watermark_url, body_signatures_url,
			admin_notes, public_visible, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45, $46, $47, $48, $49, $50
		)
	`
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		book.ID, nullString(book.Category), book.Title, book.Author,
		nullString(book.ScientificReview), nullString(book.Translation),
		nullString(book.LinguisticCorrector), nullString(book.Investigation),
		nullString(book.Director), nullString(book.CoverDesigner),
		nullString(book.PublicationYear), nullString(book.Edition),
		nullString(book.Type), nullString(book.Size), nullString(book.CustomSize),
		nullString(book.Status), nullString(book.Image),
		nullString(book.DepositNumber), nullString(book.ISBN), book.PageCount,
		nullString(book.ReceivedFromResearchDate), nullString(book.TitleApprovalDate),
		nullString(book.DepositRequestDate), nullString(book.DepositReceiveDate),
		nullString(book.OrgWordReceiveDate), nullString(book.AbstractReceiveDate),
		nullString(book.DisbursementFormDate), nullString(book.SentToDirectorDate),
		nullString(book.ReceivedFromDirectorDate), nullString(book.SentToDesignerDate),
		nullString(book.ReceivedFromDesignerDate), nullString(book.DigitalPrintDate),
		nullString(book.OffsetPrintDate), nullString(book.CoverEndorsementDate),
		nullString(book.ReceiveFromPrintDate),
		nullString(book.PrintingHouse), nullString(book.PrintQuantity), nullString(book.Executor),
		nullString(book.CoverEditableURL), nullString(book.CoverViewableURL),
		nullString(book.CoverPrintableURL), nullString(book.CoverSignatureURL),
		nullString(book.BodyEditableURL), nullString(book.BodyPdfURL),
		nullString(book.BodyWatermarkURL), nullString(book.BodySignaturesURL),
		nullString(book.AdminNotes), book.IsPublic(), book.CreatedAt, book.UpdatedAt,
	)
	return err
}

// Update rewrites every mutable column of an existing publication.
// Returns ErrNotFound if the row vanished.
func (r *bookRepo) Update(ctx context.Context, book *models.Book) error {
	query := `
		UPDATE books SET
			category = $1, title = $2, author = $3, scientific_review = $4,
			translation = $5, linguistic_corrector = $6, investigation = $7,
			director = $8, cover_designer = $9, publication_year = $10,
			edition = $11, type = $12, size = $13, custom_size = $14,
			status = $15, image = $16, deposit_number = $17, isbn = $18,
			page_count = $19,
			received_from_research_date = $20, title_approval_date = $21,
			deposit_request_date = $22, deposit_receive_date = $23,
			org_word_receive_date = $24, abstract_receive_date = $25,
			disbursement_form_date = $26, sent_to_director_date = $27,
			received_from_director_date = $28, sent_to_designer_date = $29,
			received_from_designer_date = $30, digital_print_date = $31,
			offset_print_date = $32, cover_endorsement_date = $33,
			receive_from_print_date = $34,
			printing_house = $35, print_quantity = $36, executor = $37,
			cover_editable_url = $38, cover_viewable_url = $39,
			cover_printable_url = $40, cover_signature_url = $41,
			body_editable_url = $42, body_pdf_url = $43,
			body_watermark_url = $44, body_signatures_url = $45,
			admin_notes = $46, public_visible = $47, updated_at = $48
		WHERE id = $49
	`
	book.UpdatedAt = time.Now()
	result, err := r.db.ExecContext(ctx, query,
		nullString(book.Category), book.Title, book.Author, nullString(book.ScientificReview),
		nullString(book.Translation), nullString(book.LinguisticCorrector), nullString(book.Investigation),
		nullString(book.Director), nullString(book.CoverDesigner), nullString(book.PublicationYear),
		nullString(book.Edition), nullString(book.Type), nullString(book.Size), nullString(book.CustomSize),
		nullString(book.Status), nullString(book.Image), nullString(book.DepositNumber), nullString(book.ISBN),
		book.PageCount,
		nullString(book.ReceivedFromResearchDate), nullString(book.TitleApprovalDate),
		nullString(book.DepositRequestDate), nullString(book.DepositReceiveDate),
		nullString(book.OrgWordReceiveDate), nullString(book.AbstractReceiveDate),
		nullString(book.DisbursementFormDate), nullString(book.SentToDirectorDate),
		nullString(book.ReceivedFromDirectorDate), nullString(book.SentToDesignerDate),
		nullString(book.ReceivedFromDesignerDate), nullString(book.DigitalPrintDate),
		nullString(book.OffsetPrintDate), nullString(book.CoverEndorsementDate),
		nullString(book.ReceiveFromPrintDate),
		nullString(book.PrintingHouse), nullString(book.PrintQuantity), nullString(book.Executor),
		nullString(book.CoverEditableURL), nullString(book.CoverViewableURL),
		nullString(book.CoverPrintableURL), nullString(book.CoverSignatureURL),
		nullString(book.BodyEditableURL), nullString(book.BodyPdfURL),
		nullString(book.BodyWatermarkURL), nullString(book.BodySignaturesURL),
		nullString(book.AdminNotes), book.IsPublic(), book.UpdatedAt,
		book.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete permanently removes a publication. Deleting an absent id is
// reported as ErrNotFound, never as success.
func (r *bookRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ISBNExists checks ISBN uniqueness, optionally excluding one record
// (the record being updated).
func (r *bookRepo) ISBNExists(ctx context.Context, isbn, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1 AND id <> $2)",
		isbn, excludeID,
	).Scan(&exists)
	return exists, err
}

// Count returns the total number of publications
func (r *bookRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

// CountByStatus returns the number of publications in a lifecycle state
func (r *bookRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books WHERE status = $1", status).Scan(&count)
	return count, err
}

// nullString converts empty strings to NULL for nullable columns
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// requireRow maps a zero-row mutation to ErrNotFound
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
