package catalog

import (
	"encoding/json"
	"testing"

	"github.com/lt1hs/d-bms/internal/models"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestFilterVisible_Anonymous(t *testing.T) {
	books := []*models.Book{
		{ID: "1", Title: "visible by default"},
		{ID: "2", Title: "explicitly visible", PublicVisible: boolPtr(true)},
		{ID: "3", Title: "hidden", PublicVisible: boolPtr(false)},
	}

	got := FilterVisible(books, nil)
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFilterVisible_Authenticated(t *testing.T) {
	books := []*models.Book{
		{ID: "1", PublicVisible: boolPtr(false)},
		{ID: "2"},
	}

	// Both admin roles see hidden records; only mutation of the flag differs.
	for _, role := range []string{models.RoleAdmin, models.RoleSuperAdmin} {
		viewer := &models.User{ID: "u1", Role: role}
		got := FilterVisible(books, viewer)
		assert.Len(t, got, 2, "role %s must see all records", role)
	}
}

func TestRedact_HidesSensitiveFields(t *testing.T) {
	book := &models.Book{
		ID:                   "b1",
		Category:             models.CategoryBooks,
		Title:                "دليل العقل",
		Author:               "أحمد العلي",
		ScientificReview:     "د. خالد",
		Translation:          "سارة",
		PublicationYear:      "2023",
		Type:                 models.TypeBook,
		Size:                 models.SizeWaziri,
		Status:               models.StatusPrinted,
		ISBN:                 "978-3-16-148410-0",
		DepositNumber:        "DEP-1234",
		PageCount:            350,
		AdminNotes:           "internal only",
		DigitalPrintDate:     "2023-05-01",
		CoverEditableURL:     "https://files/cover.psd",
		BodyPdfURL:           "https://files/body.pdf",
		ReceiveFromPrintDate: "2023-06-01",
	}

	pub := Redact(book)
	raw, err := json.Marshal(pub)
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &fields))

	for _, forbidden := range []string{
		"isbn", "deposit_number", "status", "page_count", "admin_notes",
		"digital_print_date", "cover_editable_url", "body_pdf_url",
		"receive_from_print_date", "public_visible",
	} {
		_, present := fields[forbidden]
		assert.False(t, present, "field %q must not be serialized for anonymous viewers", forbidden)
	}

	assert.Equal(t, "دليل العقل", fields["title"])
	assert.Equal(t, "أحمد العلي", fields["author"])
	assert.Equal(t, "2023", fields["publication_year"])
}
