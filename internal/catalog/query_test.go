package catalog

import (
	"testing"

	"github.com/lt1hs/d-bms/internal/models"
	"github.com/stretchr/testify/assert"
)

func testBooks() []*models.Book {
	return []*models.Book{
		{
			ID:              "1",
			Category:        models.CategoryBooks,
			Title:           "مبادئ البرمجة للمبتدئين",
			Author:          "أحمد العلي",
			Director:        "م. يوسف",
			PublicationYear: "2023",
			Status:          models.StatusPrinted,
			ISBN:            "978-3-16-148410-0",
		},
		{
			ID:              "2",
			Category:        models.CategoryGuideMagazine,
			Title:           "مجلة الدليل - العدد 45",
			Author:          "هيئة التحرير",
			Director:        "سعيد الجود",
			PublicationYear: "2024",
			Status:          models.StatusInPrinting,
			ISBN:            "ISSN-1234-5678",
		},
		{
			ID:       "3",
			Category: models.CategoryBooks,
			Title:    "The Guide",
			Author:   "Jane Doe",
			Status:   models.StatusInProgress,
		},
	}
}

func ids(books []*models.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestQuery_CategoryStage(t *testing.T) {
	got := Query{View: models.CategoryBooks}.Apply(testBooks())
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = Query{View: models.CategoryGuideMagazine}.Apply(testBooks())
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestQuery_PseudoViewsBypassCategory(t *testing.T) {
	for _, view := range []string{ViewDashboard, ViewSearch, ViewUsers, ViewSettings, ""} {
		got := Query{View: view}.Apply(testBooks())
		assert.Len(t, got, 3, "view %q must not restrict by category", view)
	}
}

func TestQuery_StatusStage(t *testing.T) {
	got := Query{View: ViewDashboard, Status: models.StatusPrinted}.Apply(testBooks())
	assert.Equal(t, []string{"1"}, ids(got))

	got = Query{View: ViewDashboard, Status: StatusAll}.Apply(testBooks())
	assert.Len(t, got, 3, "sentinel %q disables the status stage", StatusAll)
}

func TestQuery_SearchCaseInsensitiveSubstring(t *testing.T) {
	// Arabic has no case but substring matching still applies: "دليل"
	// matches a title containing "الدليل".
	got := Query{View: ViewSearch, Search: "دليل", Field: FieldTitle}.Apply(testBooks())
	assert.Equal(t, []string{"2"}, ids(got))

	got = Query{View: ViewSearch, Search: "GUIDE", Field: FieldTitle}.Apply(testBooks())
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestQuery_SearchISBN(t *testing.T) {
	got := Query{View: ViewSearch, Search: "978", Field: FieldISBN}.Apply(testBooks())
	assert.Equal(t, []string{"1"}, ids(got), "ISSN record must not match a 978 ISBN search")
}

func TestQuery_SearchAllFields(t *testing.T) {
	got := Query{View: ViewDashboard, Search: "2024", Field: FieldAll}.Apply(testBooks())
	assert.Equal(t, []string{"2"}, ids(got))

	// Missing fields compare as empty strings, never as a match.
	got = Query{View: ViewDashboard, Search: "2024", Field: FieldYear}.Apply(testBooks())
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestQuery_EmptySearchIsNoOp(t *testing.T) {
	got := Query{View: models.CategoryBooks, Search: "   "}.Apply(testBooks())
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestQuery_NoMatchesYieldsEmptySet(t *testing.T) {
	got := Query{View: ViewSearch, Search: "zzzz-not-there"}.Apply(testBooks())
	assert.Empty(t, got)
}

func TestQuery_PreservesOrder(t *testing.T) {
	books := testBooks()
	got := Query{View: ViewDashboard, Status: StatusAll}.Apply(books)
	assert.Equal(t, ids(books), ids(got))
}

func TestQuery_StagesCompose(t *testing.T) {
	got := Query{
		View:   models.CategoryBooks,
		Status: models.StatusPrinted,
		Search: "أحمد",
		Field:  FieldAuthor,
	}.Apply(testBooks())
	assert.Equal(t, []string{"1"}, ids(got))
}
