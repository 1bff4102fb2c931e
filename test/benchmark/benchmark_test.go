package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/lt1hs/d-bms/internal/catalog"
	"github.com/lt1hs/d-bms/internal/mocks"
	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/validation"
)

func seedCatalog(n int) []*models.Book {
	categories := []string{
		models.CategoryBooks,
		models.CategoryBooklets,
		models.CategoryGuideMagazine,
	}
	statuses := []string{
		models.StatusPrinted,
		models.StatusInProgress,
		models.StatusInPrinting,
		models.StatusStopped,
	}
	hidden := false

	books := make([]*models.Book, n)
	for i := 0; i < n; i++ {
		b := &models.Book{
			ID:       fmt.Sprintf("bench-%06d", i),
			Category: categories[i%len(categories)],
			Title:    fmt.Sprintf("إصدار رقم %d", i),
			Author:   fmt.Sprintf("مؤلف %d", i%50),
			ISBN:     fmt.Sprintf("978-0-00-%06d-0", i),
			Status:   statuses[i%len(statuses)],
		}
		if i%7 == 0 {
			b.PublicVisible = &hidden
		}
		books[i] = b
	}
	return books
}

// BenchmarkQueryApply benchmarks the full category/status/search pipeline.
func BenchmarkQueryApply(b *testing.B) {
	books := seedCatalog(1000)
	q := catalog.Query{
		View:   models.CategoryBooks,
		Status: models.StatusPrinted,
		Search: "إصدار",
		Field:  catalog.FieldTitle,
	}

	b.ResetTimer()
	b.ReportAllocs()

	var matched int
	for i := 0; i < b.N; i++ {
		matched = len(q.Apply(books))
	}

	b.ReportMetric(float64(len(books)*b.N)/b.Elapsed().Seconds(), "rows/sec")
	_ = matched
}

// BenchmarkQuerySearchAllFields benchmarks the widest search fan-out.
func BenchmarkQuerySearchAllFields(b *testing.B) {
	books := seedCatalog(1000)
	q := catalog.Query{
		View:   catalog.ViewSearch,
		Status: catalog.StatusAll,
		Search: "978",
		Field:  catalog.FieldAll,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		q.Apply(books)
	}
}

// BenchmarkFilterVisible benchmarks the anonymous visibility pass.
func BenchmarkFilterVisible(b *testing.B) {
	books := seedCatalog(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		catalog.FilterVisible(books, nil)
	}

	b.ReportMetric(float64(len(books)*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkRedactAll benchmarks building the public projection.
func BenchmarkRedactAll(b *testing.B) {
	books := seedCatalog(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		catalog.RedactAll(books)
	}
}

// BenchmarkPermissionsDecode benchmarks the legacy double-encoded column path.
func BenchmarkPermissionsDecode(b *testing.B) {
	raw := []byte(`"{\"canAdd\":\"1\",\"canEdit\":1,\"canDelete\":false,\"canHide\":true}"`)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		var p models.Permissions
		json.Unmarshal(raw, &p)
	}
}

// BenchmarkValidateBook benchmarks the record validation pipeline.
func BenchmarkValidateBook(b *testing.B) {
	book := &models.Book{
		Category:   models.CategoryBooks,
		Title:      "منهج التفسير",
		Author:     "محمد الكاظمي",
		Type:       models.TypeBook,
		Size:       models.SizeCustom,
		CustomSize: "20x27",
		Status:     models.StatusInProgress,
		PageCount:  240,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.ValidateBook(book)
	}
}

// BenchmarkRepositoryList benchmarks a full in-memory list round trip.
func BenchmarkRepositoryList(b *testing.B) {
	repo := mocks.NewMockBookRepository()
	for _, book := range seedCatalog(1000) {
		repo.Create(context.Background(), book)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		repo.List(context.Background())
	}
}
