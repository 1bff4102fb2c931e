package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBookJSONRoundTrip(t *testing.T) {
	visible := false
	original := Book{
		ID:                 "0b8f6c1e-0000-4000-8000-000000000001",
		Category:           CategoryBooks,
		Title:              "منهج التفسير",
		Author:             "محمد الكاظمي",
		ScientificReview:   "لجنة المراجعة",
		Translation:        "",
		Director:           "علي حسن",
		PublicationYear:    "2023",
		Edition:            "الأولى",
		Type:               TypeBook,
		Size:               SizeCustom,
		CustomSize:         "20x27",
		Status:             StatusInPrinting,
		DepositNumber:      "DN-1001",
		ISBN:               "978-3-16-148410-0",
		PageCount:          312,
		TitleApprovalDate:  "2023-02-14",
		DigitalPrintDate:   "2023-06-01",
		PrintingHouse:      "دار الطباعة",
		PrintQuantity:      "1000",
		CoverViewableURL:   "/files/covers/view.pdf",
		BodyPdfURL:         "/files/body/final.pdf",
		AdminNotes:         "بانتظار الغلاف",
		PublicVisible:      &visible,
		CreatedAt:          time.Date(2023, 1, 5, 10, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2023, 6, 2, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Book
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.PublicVisible == nil || *decoded.PublicVisible != false {
		t.Error("public_visible=false must survive the round trip")
	}
	decoded.PublicVisible = original.PublicVisible
	if decoded != original {
		t.Errorf("round trip altered the record:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestBookOmitsEmptyOptionalFields(t *testing.T) {
	b := Book{ID: "x", Category: CategoryBooklets, Title: "t", Author: "a"}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var m map[string]interface{}
	json.Unmarshal(data, &m)

	for _, absent := range []string{"admin_notes", "public_visible", "digital_print_date", "body_pdf_url"} {
		if _, ok := m[absent]; ok {
			t.Errorf("empty optional field %q must be omitted", absent)
		}
	}
	// Core fields always serialize, even when zero.
	for _, present := range []string{"isbn", "status", "page_count"} {
		if _, ok := m[present]; !ok {
			t.Errorf("core field %q must always serialize", present)
		}
	}
}

func TestIsPublic(t *testing.T) {
	truthy := true
	falsy := false

	cases := []struct {
		name string
		flag *bool
		want bool
	}{
		{"absent means visible", nil, true},
		{"explicit true", &truthy, true},
		{"explicit false hides", &falsy, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Book{PublicVisible: tc.flag}
			if got := b.IsPublic(); got != tc.want {
				t.Errorf("IsPublic() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPermissionsDoubleEncodedColumn(t *testing.T) {
	// Legacy rows store the permissions object JSON-encoded inside a string.
	raw := `"{\"canAdd\":\"1\",\"canEdit\":false,\"canDelete\":1,\"canHide\":\"yes\"}"`

	var p Permissions
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !bool(p.CanAdd) || bool(p.CanEdit) || !bool(p.CanDelete) || bool(p.CanHide) {
		t.Errorf("coercion mismatch: %+v", p)
	}
}

func TestParsePermissionsGarbage(t *testing.T) {
	for _, raw := range []string{"", "null", "not json", `"{"`, "[]"} {
		p := ParsePermissions([]byte(raw))
		if p != (Permissions{}) {
			t.Errorf("ParsePermissions(%q) = %+v, want the all-false set", raw, p)
		}
	}
}

func TestFlagMarshalNormalizes(t *testing.T) {
	p := Permissions{CanAdd: true}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var m map[string]interface{}
	json.Unmarshal(data, &m)
	if m["canAdd"] != true || m["canDelete"] != false {
		t.Errorf("flags must serialize as strict booleans, got %s", data)
	}
}
