package models

import (
	"time"
)

// Category values are the fixed set of catalog sections. The Arabic strings are
// the canonical wire and storage values, not display labels.
const (
	CategoryBooks         = "الكتب"
	CategoryBooklets      = "الكتيبات"
	CategoryGuideMagazine = "مجلة الدليل"
	CategoryAnnualReport  = "التقرير السنوي"
	CategoryVisualReport  = "التقرير المصور لنشاطات المؤسسة"
	CategoryNatureMag     = "مجلة الطبيعة"
)

// ValidCategories defines allowed publication categories
var ValidCategories = map[string]bool{
	CategoryBooks:         true,
	CategoryBooklets:      true,
	CategoryGuideMagazine: true,
	CategoryAnnualReport:  true,
	CategoryVisualReport:  true,
	CategoryNatureMag:     true,
}

// Publication types
const (
	TypeBook          = "كتاب"
	TypeBooklet       = "كتيب"
	TypePamphlet      = "كراس"
	TypeGuideMagazine = "مجلة الدليل"
	TypeNatureMag     = "مجلة الطبيعة"
	TypeVisualReport  = "تقرير مصور"
)

// ValidTypes defines allowed publication types
var ValidTypes = map[string]bool{
	TypeBook:          true,
	TypeBooklet:       true,
	TypePamphlet:      true,
	TypeGuideMagazine: true,
	TypeNatureMag:     true,
	TypeVisualReport:  true,
}

// Print sizes; SizeCustom requires CustomSize to be set.
const (
	SizeWaziri = "وزيري"
	SizeRahli  = "رحلي"
	SizeRuqi   = "رقعي"
	SizeCustom = "قطع خاص"
)

// ValidSizes defines allowed publication sizes
var ValidSizes = map[string]bool{
	SizeWaziri: true,
	SizeRahli:  true,
	SizeRuqi:   true,
	SizeCustom: true,
}

// Production lifecycle states
const (
	StatusStopped    = "متوقف"
	StatusInProgress = "قيد العمل"
	StatusPrinted    = "مطبوع"
	StatusInPrinting = "قيد الطباعة"
)

// ValidStatuses defines allowed lifecycle states
var ValidStatuses = map[string]bool{
	StatusStopped:    true,
	StatusInProgress: true,
	StatusPrinted:    true,
	StatusInPrinting: true,
}

// Book represents a publication record. Wire and storage use snake_case; the
// json tag set is the declared field mapping.
type Book struct {
	ID       string `json:"id" db:"id"`
	Category string `json:"category" db:"category"`

	// Primary data
	Title               string `json:"title" db:"title"`
	Author              string `json:"author" db:"author"`
	ScientificReview    string `json:"scientific_review" db:"scientific_review"`
	Translation         string `json:"translation" db:"translation"`
	LinguisticCorrector string `json:"linguistic_corrector" db:"linguistic_corrector"`
	Investigation       string `json:"investigation" db:"investigation"`
	Director            string `json:"director" db:"director"`
	CoverDesigner       string `json:"cover_designer" db:"cover_designer"`
	PublicationYear     string `json:"publication_year" db:"publication_year"`
	Edition             string `json:"edition" db:"edition"`

	// Technical data
	Type          string `json:"type" db:"type"`
	Size          string `json:"size" db:"size"`
	CustomSize    string `json:"custom_size" db:"custom_size"`
	Status        string `json:"status" db:"status"`
	Image         string `json:"image" db:"image"`
	DepositNumber string `json:"deposit_number" db:"deposit_number"`
	ISBN          string `json:"isbn" db:"isbn"`
	PageCount     int    `json:"page_count" db:"page_count"`

	// Production tracking dates (ISO dates, absent when empty)
	ReceivedFromResearchDate string `json:"received_from_research_date,omitempty" db:"received_from_research_date"`
	TitleApprovalDate        string `json:"title_approval_date,omitempty" db:"title_approval_date"`
	DepositRequestDate       string `json:"deposit_request_date,omitempty" db:"deposit_request_date"`
	DepositReceiveDate       string `json:"deposit_receive_date,omitempty" db:"deposit_receive_date"`
	OrgWordReceiveDate       string `json:"org_word_receive_date,omitempty" db:"org_word_receive_date"`
	AbstractReceiveDate      string `json:"abstract_receive_date,omitempty" db:"abstract_receive_date"`
	DisbursementFormDate     string `json:"disbursement_form_date,omitempty" db:"disbursement_form_date"`
	SentToDirectorDate       string `json:"sent_to_director_date,omitempty" db:"sent_to_director_date"`
	ReceivedFromDirectorDate string `json:"received_from_director_date,omitempty" db:"received_from_director_date"`
	SentToDesignerDate       string `json:"sent_to_designer_date,omitempty" db:"sent_to_designer_date"`
	ReceivedFromDesignerDate string `json:"received_from_designer_date,omitempty" db:"received_from_designer_date"`
	DigitalPrintDate         string `json:"digital_print_date,omitempty" db:"digital_print_date"`
	OffsetPrintDate          string `json:"offset_print_date,omitempty" db:"offset_print_date"`
	CoverEndorsementDate     string `json:"cover_endorsement_date,omitempty" db:"cover_endorsement_date"`
	ReceiveFromPrintDate     string `json:"receive_from_print_date,omitempty" db:"receive_from_print_date"`

	PrintingHouse string `json:"printing_house,omitempty" db:"printing_house"`
	PrintQuantity string `json:"print_quantity,omitempty" db:"print_quantity"`
	Executor      string `json:"executor,omitempty" db:"executor"`

	// File artifacts
	CoverEditableURL  string `json:"cover_editable_url,omitempty" db:"cover_editable_url"`
	CoverViewableURL  string `json:"cover_viewable_url,omitempty" db:"cover_viewable_url"`
	CoverPrintableURL string `json:"cover_printable_url,omitempty" db:"cover_printable_url"`
	CoverSignatureURL string `json:"cover_signature_url,omitempty" db:"cover_signature_url"`
	BodyEditableURL   string `json:"body_editable_url,omitempty" db:"body_editable_url"`
	BodyPdfURL        string `json:"body_pdf_url,omitempty" db:"body_pdf_url"`
	BodyWatermarkURL  string `json:"body_watermark_url,omitempty" db:"body_watermark_url"`
	BodySignaturesURL string `json:"body_signatures_url,omitempty" db:"body_signatures_url"`

	AdminNotes    string `json:"admin_notes,omitempty" db:"admin_notes"`
	PublicVisible *bool  `json:"public_visible,omitempty" db:"public_visible"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsPublic reports whether anonymous viewers may see the record at all.
// Absent means visible; only an explicit false hides it.
func (b *Book) IsPublic() bool {
	return b.PublicVisible == nil || *b.PublicVisible
}

// PublicBook is the redacted view served to anonymous viewers. Lifecycle dates,
// artifact URLs, admin notes, deposit/ISBN identifiers, status and page count
// never leave the server for unauthenticated requests.
type PublicBook struct {
	ID               string `json:"id"`
	Category         string `json:"category"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	ScientificReview string `json:"scientific_review"`
	Translation      string `json:"translation"`
	PublicationYear  string `json:"publication_year"`
	Type             string `json:"type"`
	Size             string `json:"size"`
	CustomSize       string `json:"custom_size,omitempty"`
	Image            string `json:"image"`
}
