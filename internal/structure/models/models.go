// Package models defines the persisted extraction structure: the per-file
// record of what was found in uploaded documents, with what confidence, by
// what method. One structure exists per application; its lifecycle is tied to
// the application record.
package models

import (
	"time"

	"belegplan/internal/catalog"
)

// UploadedFile is one entry of the upload subsystem's file inventory.
type UploadedFile struct {
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
	Uploaded   bool      `json:"uploaded"`
}

// ValueRecord holds the extracted fields for one value in one file. Its
// shape is fixed by the value field's declared category: a non-nil pointer
// marks a key the placeholder defines, and updates only ever fill those.
// The schema is closed - extractors cannot extend it per call.
type ValueRecord struct {
	Category    catalog.FieldCategory `json:"category"`
	GrossValue  *string               `json:"gross_value,omitempty"`
	NetValue    *string               `json:"net_value,omitempty"`
	Amount      *string               `json:"amount,omitempty"`
	Year        *string               `json:"year,omitempty"`
	Month       *string               `json:"month,omitempty"`
	IsMonthly   *bool                 `json:"is_monthly,omitempty"`
	IsRecurring *bool                 `json:"is_recurring,omitempty"`
	Laufzeit    *string               `json:"laufzeit,omitempty"`
	Confidence  *float64              `json:"confidence,omitempty"`
}

// FileExtraction is the per-file node: extractor metadata plus one value
// record per relevant value field.
type FileExtraction struct {
	Confidence float64                 `json:"confidence"`
	MethodUsed string                  `json:"method_used"`
	FilePath   string                  `json:"file_path"`
	UploadedAt time.Time               `json:"uploaded_at"`
	Values     map[string]*ValueRecord `json:"values"`
}

// DocumentExtraction is the per-(person, document type) node. It exists for
// every pair the plan names, even before any file is uploaded: a zero
// NumberOfFiles tells the reviewer a required document category has no
// uploads yet.
type DocumentExtraction struct {
	ExtractionComplete bool                       `json:"extraction_complete"`
	RelevantValues     []string                   `json:"relevant_values"`
	NumberOfFiles      int                        `json:"number_of_files"`
	Files              map[string]*FileExtraction `json:"files"`
}

// ExtractionStructure is the persisted nested record for one application.
// Revision supports optimistic concurrency on save; SkippedUpdates counts
// extractor results that addressed nodes planning never created.
type ExtractionStructure struct {
	ApplicationID  string                                    `json:"application_id"`
	Revision       int64                                     `json:"revision"`
	SkippedUpdates int                                       `json:"skipped_updates"`
	UpdatedAt      time.Time                                 `json:"updated_at"`
	Persons        map[string]map[string]*DocumentExtraction `json:"persons"`
}

// Document returns the node for a (person, document type) pair, or nil.
func (s *ExtractionStructure) Document(personKey, documentTypeID string) *DocumentExtraction {
	if s == nil {
		return nil
	}
	docs, ok := s.Persons[personKey]
	if !ok {
		return nil
	}
	return docs[documentTypeID]
}

// NewPlaceholder creates the empty value record for a field category. The
// shape comes from the category lookup, never from whatever data the
// extractor later returns.
func NewPlaceholder(category catalog.FieldCategory) *ValueRecord {
	rec := &ValueRecord{Category: category}
	switch category {
	case catalog.CategoryGrossIncome:
		rec.GrossValue = ptr("")
		rec.Year = ptr("")
		rec.Month = ptr("")
		rec.IsMonthly = ptrBool(false)
	case catalog.CategoryNetIncome:
		rec.NetValue = ptr("")
		rec.Year = ptr("")
		rec.Month = ptr("")
		rec.IsMonthly = ptrBool(false)
	case catalog.CategoryObligation:
		rec.Amount = ptr("")
		rec.Year = ptr("")
		rec.Month = ptr("")
		rec.IsMonthly = ptrBool(false)
		rec.IsRecurring = ptrBool(false)
		rec.Laufzeit = ptr("")
	case catalog.CategoryCalendar:
		rec.Year = ptr("")
	default:
		// Generic fallback: the union of all category fields.
		rec.GrossValue = ptr("")
		rec.NetValue = ptr("")
		rec.Amount = ptr("")
		rec.Year = ptr("")
		rec.Month = ptr("")
		rec.IsMonthly = ptrBool(false)
		rec.IsRecurring = ptrBool(false)
		rec.Laufzeit = ptr("")
	}
	conf := 0.0
	rec.Confidence = &conf
	return rec
}

func ptr(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}
