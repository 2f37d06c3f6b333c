package domain

import (
	"encoding/json"
	"strings"
)

// DocumentType classifies an uploaded claim document.
type DocumentType string

const (
	DocumentTypeBill             DocumentType = "bill"
	DocumentTypeDischargeSummary DocumentType = "discharge_summary"
	DocumentTypeIDCard           DocumentType = "id_card"
	DocumentTypeUnknown          DocumentType = "unknown"
)

// KnownDocumentTypes is the set of types that carry their own field set.
var KnownDocumentTypes = map[DocumentType]bool{
	DocumentTypeBill:             true,
	DocumentTypeDischargeSummary: true,
	DocumentTypeIDCard:           true,
}

// ParseDocumentType normalizes a classifier label. Anything outside the
// known set collapses to DocumentTypeUnknown.
func ParseDocumentType(label string) DocumentType {
	t := DocumentType(strings.ToLower(strings.TrimSpace(label)))
	if !KnownDocumentTypes[t] {
		return DocumentTypeUnknown
	}
	return t
}

// Document is the closed set of structured records produced by field
// extraction. Each variant carries only the fields relevant to its type and
// marshals with a "type" discriminator. Records are immutable once created.
type Document interface {
	Type() DocumentType
}

// Bill is a structured medical bill.
type Bill struct {
	HospitalName  string  `json:"hospital_name"`
	TotalAmount   float64 `json:"total_amount"`
	DateOfService string  `json:"date_of_service"` // ISO-8601 date
}

func (Bill) Type() DocumentType { return DocumentTypeBill }

func (b Bill) MarshalJSON() ([]byte, error) {
	type alias Bill
	return json.Marshal(struct {
		Type DocumentType `json:"type"`
		alias
	}{DocumentTypeBill, alias(b)})
}

// DischargeSummary is a structured hospital discharge summary.
type DischargeSummary struct {
	PatientName   string `json:"patient_name"`
	Diagnosis     string `json:"diagnosis"`
	AdmissionDate string `json:"admission_date"` // ISO-8601 date
	DischargeDate string `json:"discharge_date"` // ISO-8601 date
}

func (DischargeSummary) Type() DocumentType { return DocumentTypeDischargeSummary }

func (d DischargeSummary) MarshalJSON() ([]byte, error) {
	type alias DischargeSummary
	return json.Marshal(struct {
		Type DocumentType `json:"type"`
		alias
	}{DocumentTypeDischargeSummary, alias(d)})
}

// IDCard is a structured patient identity card.
type IDCard struct {
	PatientName string `json:"patient_name"`
	IDNumber    string `json:"id_number"`
}

func (IDCard) Type() DocumentType { return DocumentTypeIDCard }

func (i IDCard) MarshalJSON() ([]byte, error) {
	type alias IDCard
	return json.Marshal(struct {
		Type DocumentType `json:"type"`
		alias
	}{DocumentTypeIDCard, alias(i)})
}

// Generic is the catch-all for documents without a defined field set. It
// keeps the raw extracted text so nothing is silently discarded.
type Generic struct {
	DocType DocumentType `json:"type"`
	Content string       `json:"content,omitempty"`
}

func (g Generic) Type() DocumentType { return g.DocType }
