package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"medclaims/internal/domain"
	"medclaims/internal/port"
)

const (
	billMaxTokens      = 200
	dischargeMaxTokens = 300
	idCardMaxTokens    = 100
)

// FieldExtractor turns extracted document text into the structured record
// for one document type. Provider failures propagate; a malformed provider
// response never does — the extractor degrades to an empty record tagged
// with the correct type so the validator reports the missing fields instead
// of the pipeline crashing.
type FieldExtractor interface {
	Extract(ctx context.Context, text string) (domain.Document, error)
}

// FieldExtractors returns one extractor per known document type.
func FieldExtractors(completer port.Completer) map[domain.DocumentType]FieldExtractor {
	return map[domain.DocumentType]FieldExtractor{
		domain.DocumentTypeBill:             &BillExtractor{completer: completer},
		domain.DocumentTypeDischargeSummary: &DischargeExtractor{completer: completer},
		domain.DocumentTypeIDCard:           &IDCardExtractor{completer: completer},
	}
}

// BillExtractor extracts medical bill fields.
type BillExtractor struct {
	completer port.Completer
}

func (e *BillExtractor) Extract(ctx context.Context, text string) (domain.Document, error) {
	prompt := fmt.Sprintf(
		"Extract the following fields from the medical bill text: hospital_name, total_amount, date_of_service (ISO format). Return as JSON.\nText:\n%s",
		text,
	)
	raw, err := e.completer.Complete(ctx, prompt, billMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extracting bill fields: %w", err)
	}

	var doc domain.Bill
	if err := unmarshalFields(raw, &doc); err != nil {
		log.Printf("agent.BillExtractor: unparseable response, degrading to empty record: %v", err)
		return domain.Bill{}, nil
	}
	return doc, nil
}

// DischargeExtractor extracts discharge summary fields.
type DischargeExtractor struct {
	completer port.Completer
}

func (e *DischargeExtractor) Extract(ctx context.Context, text string) (domain.Document, error) {
	prompt := fmt.Sprintf(
		"Extract the following fields from the discharge summary text: patient_name, diagnosis, admission_date (ISO format), discharge_date (ISO format). Return as JSON.\nText:\n%s",
		text,
	)
	raw, err := e.completer.Complete(ctx, prompt, dischargeMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extracting discharge summary fields: %w", err)
	}

	var doc domain.DischargeSummary
	if err := unmarshalFields(raw, &doc); err != nil {
		log.Printf("agent.DischargeExtractor: unparseable response, degrading to empty record: %v", err)
		return domain.DischargeSummary{}, nil
	}
	return doc, nil
}

// IDCardExtractor extracts patient ID card fields.
type IDCardExtractor struct {
	completer port.Completer
}

func (e *IDCardExtractor) Extract(ctx context.Context, text string) (domain.Document, error) {
	prompt := fmt.Sprintf(
		"Extract the following fields from the patient ID card text: patient_name, id_number. Return as JSON.\nText:\n%s",
		text,
	)
	raw, err := e.completer.Complete(ctx, prompt, idCardMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extracting id card fields: %w", err)
	}

	var doc domain.IDCard
	if err := unmarshalFields(raw, &doc); err != nil {
		log.Printf("agent.IDCardExtractor: unparseable response, degrading to empty record: %v", err)
		return domain.IDCard{}, nil
	}
	return doc, nil
}

// unmarshalFields parses a provider response as JSON, tolerating the
// markdown code fences models emit even when asked for raw output.
func unmarshalFields(raw string, v any) error {
	return json.Unmarshal([]byte(stripFences(raw)), v)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
