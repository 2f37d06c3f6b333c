package claim

import (
	"fmt"

	"medclaims/internal/domain"
)

// requiredField names one field a document type must carry and how to test
// its presence on that type's variant. Empty strings and zero amounts both
// count as missing.
type requiredField struct {
	name    string
	present func(domain.Document) bool
}

// requiredFields is the per-type required-field table, in field declaration
// order. Generic documents have no entry and are exempt.
var requiredFields = map[domain.DocumentType][]requiredField{
	domain.DocumentTypeBill: {
		{"hospital_name", func(d domain.Document) bool {
			b, ok := d.(domain.Bill)
			return ok && b.HospitalName != ""
		}},
		{"total_amount", func(d domain.Document) bool {
			b, ok := d.(domain.Bill)
			return ok && b.TotalAmount != 0
		}},
		{"date_of_service", func(d domain.Document) bool {
			b, ok := d.(domain.Bill)
			return ok && b.DateOfService != ""
		}},
	},
	domain.DocumentTypeDischargeSummary: {
		{"patient_name", func(d domain.Document) bool {
			ds, ok := d.(domain.DischargeSummary)
			return ok && ds.PatientName != ""
		}},
		{"diagnosis", func(d domain.Document) bool {
			ds, ok := d.(domain.DischargeSummary)
			return ok && ds.Diagnosis != ""
		}},
		{"admission_date", func(d domain.Document) bool {
			ds, ok := d.(domain.DischargeSummary)
			return ok && ds.AdmissionDate != ""
		}},
		{"discharge_date", func(d domain.Document) bool {
			ds, ok := d.(domain.DischargeSummary)
			return ok && ds.DischargeDate != ""
		}},
	},
	domain.DocumentTypeIDCard: {
		{"patient_name", func(d domain.Document) bool {
			c, ok := d.(domain.IDCard)
			return ok && c.PatientName != ""
		}},
		{"id_number", func(d domain.Document) bool {
			c, ok := d.(domain.IDCard)
			return ok && c.IDNumber != ""
		}},
	},
}

// missingFields emits one "<type> missing <field>" message per absent
// required field, in document order then field declaration order.
func missingFields(docs []domain.Document) []string {
	var out []string
	for _, doc := range docs {
		if _, generic := doc.(domain.Generic); generic {
			continue
		}
		for _, f := range requiredFields[doc.Type()] {
			if !f.present(doc) {
				out = append(out, fmt.Sprintf("%s missing %s", doc.Type(), f.name))
			}
		}
	}
	return out
}
