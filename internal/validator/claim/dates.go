package claim

import (
	"fmt"

	"medclaims/internal/domain"
)

// dateDiscrepancies cross-checks every bill service date against every
// discharge admission/discharge window, with no matching by patient — a
// full cross-product, acceptable at claim-sized batches. Triples with any
// empty date are skipped. ISO-8601 date strings order lexicographically the
// same as chronologically, so plain string comparison is used.
func dateDiscrepancies(docs []domain.Document) []string {
	type window struct {
		admission string
		discharge string
	}

	var billDates []string
	var windows []window
	for _, doc := range docs {
		switch d := doc.(type) {
		case domain.Bill:
			billDates = append(billDates, d.DateOfService)
		case domain.DischargeSummary:
			windows = append(windows, window{d.AdmissionDate, d.DischargeDate})
		}
	}

	var out []string
	for _, billDate := range billDates {
		for _, w := range windows {
			if billDate == "" || w.admission == "" || w.discharge == "" {
				continue
			}
			if w.admission <= billDate && billDate <= w.discharge {
				continue
			}
			out = append(out, fmt.Sprintf(
				"Bill date %s not within admission %s and discharge %s dates",
				billDate, w.admission, w.discharge,
			))
		}
	}
	return out
}
