// Package claim validates the aggregated documents of one claim batch for
// completeness and internal date consistency.
package claim

import "medclaims/internal/domain"

const (
	reasonApproved = "All required documents present and data is consistent"
	reasonRejected = "Missing or inconsistent data"
)

// Validate is a pure function of the full document collection. Data-quality
// problems surface as report entries, never as errors; the decision is
// approved iff the report is empty.
func Validate(docs []domain.Document) (domain.ValidationReport, domain.ClaimDecision) {
	report := domain.ValidationReport{
		MissingDocuments: []string{},
		Discrepancies:    []string{},
	}
	report.MissingDocuments = append(report.MissingDocuments, missingFields(docs)...)
	report.Discrepancies = append(report.Discrepancies, dateDiscrepancies(docs)...)

	decision := domain.ClaimDecision{Status: domain.DecisionApproved, Reason: reasonApproved}
	if len(report.MissingDocuments) > 0 || len(report.Discrepancies) > 0 {
		decision = domain.ClaimDecision{Status: domain.DecisionRejected, Reason: reasonRejected}
	}
	return report, decision
}
