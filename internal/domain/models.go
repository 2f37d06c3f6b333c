package domain

// UploadedFile is one named file from the inbound batch.
type UploadedFile struct {
	Filename string
	Content  []byte
}

// ValidationReport lists every data-quality problem found in a claim batch.
// Both slices are human-readable messages in stable order; empty slices mean
// a clean claim.
type ValidationReport struct {
	MissingDocuments []string `json:"missing_documents"`
	Discrepancies    []string `json:"discrepancies"`
}

// DecisionStatus is the binary claim outcome.
type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "approved"
	DecisionRejected DecisionStatus = "rejected"
)

// ClaimDecision is derived deterministically from the ValidationReport:
// approved iff the report is empty.
type ClaimDecision struct {
	Status DecisionStatus `json:"status"`
	Reason string         `json:"reason"`
}

// ClaimResult is the full outcome of processing one claim batch.
type ClaimResult struct {
	Documents     []Document       `json:"documents"`
	Validation    ValidationReport `json:"validation"`
	ClaimDecision ClaimDecision    `json:"claim_decision"`
}
