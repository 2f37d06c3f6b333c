package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"medclaims/internal/agent"
	"medclaims/internal/domain"
	"medclaims/internal/port"
	"medclaims/internal/validator/claim"
)

// ClaimService defines the claim processing contract.
type ClaimService interface {
	ProcessClaim(ctx context.Context, files []domain.UploadedFile) (*domain.ClaimResult, error)
}

type claimService struct {
	classifier   *agent.Classifier
	extractor    *agent.TextExtractor
	fields       map[domain.DocumentType]agent.FieldExtractor
	archiver     port.FileArchiver
	maxFileBytes int64
}

// NewClaimService creates a new ClaimService implementation. archiver may be
// nil to disable the upload archive.
func NewClaimService(
	classifier *agent.Classifier,
	extractor *agent.TextExtractor,
	fields map[domain.DocumentType]agent.FieldExtractor,
	archiver port.FileArchiver,
	maxFileSizeMB int64,
) ClaimService {
	return &claimService{
		classifier:   classifier,
		extractor:    extractor,
		fields:       fields,
		archiver:     archiver,
		maxFileBytes: maxFileSizeMB * 1024 * 1024,
	}
}

// ProcessClaim drives the per-file pipeline (classify, extract text, extract
// fields) across the batch in upload order, then validates the aggregated
// collection exactly once. Input-rejection errors surface before any
// pipeline work; a provider failure on any file aborts the whole batch with
// no partial result.
func (s *claimService) ProcessClaim(ctx context.Context, files []domain.UploadedFile) (*domain.ClaimResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFilesUploaded
	}
	for _, f := range files {
		if !strings.HasSuffix(strings.ToLower(f.Filename), ".pdf") {
			return nil, domain.ErrNotPDF
		}
		if s.maxFileBytes > 0 && int64(len(f.Content)) > s.maxFileBytes {
			return nil, domain.ErrFileTooLarge
		}
	}

	docs := make([]domain.Document, 0, len(files))
	for _, f := range files {
		doc, err := s.processFile(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("processing %s: %w", f.Filename, err)
		}
		docs = append(docs, doc)
	}

	report, decision := claim.Validate(docs)

	return &domain.ClaimResult{
		Documents:     docs,
		Validation:    report,
		ClaimDecision: decision,
	}, nil
}

func (s *claimService) processFile(ctx context.Context, f domain.UploadedFile) (domain.Document, error) {
	if s.archiver != nil {
		if _, err := s.archiver.Save(f.Content, f.Filename); err != nil {
			log.Printf("claimService: archiving %s failed: %v", f.Filename, err)
		}
	}

	docType, err := s.classifier.Classify(ctx, f.Content, f.Filename)
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.ExtractText(ctx, f.Content)
	if err != nil {
		return nil, err
	}

	extractor, ok := s.fields[docType]
	if !ok {
		// No field set defined for this type; keep the raw text so the
		// caller still sees what was in the file.
		return domain.Generic{DocType: docType, Content: text}, nil
	}
	return extractor.Extract(ctx, text)
}
