package core

import (
	"context"
	"fmt"
	"time"

	"reqstage/internal/classify"
	"reqstage/internal/extract"
	"reqstage/internal/repository"
	"reqstage/pkg/schema"
)

// Service is the composition root: document extraction, the tiered
// classification pipeline, and the history repository. The model handle
// stays outside the pipeline; the service passes it in as the ModelCall
// collaborator.
type Service struct {
	logger    Logger
	extractor extract.Extractor
	orch      *classify.Orchestrator
	call      classify.ModelCall
	repo      *repository.Repository
}

// NewService creates a new classification service. repo may be nil, in
// which case results are returned but not recorded.
func NewService(logger Logger, extractor extract.Extractor, call classify.ModelCall, repo *repository.Repository) *Service {
	return &Service{
		logger:    logger,
		extractor: extractor,
		orch:      classify.NewOrchestrator(),
		call:      call,
		repo:      repo,
	}
}

// ClassifyText classifies plain source text and records the run. source
// is a caller-supplied label (file name, upload name) kept for history.
func (s *Service) ClassifyText(ctx context.Context, source, text string) (*schema.ClassificationRecord, error) {
	docID, err := schema.NewDocumentID()
	if err != nil {
		return nil, fmt.Errorf("generate document ID: %w", err)
	}

	runID, err := schema.NewRunID()
	if err != nil {
		return nil, fmt.Errorf("generate run ID: %w", err)
	}

	result, tier, err := s.orch.Classify(ctx, text, s.call)
	if err != nil {
		return nil, &CollaboratorError{
			Collaborator: "text-generation",
			Message:      "classification call failed",
			Err:          err,
		}
	}

	record := &schema.ClassificationRecord{
		ID:         runID,
		DocumentID: docID,
		Source:     source,
		Tier:       tier,
		Stages:     result,
		CreatedAt:  time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, &ValidationError{Field: "record", Message: err.Error(), Err: err}
	}

	s.logger.Info("classification complete",
		"run_id", record.ID,
		"source", source,
		"tier", tier,
		"requirements", result.Total(),
	)

	if s.repo != nil {
		if err := s.repo.AppendRecord(record); err != nil {
			return nil, fmt.Errorf("record classification: %w", err)
		}
	}

	return record, nil
}

// ClassifyDocument extracts text from raw document bytes and classifies
// it. Extraction failure propagates as a collaborator error.
func (s *Service) ClassifyDocument(ctx context.Context, source string, data []byte) (*schema.ClassificationRecord, error) {
	text, err := s.extractor.ExtractText(data)
	if err != nil {
		return nil, &CollaboratorError{
			Collaborator: "document-extraction",
			Message:      "text extraction failed",
			Err:          err,
		}
	}

	return s.ClassifyText(ctx, source, text)
}

// History returns the recorded classification runs, oldest first.
func (s *Service) History() ([]schema.ClassificationRecord, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ReadHistory()
}
