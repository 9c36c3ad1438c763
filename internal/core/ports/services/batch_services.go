package services

import (
	"context"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/dto"
)

// BatchReaderSvc defines read operations for recorded batches
type BatchReaderSvc interface {
	// GetBatch retrieves a specific batch by its ID.
	GetBatch(ctx context.Context, batchID string) (*domain.BatchNotes, error)

	// ListBatches retrieves all recorded batches, newest first.
	ListBatches(ctx context.Context) ([]domain.BatchNotes, error)
}

// BatchWriterSvc defines write operations for recorded batches
type BatchWriterSvc interface {
	// RecordBatch validates the brew notes, derives the duty figures and stores the batch.
	RecordBatch(ctx context.Context, req dto.RecordBatchRequest) (*domain.BatchNotes, error)
}

// BatchSvcFacade combines all batch-related service interfaces
type BatchSvcFacade interface {
	BatchReaderSvc
	BatchWriterSvc
}
