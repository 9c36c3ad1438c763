package repositories

import (
	"context"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
)

// BatchReader defines read operations for recorded batches
type BatchReader interface {
	// FindBatchByID retrieves a batch by its unique identifier.
	// Returns apperrors.ErrNotFound when no batch has that ID.
	FindBatchByID(ctx context.Context, batchID string) (*domain.BatchNotes, error)

	// ListBatches retrieves all batches, newest first.
	ListBatches(ctx context.Context) ([]domain.BatchNotes, error)
}

// BatchWriter defines write operations for recorded batches
type BatchWriter interface {
	// SaveBatch persists a new batch.
	SaveBatch(ctx context.Context, batch domain.BatchNotes) error
}

// BatchRepositoryFacade combines all batch-related repository interfaces
type BatchRepositoryFacade interface {
	BatchReader
	BatchWriter
}
