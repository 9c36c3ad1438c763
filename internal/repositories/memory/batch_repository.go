package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
)

// BatchRepository keeps recorded batches for the lifetime of the process.
type BatchRepository struct {
	BaseRepository
	byID  map[string]domain.BatchNotes
	order []string // insertion order, oldest first
}

func newBatchRepository() *BatchRepository {
	return &BatchRepository{byID: make(map[string]domain.BatchNotes)}
}

var _ portsrepo.BatchRepositoryFacade = (*BatchRepository)(nil)

// SaveBatch stores a new batch. Saving an ID twice is rejected.
func (r *BatchRepository) SaveBatch(ctx context.Context, batch domain.BatchNotes) error {
	if err := r.checkCtx(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[batch.BatchID]; exists {
		return fmt.Errorf("%w: batch %s", apperrors.ErrDuplicate, batch.BatchID)
	}
	r.byID[batch.BatchID] = batch
	r.order = append(r.order, batch.BatchID)
	return nil
}

// FindBatchByID retrieves a batch by its ID.
func (r *BatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.BatchNotes, error) {
	if err := r.checkCtx(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	batch, ok := r.byID[batchID]
	if !ok {
		return nil, apperrors.NewNotFoundError("batch not found")
	}
	return &batch, nil
}

// ListBatches returns every batch, most recently recorded first.
func (r *BatchRepository) ListBatches(ctx context.Context) ([]domain.BatchNotes, error) {
	if err := r.checkCtx(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	batches := make([]domain.BatchNotes, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		batches = append(batches, r.byID[r.order[i]])
	}
	return batches, nil
}
