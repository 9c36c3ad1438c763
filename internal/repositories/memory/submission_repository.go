package memory

import (
	"context"
	"net/http"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
	"github.com/SscSPs/brew_notes_app/internal/utils/pagination"
)

const defaultPageSize = 20

// SubmissionRepository holds the calculator history, newest first, up to a fixed capacity.
type SubmissionRepository struct {
	BaseRepository
	capacity    int
	submissions []domain.ExciseSubmission
}

func newSubmissionRepository(capacity int) *SubmissionRepository {
	if capacity <= 0 {
		capacity = 1
	}
	return &SubmissionRepository{capacity: capacity}
}

var _ portsrepo.SubmissionRepositoryFacade = (*SubmissionRepository)(nil)

// SaveSubmission prepends the submission and drops the oldest entries beyond capacity.
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, submission domain.ExciseSubmission) error {
	if err := r.checkCtx(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions = append([]domain.ExciseSubmission{submission}, r.submissions...)
	if len(r.submissions) > r.capacity {
		r.submissions = r.submissions[:r.capacity]
	}
	return nil
}

// CountSubmissions reports how many submissions are held.
func (r *SubmissionRepository) CountSubmissions(ctx context.Context) (int, error) {
	if err := r.checkCtx(ctx); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.submissions), nil
}

// ListSubmissions returns up to limit submissions after the cursor in nextToken.
// A cursor whose submission has since been dropped resumes at the first older entry.
func (r *SubmissionRepository) ListSubmissions(ctx context.Context, limit int, nextToken *string) ([]domain.ExciseSubmission, *string, error) {
	if err := r.checkCtx(ctx); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", err)
		}
		start = r.indexAfter(cursor)
	}

	end := start + limit
	if end > len(r.submissions) {
		end = len(r.submissions)
	}

	page := make([]domain.ExciseSubmission, end-start)
	copy(page, r.submissions[start:end])

	var next *string
	if end < len(r.submissions) && len(page) > 0 {
		last := page[len(page)-1]
		token := pagination.EncodeCursor(last.SubmittedAt, last.SubmissionID)
		next = &token
	}
	return page, next, nil
}

// indexAfter finds where the page following cursor starts. Callers hold mu.
func (r *SubmissionRepository) indexAfter(cursor pagination.Cursor) int {
	for i, s := range r.submissions {
		if s.SubmissionID == cursor.ID {
			return i + 1
		}
	}
	for i, s := range r.submissions {
		if s.SubmittedAt.Before(cursor.Timestamp) {
			return i
		}
	}
	return len(r.submissions)
}
