package repositories

import (
	"context"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
)

// SubmissionReader defines read operations for excise calculator submissions
type SubmissionReader interface {
	// ListSubmissions retrieves a page of submissions, newest first, using token-based pagination.
	// It returns the submissions, a token for the next page (nil on the last page), and an error.
	ListSubmissions(ctx context.Context, limit int, nextToken *string) ([]domain.ExciseSubmission, *string, error)

	// CountSubmissions reports how many submissions are currently held.
	CountSubmissions(ctx context.Context) (int, error)
}

// SubmissionWriter defines write operations for excise calculator submissions
type SubmissionWriter interface {
	// SaveSubmission stores a submission at the front of the history.
	// When the history exceeds its capacity the oldest entries are dropped.
	SaveSubmission(ctx context.Context, submission domain.ExciseSubmission) error
}

// SubmissionRepositoryFacade combines all submission-related repository interfaces
type SubmissionRepositoryFacade interface {
	SubmissionReader
	SubmissionWriter
}
