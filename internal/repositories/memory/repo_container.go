package memory

import (
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates the in-memory stores. historyLimit caps the calculator history.
func NewRepositoryProvider(historyLimit int) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BatchRepo:      newBatchRepository(),
		SubmissionRepo: newSubmissionRepository(historyLimit),
		DutyRateRepo:   newDutyRateRepository(),
	}
}
