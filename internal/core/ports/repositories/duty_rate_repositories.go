package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
)

// DutyRateReader defines read operations for duty rate data
type DutyRateReader interface {
	// FindEffectiveDutyRate retrieves the latest rate effective on or before asOf.
	// Returns apperrors.ErrNotFound when no such rate is recorded.
	FindEffectiveDutyRate(ctx context.Context, asOf time.Time) (*domain.DutyRate, error)

	// ListDutyRates retrieves all recorded rates, latest effective date first.
	ListDutyRates(ctx context.Context) ([]domain.DutyRate, error)
}

// DutyRateWriter defines write operations for duty rate data
type DutyRateWriter interface {
	// SaveDutyRate persists a rate. A rate with the same effective date is replaced.
	SaveDutyRate(ctx context.Context, rate domain.DutyRate) error
}

// DutyRateRepositoryFacade combines all duty rate-related repository interfaces
type DutyRateRepositoryFacade interface {
	DutyRateReader
	DutyRateWriter
}
