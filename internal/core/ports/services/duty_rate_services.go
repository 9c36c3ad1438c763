package services

import (
	"context"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/dto"
)

// DutyRateReaderSvc defines read operations for duty rates
type DutyRateReaderSvc interface {
	// GetCurrentDutyRate retrieves the rate in effect on asOf, falling back to the default rate.
	GetCurrentDutyRate(ctx context.Context, asOf time.Time) (*domain.DutyRate, error)

	// ListDutyRates retrieves all recorded rates, latest effective date first.
	ListDutyRates(ctx context.Context) ([]domain.DutyRate, error)
}

// DutyRateWriterSvc defines write operations for duty rates
type DutyRateWriterSvc interface {
	// CreateDutyRate records a rate, replacing any rate with the same effective date.
	CreateDutyRate(ctx context.Context, req dto.CreateDutyRateRequest) (*domain.DutyRate, error)
}

// DutyRateSvcFacade combines all duty rate-related service interfaces
type DutyRateSvcFacade interface {
	DutyRateReaderSvc
	DutyRateWriterSvc
}
