package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/SscSPs/brew_notes_app/internal/utils/excise"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dutyRateService implements the DutyRateSvcFacade interface
type dutyRateService struct {
	BaseService
	rateRepo portsrepo.DutyRateRepositoryFacade
}

// NewDutyRateService creates a new duty rate service with the provided options
func NewDutyRateService(repo portsrepo.DutyRateRepositoryFacade, options ...ServiceOption) portssvc.DutyRateSvcFacade {
	svc := &dutyRateService{rateRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.DutyRateSvcFacade = (*dutyRateService)(nil)

// CreateDutyRate records a rate, replacing any rate with the same effective date.
func (s *dutyRateService) CreateDutyRate(ctx context.Context, req dto.CreateDutyRateRequest) (*domain.DutyRate, error) {
	if err := validateStruct(req); err != nil {
		s.LogWarn(ctx, "Duty rate failed validation", slog.String("error", err.Error()))
		return nil, err
	}
	if req.Rate.IsNegative() {
		return nil, apperrors.NewFieldValidationError(map[string]string{"rate": fieldMessages["exciseDutyRate.gte"]})
	}

	effective, err := time.Parse(domain.DateLayout, req.DateEffective)
	if err != nil {
		return nil, apperrors.NewFieldValidationError(map[string]string{"dateEffective": fieldMessages["dateEffective.datetime"]})
	}

	rate := domain.DutyRate{
		DutyRateID:    uuid.NewString(),
		Rate:          *req.Rate,
		DateEffective: effective,
		Description:   req.Description,
		CreatedAt:     s.Now(),
	}

	if err := s.rateRepo.SaveDutyRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save duty rate", slog.String("date_effective", req.DateEffective))
		return nil, fmt.Errorf("failed to create duty rate: %w", err)
	}

	s.LogInfo(ctx, "Duty rate recorded",
		slog.String("duty_rate_id", rate.DutyRateID),
		slog.String("rate", rate.Rate.String()),
		slog.String("date_effective", req.DateEffective))
	return &rate, nil
}

// GetCurrentDutyRate returns the rate effective on asOf. When none is recorded it returns
// the built-in default, flagged with IsDefault.
func (s *dutyRateService) GetCurrentDutyRate(ctx context.Context, asOf time.Time) (*domain.DutyRate, error) {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	rate, err := s.rateRepo.FindEffectiveDutyRate(ctx, day)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find effective duty rate", slog.Time("as_of", day))
		return nil, fmt.Errorf("failed to get current duty rate: %w", err)
	}

	s.LogDebug(ctx, "No duty rate recorded, using default", slog.Time("as_of", day))
	return &domain.DutyRate{
		Rate:          decimal.NewFromFloat(excise.DefaultDutyRate),
		DateEffective: day,
		Description:   "Default excise duty rate",
		IsDefault:     true,
	}, nil
}

// ListDutyRates retrieves all recorded rates, latest effective date first.
func (s *dutyRateService) ListDutyRates(ctx context.Context) ([]domain.DutyRate, error) {
	rates, err := s.rateRepo.ListDutyRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list duty rates")
		return nil, fmt.Errorf("failed to list duty rates: %w", err)
	}
	if rates == nil {
		return []domain.DutyRate{}, nil
	}
	return rates, nil
}
