package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/SscSPs/brew_notes_app/internal/utils/excise"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// batchService implements the BatchSvcFacade interface
type batchService struct {
	BaseService
	batchRepo portsrepo.BatchRepositoryFacade
}

// NewBatchService creates a new batch service with the provided options
func NewBatchService(repo portsrepo.BatchRepositoryFacade, options ...ServiceOption) portssvc.BatchSvcFacade {
	svc := &batchService{batchRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.BatchSvcFacade = (*batchService)(nil)

// RecordBatch validates the brew notes and stores the batch with server-derived duty figures.
func (s *batchService) RecordBatch(ctx context.Context, req dto.RecordBatchRequest) (*domain.BatchNotes, error) {
	if err := validateStruct(req); err != nil {
		s.LogWarn(ctx, "Batch failed validation", slog.String("error", err.Error()))
		return nil, err
	}

	m := excise.Measurement{
		OriginalGravity:      req.OriginalGravity,
		FinalGravity:         req.FinalGravity,
		ABVPercent:           req.ABVPercent,
		PackagedVolumeLitres: req.PackagedLitres,
		ExciseRate:           req.ExciseDutyRate,
	}
	entry := m.Entry()
	if entry == excise.EntryNone {
		return nil, apperrors.NewFieldValidationError(map[string]string{
			"abv": "Enter ABV% or both OG and FG",
		})
	}

	res := excise.Calculate(m)
	s.Metrics.ObserveCalculation(string(entry))

	// A derived ABV goes through the same bounds as an entered one.
	if res.ABVPercent < 0 {
		return nil, apperrors.NewFieldValidationError(map[string]string{"abv": fieldMessages["abv.gte"]})
	}
	if res.ABVPercent > 100 {
		return nil, apperrors.NewFieldValidationError(map[string]string{"abv": fieldMessages["abv.lte"]})
	}

	batchDate, err := parseOptionalDate(req.BatchDate)
	if err != nil {
		return nil, apperrors.NewFieldValidationError(map[string]string{"batchDate": fieldMessages["batchDate.datetime"]})
	}

	if res.TruncatedLAL < 0 {
		s.LogWarn(ctx, "ABV is below the LAL allowance, recording negative LAL",
			slog.Float64("abv", res.ABVPercent),
			slog.Float64("truncated_lal", res.TruncatedLAL))
	}

	batch := domain.BatchNotes{
		BatchID:           uuid.NewString(),
		ProductName:       req.ProductName,
		BatchDate:         batchDate,
		OriginalGravity:   req.OriginalGravity,
		FinalGravity:      req.FinalGravity,
		ABVPercent:        res.ABVPercent,
		PackagedLitres:    req.PackagedLitres,
		Ingredients:       req.Ingredients,
		MashTempC:         req.MashTempC,
		BoilTimeMins:      req.BoilTimeMins,
		FermentationTempC: req.FermentationTempC,
		Yeast:             req.Yeast,
		Notes:             req.Notes,
		ExciseDutyRate:    decimal.NewFromFloat(res.RateApplied),
		PreciseLAL:        res.PreciseLAL,
		TruncatedLAL:      res.TruncatedLAL,
		DutyPayable:       decimal.NewFromFloat(res.DutyPayable),
		CreatedAt:         s.Now(),
	}

	if err := s.batchRepo.SaveBatch(ctx, batch); err != nil {
		s.LogError(ctx, err, "Failed to save batch", slog.String("batch_id", batch.BatchID))
		return nil, fmt.Errorf("failed to record batch: %w", err)
	}
	s.Metrics.ObserveBatchRecorded()

	s.LogInfo(ctx, "Batch recorded",
		slog.String("batch_id", batch.BatchID),
		slog.String("entry", string(entry)),
		slog.String("duty_payable", batch.DutyPayable.StringFixed(2)))
	return &batch, nil
}

// GetBatch retrieves a batch by ID.
func (s *batchService) GetBatch(ctx context.Context, batchID string) (*domain.BatchNotes, error) {
	batch, err := s.batchRepo.FindBatchByID(ctx, batchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find batch", slog.String("batch_id", batchID))
		}
		return nil, err
	}
	return batch, nil
}

// ListBatches retrieves all recorded batches, newest first.
func (s *batchService) ListBatches(ctx context.Context) ([]domain.BatchNotes, error) {
	batches, err := s.batchRepo.ListBatches(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list batches")
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	if batches == nil {
		return []domain.BatchNotes{}, nil
	}
	return batches, nil
}
