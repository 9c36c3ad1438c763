package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/SscSPs/brew_notes_app/internal/utils/excise"
	"github.com/SscSPs/brew_notes_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultSubmissionPageSize = 20
	maxSubmissionPageSize     = 100
)

// exciseService implements the ExciseSvcFacade interface
type exciseService struct {
	BaseService
	submissionRepo portsrepo.SubmissionRepositoryFacade
}

// NewExciseService creates a new excise service with the provided options
func NewExciseService(repo portsrepo.SubmissionRepositoryFacade, options ...ServiceOption) portssvc.ExciseSvcFacade {
	svc := &exciseService{submissionRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.ExciseSvcFacade = (*exciseService)(nil)

// Calculate runs the excise pipeline for the live preview.
func (s *exciseService) Calculate(ctx context.Context, req dto.CalculateExciseRequest) (*dto.ExciseResultResponse, error) {
	m := req.ToMeasurement()
	entry := m.Entry()
	res := excise.Calculate(m)
	s.Metrics.ObserveCalculation(string(entry))

	s.LogDebug(ctx, "Excise calculated",
		slog.String("entry", string(entry)),
		slog.String("precise_lal", res.PreciseLAL),
		slog.Float64("duty_payable", res.DutyPayable))

	resp := dto.ToExciseResultResponse(entry, res)
	return &resp, nil
}

// Submit validates the calculator form and stores the result in the history.
func (s *exciseService) Submit(ctx context.Context, req dto.SubmitExciseRequest) (*domain.ExciseSubmission, error) {
	fields := make(map[string]string)
	checkNumber(fields, "size", "Total volume", req.Size)
	checkNumber(fields, "abv", "ABV%", req.ABV)
	checkNumber(fields, "exciseDutyRate", "Excise duty rate", req.ExciseDutyRate)

	batchDate, err := parseOptionalDate(req.BatchDate)
	if err != nil {
		fields["batchDate"] = fieldMessages["batchDate.datetime"]
	}
	if len(fields) > 0 {
		verr := apperrors.NewFieldValidationError(fields)
		s.LogWarn(ctx, "Excise submission failed validation", slog.String("error", verr.Error()))
		return nil, verr
	}

	rate := req.ExciseDutyRate
	m := dto.CalculateExciseRequest{Size: req.Size, ABV: req.ABV, ExciseDutyRate: &rate}.ToMeasurement()
	res := excise.Calculate(m)
	s.Metrics.ObserveCalculation(string(m.Entry()))

	submission := domain.ExciseSubmission{
		SubmissionID:   uuid.NewString(),
		ProductName:    strings.TrimSpace(req.ProductName),
		BatchDate:      batchDate,
		Size:           req.Size,
		ABV:            req.ABV,
		ExciseDutyRate: req.ExciseDutyRate,
		PreciseLAL:     res.PreciseLAL,
		TruncatedLAL:   res.TruncatedLAL,
		DutyPayable:    res.DutyPayable,
		SubmittedAt:    s.Now(),
	}

	if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
		s.LogError(ctx, err, "Failed to save excise submission", slog.String("submission_id", submission.SubmissionID))
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	s.Metrics.ObserveSubmission()

	historySize, err := s.submissionRepo.CountSubmissions(ctx)
	if err != nil {
		s.LogWarn(ctx, "Failed to count excise submissions", slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Excise submission recorded",
		slog.String("submission_id", submission.SubmissionID),
		slog.String("precise_lal", submission.PreciseLAL),
		slog.Float64("duty_payable", submission.DutyPayable),
		slog.Int("history_size", historySize))
	return &submission, nil
}

// ListSubmissions retrieves a page of the submission history, newest first.
func (s *exciseService) ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams) (*dto.ListSubmissionsResponse, error) {
	limit := pagination.ClampLimit(params.Limit, defaultSubmissionPageSize, maxSubmissionPageSize)

	subs, nextToken, err := s.submissionRepo.ListSubmissions(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list excise submissions")
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return &dto.ListSubmissionsResponse{
		Submissions: dto.ToSubmissionResponses(subs),
		NextToken:   nextToken,
	}, nil
}

// checkNumber records a message for name unless value is non-blank numeric text.
func checkNumber(fields map[string]string, name, label, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = label + " is required"
		return
	}
	if math.IsNaN(excise.ParseNumber(value)) {
		fields[name] = label + " must be a number"
	}
}
