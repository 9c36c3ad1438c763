package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BatchService ---
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) RecordBatch(ctx context.Context, req dto.RecordBatchRequest) (*domain.BatchNotes, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchNotes), args.Error(1)
}

func (m *MockBatchService) GetBatch(ctx context.Context, batchID string) (*domain.BatchNotes, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchNotes), args.Error(1)
}

func (m *MockBatchService) ListBatches(ctx context.Context) ([]domain.BatchNotes, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchNotes), args.Error(1)
}

// --- Mock ExciseService ---
type MockExciseService struct {
	mock.Mock
}

func (m *MockExciseService) Calculate(ctx context.Context, req dto.CalculateExciseRequest) (*dto.ExciseResultResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExciseResultResponse), args.Error(1)
}

func (m *MockExciseService) Submit(ctx context.Context, req dto.SubmitExciseRequest) (*domain.ExciseSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExciseSubmission), args.Error(1)
}

func (m *MockExciseService) ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams) (*dto.ListSubmissionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSubmissionsResponse), args.Error(1)
}

// --- Mock DutyRateService ---
type MockDutyRateService struct {
	mock.Mock
}

func (m *MockDutyRateService) CreateDutyRate(ctx context.Context, req dto.CreateDutyRateRequest) (*domain.DutyRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyRate), args.Error(1)
}

func (m *MockDutyRateService) GetCurrentDutyRate(ctx context.Context, asOf time.Time) (*domain.DutyRate, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyRate), args.Error(1)
}

func (m *MockDutyRateService) ListDutyRates(ctx context.Context) ([]domain.DutyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DutyRate), args.Error(1)
}
