package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock BatchRepository ---
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) SaveBatch(ctx context.Context, batch domain.BatchNotes) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.BatchNotes, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchNotes), args.Error(1)
}

func (m *MockBatchRepository) ListBatches(ctx context.Context) ([]domain.BatchNotes, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchNotes), args.Error(1)
}

// --- Mock SubmissionRepository ---
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.ExciseSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) CountSubmissions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSubmissionRepository) ListSubmissions(ctx context.Context, limit int, nextToken *string) ([]domain.ExciseSubmission, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var subs []domain.ExciseSubmission
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.ExciseSubmission)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return subs, next, args.Error(2)
}

// --- Mock DutyRateRepository ---
type MockDutyRateRepository struct {
	mock.Mock
}

func (m *MockDutyRateRepository) SaveDutyRate(ctx context.Context, rate domain.DutyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockDutyRateRepository) FindEffectiveDutyRate(ctx context.Context, asOf time.Time) (*domain.DutyRate, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyRate), args.Error(1)
}

func (m *MockDutyRateRepository) ListDutyRates(ctx context.Context) ([]domain.DutyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DutyRate), args.Error(1)
}

var fixedNow = time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func float(v float64) *float64 {
	return &v
}
