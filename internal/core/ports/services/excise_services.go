package services

import (
	"context"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/dto"
)

// ExciseCalculatorSvc defines the live calculation used by the calculator preview
type ExciseCalculatorSvc interface {
	// Calculate runs the excise pipeline on text inputs. It never fails on bad input;
	// unparsable values degrade to zero figures.
	Calculate(ctx context.Context, req dto.CalculateExciseRequest) (*dto.ExciseResultResponse, error)
}

// ExciseSubmissionSvc defines operations on the calculator submission history
type ExciseSubmissionSvc interface {
	// Submit validates the calculator form and stores the result at the front of the history.
	Submit(ctx context.Context, req dto.SubmitExciseRequest) (*domain.ExciseSubmission, error)

	// ListSubmissions retrieves a page of the history, newest first.
	ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams) (*dto.ListSubmissionsResponse, error)
}

// ExciseSvcFacade combines all excise-related service interfaces
type ExciseSvcFacade interface {
	ExciseCalculatorSvc
	ExciseSubmissionSvc
}
