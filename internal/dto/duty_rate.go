package dto

import (
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDutyRateRequest defines the structure for recording a duty rate.
type CreateDutyRateRequest struct {
	Rate          *decimal.Decimal `json:"rate" validate:"required"`
	DateEffective string           `json:"dateEffective" validate:"required,datetime=2006-01-02"`
	Description   string           `json:"description"`
}

// DutyRateResponse defines the structure for API responses containing duty rate details.
type DutyRateResponse struct {
	DutyRateID    string          `json:"dutyRateID,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
	DateEffective string          `json:"dateEffective"`
	Description   string          `json:"description,omitempty"`
	IsDefault     bool            `json:"isDefault"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
}

// ToDutyRateResponse converts a domain.DutyRate to DutyRateResponse DTO.
func ToDutyRateResponse(rate *domain.DutyRate) DutyRateResponse {
	resp := DutyRateResponse{
		DutyRateID:    rate.DutyRateID,
		Rate:          rate.Rate,
		DateEffective: rate.DateEffective.Format(domain.DateLayout),
		Description:   rate.Description,
		IsDefault:     rate.IsDefault,
	}
	if !rate.CreatedAt.IsZero() {
		createdAt := rate.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ToListDutyRateResponse converts a slice of domain.DutyRate to a slice of DutyRateResponse DTOs.
func ToListDutyRateResponse(rates []domain.DutyRate) []DutyRateResponse {
	responses := make([]DutyRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToDutyRateResponse(&rates[i])
	}
	return responses
}
