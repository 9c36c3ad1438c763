package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DutyRate is an excise duty rate in AUD per litre of alcohol, effective from a calendar date.
type DutyRate struct {
	DutyRateID    string          `json:"dutyRateID"`
	Rate          decimal.Decimal `json:"rate"`
	DateEffective time.Time       `json:"dateEffective"`
	Description   string          `json:"description,omitempty"`
	// IsDefault marks a rate synthesised from the built-in default rather than recorded.
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}
