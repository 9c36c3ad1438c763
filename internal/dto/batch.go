package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/utils/excise"
	"github.com/shopspring/decimal"
)

// RecordBatchRequest defines the brew notes for a new batch.
// Either abv or both og and fg must be given. Duty figures are always derived server side.
type RecordBatchRequest struct {
	ProductName       string   `json:"productName" validate:"required"`
	BatchDate         string   `json:"batchDate" validate:"omitempty,datetime=2006-01-02"`
	OriginalGravity   *float64 `json:"og" validate:"omitempty,gte=1,lte=1.2"`
	FinalGravity      *float64 `json:"fg" validate:"omitempty,gte=1,lte=1.2"`
	ABVPercent        *float64 `json:"abv" validate:"omitempty,gte=0,lte=100"`
	PackagedLitres    float64  `json:"packagedLitres" validate:"gte=0.1"`
	Ingredients       string   `json:"ingredients"`
	MashTempC         *float64 `json:"mashTempC" validate:"omitempty,gte=0"`
	BoilTimeMins      *float64 `json:"boilTimeMins" validate:"omitempty,gte=0"`
	FermentationTempC *float64 `json:"fermentationTempC" validate:"omitempty,gte=0"`
	Yeast             string   `json:"yeast"`
	Notes             string   `json:"notes"`
	ExciseDutyRate    *float64 `json:"exciseDutyRate" validate:"omitempty,gte=0"`
}

// RecordBatchForm is the HTML form variant of RecordBatchRequest.
// Every field arrives as text so that blank inputs can be told apart from zero.
type RecordBatchForm struct {
	ProductName       string `form:"productName"`
	BatchDate         string `form:"batchDate"`
	OriginalGravity   string `form:"og"`
	FinalGravity      string `form:"fg"`
	ABVPercent        string `form:"abv"`
	PackagedLitres    string `form:"packagedLitres"`
	Ingredients       string `form:"ingredients"`
	MashTempC         string `form:"mashTempC"`
	BoilTimeMins      string `form:"boilTimeMins"`
	FermentationTempC string `form:"fermentationTempC"`
	Yeast             string `form:"yeast"`
	Notes             string `form:"notes"`
	ExciseDutyRate    string `form:"exciseDutyRate"`
}

// ToRequest converts the form text into a RecordBatchRequest.
func (f RecordBatchForm) ToRequest() RecordBatchRequest {
	req := RecordBatchRequest{
		ProductName:       strings.TrimSpace(f.ProductName),
		BatchDate:         strings.TrimSpace(f.BatchDate),
		OriginalGravity:   optionalNumber(f.OriginalGravity),
		FinalGravity:      optionalNumber(f.FinalGravity),
		ABVPercent:        optionalNumber(f.ABVPercent),
		Ingredients:       f.Ingredients,
		MashTempC:         optionalNumber(f.MashTempC),
		BoilTimeMins:      optionalNumber(f.BoilTimeMins),
		FermentationTempC: optionalNumber(f.FermentationTempC),
		Yeast:             f.Yeast,
		Notes:             f.Notes,
		ExciseDutyRate:    optionalNumber(f.ExciseDutyRate),
	}
	if strings.TrimSpace(f.PackagedLitres) != "" {
		req.PackagedLitres = excise.ParseNumber(f.PackagedLitres)
	}
	return req
}

// BatchResponse defines the data returned for a recorded batch.
type BatchResponse struct {
	BatchID             string          `json:"batchID"`
	ProductName         string          `json:"productName"`
	BatchDate           *time.Time      `json:"batchDate,omitempty"`
	OriginalGravity     *float64        `json:"og,omitempty"`
	FinalGravity        *float64        `json:"fg,omitempty"`
	ABVPercent          float64         `json:"abv"`
	PackagedLitres      float64         `json:"packagedLitres"`
	Ingredients         string          `json:"ingredients,omitempty"`
	MashTempC           *float64        `json:"mashTempC,omitempty"`
	BoilTimeMins        *float64        `json:"boilTimeMins,omitempty"`
	FermentationTempC   *float64        `json:"fermentationTempC,omitempty"`
	Yeast               string          `json:"yeast,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	ExciseDutyRate      decimal.Decimal `json:"exciseDutyRate"`
	PreciseLAL          string          `json:"preciseLal"`
	TruncatedLAL        float64         `json:"truncatedLal"`
	TruncatedLALDisplay string          `json:"truncatedLalDisplay"`
	DutyPayable         decimal.Decimal `json:"dutyPayable"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ToBatchResponse converts a domain.BatchNotes to BatchResponse DTO.
func ToBatchResponse(b *domain.BatchNotes) BatchResponse {
	return BatchResponse{
		BatchID:             b.BatchID,
		ProductName:         b.ProductName,
		BatchDate:           b.BatchDate,
		OriginalGravity:     b.OriginalGravity,
		FinalGravity:        b.FinalGravity,
		ABVPercent:          b.ABVPercent,
		PackagedLitres:      b.PackagedLitres,
		Ingredients:         b.Ingredients,
		MashTempC:           b.MashTempC,
		BoilTimeMins:        b.BoilTimeMins,
		FermentationTempC:   b.FermentationTempC,
		Yeast:               b.Yeast,
		Notes:               b.Notes,
		ExciseDutyRate:      b.ExciseDutyRate,
		PreciseLAL:          b.PreciseLAL,
		TruncatedLAL:        b.TruncatedLAL,
		TruncatedLALDisplay: excise.FormatLAL(b.TruncatedLAL),
		DutyPayable:         b.DutyPayable,
		CreatedAt:           b.CreatedAt,
	}
}

// ToListBatchResponse converts a slice of domain.BatchNotes to []BatchResponse.
func ToListBatchResponse(batches []domain.BatchNotes) []BatchResponse {
	res := make([]BatchResponse, len(batches))
	for i := range batches {
		res[i] = ToBatchResponse(&batches[i])
	}
	return res
}
