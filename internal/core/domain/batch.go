package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchNotes represents one brewed and packaged batch recorded from the brew notes form.
// Gravity readings are optional because ABV may be entered directly.
type BatchNotes struct {
	BatchID           string          `json:"batchID"`
	ProductName       string          `json:"productName"`
	BatchDate         *time.Time      `json:"batchDate,omitempty"`
	OriginalGravity   *float64        `json:"og,omitempty"`
	FinalGravity      *float64        `json:"fg,omitempty"`
	ABVPercent        float64         `json:"abv"`
	PackagedLitres    float64         `json:"packagedLitres"`
	Ingredients       string          `json:"ingredients,omitempty"`
	MashTempC         *float64        `json:"mashTempC,omitempty"`
	BoilTimeMins      *float64        `json:"boilTimeMins,omitempty"`
	FermentationTempC *float64        `json:"fermentationTempC,omitempty"`
	Yeast             string          `json:"yeast,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	ExciseDutyRate    decimal.Decimal `json:"exciseDutyRate"` // AUD per litre of alcohol

	PreciseLAL   string          `json:"preciseLal"`   // e.g. "3.49"
	TruncatedLAL float64         `json:"truncatedLal"` // truncated to 1 dp
	DutyPayable  decimal.Decimal `json:"dutyPayable"`  // truncated to 2 dp

	CreatedAt time.Time `json:"createdAt"`
}
