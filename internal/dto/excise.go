package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/utils/excise"
)

// CalculateExciseRequest carries the calculator inputs as typed text.
// Blank OG, FG and ABV count as not supplied. A missing exciseDutyRate uses the default rate,
// while a present but blank one yields zero duty.
type CalculateExciseRequest struct {
	OriginalGravity string  `json:"og" form:"og"`
	FinalGravity    string  `json:"fg" form:"fg"`
	ABV             string  `json:"abv" form:"abv"`
	Size            string  `json:"size" form:"size"`
	ExciseDutyRate  *string `json:"exciseDutyRate" form:"exciseDutyRate"`
}

// ToMeasurement converts the text inputs into calculator readings.
func (r CalculateExciseRequest) ToMeasurement() excise.Measurement {
	m := excise.Measurement{
		OriginalGravity:      optionalNumber(r.OriginalGravity),
		FinalGravity:         optionalNumber(r.FinalGravity),
		ABVPercent:           optionalNumber(r.ABV),
		PackagedVolumeLitres: excise.ParseNumber(r.Size),
	}
	if r.ExciseDutyRate != nil {
		rate := excise.ParseNumber(*r.ExciseDutyRate)
		m.ExciseRate = &rate
	}
	return m
}

func optionalNumber(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := excise.ParseNumber(s)
	return &v
}

// ExciseResultResponse defines the data returned for a calculation.
type ExciseResultResponse struct {
	Entry               string  `json:"entry"`
	ABVPercent          float64 `json:"abv"`
	PreciseLAL          string  `json:"preciseLal"`
	TruncatedLAL        float64 `json:"truncatedLal"`
	TruncatedLALDisplay string  `json:"truncatedLalDisplay"`
	DutyPayable         float64 `json:"dutyPayable"`
	DutyPayableDisplay  string  `json:"dutyPayableDisplay"`
	RateApplied         float64 `json:"rateApplied"`
}

// ToExciseResultResponse converts a calculator result to ExciseResultResponse DTO.
func ToExciseResultResponse(entry excise.Entry, res excise.Result) ExciseResultResponse {
	return ExciseResultResponse{
		Entry:               string(entry),
		ABVPercent:          res.ABVPercent,
		PreciseLAL:          res.PreciseLAL,
		TruncatedLAL:        res.TruncatedLAL,
		TruncatedLALDisplay: excise.FormatLAL(res.TruncatedLAL),
		DutyPayable:         res.DutyPayable,
		DutyPayableDisplay:  excise.FormatAmount(res.DutyPayable),
		RateApplied:         res.RateApplied,
	}
}

// SubmitExciseRequest defines the excise calculator form submission.
// Size, ABV and rate are kept as entered; batchDate uses YYYY-MM-DD.
type SubmitExciseRequest struct {
	Size           string `json:"size" form:"size"`
	ABV            string `json:"abv" form:"abv"`
	ExciseDutyRate string `json:"exciseDutyRate" form:"exciseDutyRate"`
	ProductName    string `json:"productName" form:"productName"`
	BatchDate      string `json:"batchDate" form:"batchDate"`
}

// SubmissionResponse defines the data returned for a stored submission.
type SubmissionResponse struct {
	SubmissionID        string     `json:"submissionID"`
	ProductName         string     `json:"productName"`
	BatchDate           *time.Time `json:"batchDate,omitempty"`
	Size                string     `json:"size"`
	ABV                 string     `json:"abv"`
	ExciseDutyRate      string     `json:"exciseDutyRate"`
	PreciseLAL          string     `json:"preciseLal"`
	TruncatedLAL        float64    `json:"truncatedLal"`
	TruncatedLALDisplay string     `json:"truncatedLalDisplay"`
	DutyPayable         float64    `json:"dutyPayable"`
	DutyPayableDisplay  string     `json:"dutyPayableDisplay"`
	SubmittedAt         time.Time  `json:"submittedAt"`
}

// ToSubmissionResponse converts a domain.ExciseSubmission to SubmissionResponse DTO.
func ToSubmissionResponse(s *domain.ExciseSubmission) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:        s.SubmissionID,
		ProductName:         s.ProductName,
		BatchDate:           s.BatchDate,
		Size:                s.Size,
		ABV:                 s.ABV,
		ExciseDutyRate:      s.ExciseDutyRate,
		PreciseLAL:          s.PreciseLAL,
		TruncatedLAL:        s.TruncatedLAL,
		TruncatedLALDisplay: excise.FormatLAL(s.TruncatedLAL),
		DutyPayable:         s.DutyPayable,
		DutyPayableDisplay:  excise.FormatAmount(s.DutyPayable),
		SubmittedAt:         s.SubmittedAt,
	}
}

// ToSubmissionResponses converts a slice of domain.ExciseSubmission to []SubmissionResponse.
func ToSubmissionResponses(subs []domain.ExciseSubmission) []SubmissionResponse {
	responses := make([]SubmissionResponse, len(subs))
	for i := range subs {
		responses[i] = ToSubmissionResponse(&subs[i])
	}
	return responses
}

// ListSubmissionsParams holds query parameters for listing submissions.
type ListSubmissionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListSubmissionsResponse wraps a page of submissions and the token for the next page.
type ListSubmissionsResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	NextToken   *string              `json:"nextToken,omitempty"`
}
