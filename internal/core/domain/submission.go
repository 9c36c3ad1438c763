package domain

import "time"

// ExciseSubmission is one captured result of the excise calculator.
// Size, ABV and ExciseDutyRate keep the text exactly as it was entered.
type ExciseSubmission struct {
	SubmissionID   string     `json:"submissionID"`
	ProductName    string     `json:"productName"`
	BatchDate      *time.Time `json:"batchDate,omitempty"`
	Size           string     `json:"size"`
	ABV            string     `json:"abv"`
	ExciseDutyRate string     `json:"exciseDutyRate"`
	PreciseLAL     string     `json:"preciseLal"`
	TruncatedLAL   float64    `json:"truncatedLal"`
	DutyPayable    float64    `json:"dutyPayable"`
	SubmittedAt    time.Time  `json:"submittedAt"`
}

