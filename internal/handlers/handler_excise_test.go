package handlers_test

import (
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestCalculate_Success() {
	expected := &dto.ExciseResultResponse{
		Entry:               "abv",
		ABVPercent:          5.25,
		PreciseLAL:          "3.49",
		TruncatedLAL:        3.4,
		TruncatedLALDisplay: "3.4",
		DutyPayable:         196.48,
		DutyPayableDisplay:  "196.48",
		RateApplied:         57.79,
	}
	suite.mockExcise.On("Calculate", mock.Anything, dto.CalculateExciseRequest{Size: "85.2", ABV: "5.25"}).Return(expected, nil).Once()

	w := suite.doJSON(http.MethodPost, "/excise/calculate", map[string]string{"size": "85.2", "abv": "5.25"})

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ExciseResultResponse
	suite.decode(w, &resp)
	suite.Equal(*expected, resp)
}

func (suite *HandlersTestSuite) TestCalculate_ExplicitRateIsPassedThrough() {
	suite.mockExcise.On("Calculate", mock.Anything, mock.MatchedBy(func(req dto.CalculateExciseRequest) bool {
		return req.ExciseDutyRate != nil && *req.ExciseDutyRate == ""
	})).Return(&dto.ExciseResultResponse{PreciseLAL: "3.49", DutyPayableDisplay: "0.00"}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/excise/calculate", `{"size":"85.2","abv":"5.25","exciseDutyRate":""}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestCalculate_InvalidJSON() {
	w := suite.doJSON(http.MethodPost, "/excise/calculate", `{"size":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
}

func (suite *HandlersTestSuite) TestSubmit_JSONCreated() {
	req := dto.SubmitExciseRequest{Size: "85.2", ABV: "5.25", ExciseDutyRate: "57.79", ProductName: "Stout Beer"}
	suite.mockExcise.On("Submit", mock.Anything, req).Return(&domain.ExciseSubmission{
		SubmissionID:   "sub-1",
		ProductName:    "Stout Beer",
		Size:           "85.2",
		ABV:            "5.25",
		ExciseDutyRate: "57.79",
		PreciseLAL:     "3.49",
		TruncatedLAL:   3.4,
		DutyPayable:    196.48,
		SubmittedAt:    time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC),
	}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/excise/submissions", req)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.SubmissionResponse
	suite.decode(w, &resp)
	suite.Equal("sub-1", resp.SubmissionID)
	suite.Equal("3.4", resp.TruncatedLALDisplay)
	suite.Equal("196.48", resp.DutyPayableDisplay)
	suite.Nil(resp.BatchDate)
}

func (suite *HandlersTestSuite) TestSubmit_JSONValidation() {
	fields := map[string]string{"size": "Total volume is required", "abv": "ABV% must be a number"}
	suite.mockExcise.On("Submit", mock.Anything, mock.Anything).Return(nil, apperrors.NewFieldValidationError(fields)).Once()

	w := suite.doJSON(http.MethodPost, "/excise/submissions", dto.SubmitExciseRequest{ABV: "five", ExciseDutyRate: "57.79"})

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	suite.decode(w, &resp)
	suite.Equal("invalid input: abv, size", resp.Error)
	suite.Equal(fields, resp.Fields)
}

func (suite *HandlersTestSuite) TestSubmit_JSONStoreFailure() {
	suite.mockExcise.On("Submit", mock.Anything, mock.Anything).Return(nil, errStoreUnavailable).Once()

	w := suite.doJSON(http.MethodPost, "/excise/submissions", dto.SubmitExciseRequest{Size: "1", ABV: "5", ExciseDutyRate: "57.79"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to submit calculation"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestSubmit_FormRedirects() {
	expectedReq := dto.SubmitExciseRequest{Size: "85.2", ABV: "5.25", ExciseDutyRate: "57.79", BatchDate: "2025-06-01"}
	suite.mockExcise.On("Submit", mock.Anything, expectedReq).Return(&domain.ExciseSubmission{SubmissionID: "sub-1"}, nil).Once()

	w := suite.postForm("/excise/submissions", url.Values{
		"size":           {"85.2"},
		"abv":            {"5.25"},
		"exciseDutyRate": {"57.79"},
		"productName":    {""},
		"batchDate":      {"2025-06-01"},
	})

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Equal("/#excise-calculator", w.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestSubmit_FormValidationRerendersPage() {
	fields := map[string]string{"abv": "ABV% must be a number"}
	suite.mockExcise.On("Submit", mock.Anything, mock.Anything).Return(nil, apperrors.NewFieldValidationError(fields)).Once()
	suite.expectPage(nil, nil)

	w := suite.postForm("/excise/submissions", url.Values{"size": {"85.2"}, "abv": {"five"}, "exciseDutyRate": {"57.79"}})

	suite.Equal(http.StatusBadRequest, w.Code)
	body := w.Body.String()
	suite.Contains(body, "ABV% must be a number")
	suite.Contains(body, `value="five"`)
	suite.Contains(body, `value="85.2"`)
	suite.Contains(body, `aria-invalid="true"`)
}

func (suite *HandlersTestSuite) TestListSubmissions() {
	token := "next"
	suite.mockExcise.On("ListSubmissions", mock.Anything, dto.ListSubmissionsParams{Limit: 5, NextToken: &token}).
		Return(&dto.ListSubmissionsResponse{
			Submissions: []dto.SubmissionResponse{{SubmissionID: "sub-2"}},
			NextToken:   &token,
		}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/excise/submissions?limit=5&nextToken=next", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListSubmissionsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Submissions, 1)
	suite.Equal("next", *resp.NextToken)
}

func (suite *HandlersTestSuite) TestListSubmissions_BadLimit() {
	w := suite.doJSON(http.MethodGet, "/excise/submissions?limit=many", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExcise.AssertNotCalled(suite.T(), "ListSubmissions", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListSubmissions_BadToken() {
	suite.mockExcise.On("ListSubmissions", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errStoreUnavailable)).Once()

	w := suite.doJSON(http.MethodGet, "/excise/submissions?nextToken=zzz", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"invalid nextToken"}`, w.Body.String())
}
