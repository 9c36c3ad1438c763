package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestCreateDutyRate() {
	effective := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	suite.mockDutyRate.On("CreateDutyRate", mock.Anything, mock.MatchedBy(func(req dto.CreateDutyRateRequest) bool {
		return req.Rate != nil && req.Rate.Equal(decimal.RequireFromString("57.79")) && req.DateEffective == "2025-02-03"
	})).Return(&domain.DutyRate{
		DutyRateID:    "rate-1",
		Rate:          decimal.RequireFromString("57.79"),
		DateEffective: effective,
		CreatedAt:     effective,
	}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/duty-rates", `{"rate":"57.79","dateEffective":"2025-02-03"}`)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.DutyRateResponse
	suite.decode(w, &resp)
	suite.Equal("rate-1", resp.DutyRateID)
	suite.Equal("2025-02-03", resp.DateEffective)
	suite.False(resp.IsDefault)
}

func (suite *HandlersTestSuite) TestCreateDutyRate_Validation() {
	suite.mockDutyRate.On("CreateDutyRate", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewFieldValidationError(map[string]string{"rate": "Excise duty rate cannot be negative"})).Once()

	w := suite.doJSON(http.MethodPost, "/duty-rates", `{"rate":"-1","dateEffective":"2025-02-03"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Excise duty rate cannot be negative")
}

func (suite *HandlersTestSuite) TestGetCurrentDutyRate_AsOf() {
	asOf := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	suite.mockDutyRate.On("GetCurrentDutyRate", mock.Anything, asOf).Return(&domain.DutyRate{
		Rate:          decimal.RequireFromString("57.79"),
		DateEffective: asOf,
		Description:   "Default excise duty rate",
		IsDefault:     true,
	}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/duty-rates/current?asOf=2025-02-03", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.DutyRateResponse
	suite.decode(w, &resp)
	suite.True(resp.IsDefault)
	suite.Equal("57.79", resp.Rate.String())
	suite.Empty(resp.DutyRateID)
	suite.Nil(resp.CreatedAt)
}

func (suite *HandlersTestSuite) TestGetCurrentDutyRate_BadDate() {
	w := suite.doJSON(http.MethodGet, "/duty-rates/current?asOf=03/02/2025", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDutyRate.AssertNotCalled(suite.T(), "GetCurrentDutyRate", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListDutyRates() {
	suite.mockDutyRate.On("ListDutyRates", mock.Anything).Return([]domain.DutyRate{
		{DutyRateID: "r2", Rate: decimal.RequireFromString("57.79")},
		{DutyRateID: "r1", Rate: decimal.RequireFromString("56.14")},
	}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/duty-rates", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.DutyRateResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 2)
	suite.Equal("r2", resp[0].DutyRateID)
}
