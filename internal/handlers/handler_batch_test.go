package handlers_test

import (
	"net/http"
	"net/url"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func stoutBatch() *domain.BatchNotes {
	og, fg := 1.050, 1.010
	return &domain.BatchNotes{
		BatchID:         "batch-1",
		ProductName:     "Stout",
		OriginalGravity: &og,
		FinalGravity:    &fg,
		ABVPercent:      5.25,
		PackagedLitres:  85.2,
		ExciseDutyRate:  decimal.RequireFromString("57.79"),
		PreciseLAL:      "3.49",
		TruncatedLAL:    3.4,
		DutyPayable:     decimal.RequireFromString("196.48"),
	}
}

func (suite *HandlersTestSuite) TestRecordBatch_JSONCreated() {
	suite.mockBatch.On("RecordBatch", mock.Anything, mock.MatchedBy(func(req dto.RecordBatchRequest) bool {
		return req.ProductName == "Stout" && req.OriginalGravity != nil && *req.OriginalGravity == 1.050 &&
			req.ABVPercent == nil && req.PackagedLitres == 85.2
	})).Return(stoutBatch(), nil).Once()

	w := suite.doJSON(http.MethodPost, "/batches", `{"productName":"Stout","og":1.050,"fg":1.010,"packagedLitres":85.2}`)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.BatchResponse
	suite.decode(w, &resp)
	suite.Equal("batch-1", resp.BatchID)
	suite.Equal("3.49", resp.PreciseLAL)
	suite.Equal("3.4", resp.TruncatedLALDisplay)
	suite.True(decimal.RequireFromString("196.48").Equal(resp.DutyPayable))
}

func (suite *HandlersTestSuite) TestRecordBatch_JSONValidation() {
	suite.mockBatch.On("RecordBatch", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewFieldValidationError(map[string]string{"og": "OG must be at least 1.000"})).Once()

	w := suite.doJSON(http.MethodPost, "/batches", `{"productName":"Stout","og":0.9,"fg":1.010,"packagedLitres":85.2}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"invalid input: og","fields":{"og":"OG must be at least 1.000"}}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestRecordBatch_JSONWrongType() {
	w := suite.doJSON(http.MethodPost, "/batches", `{"productName":"Stout","og":"high"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBatch.AssertNotCalled(suite.T(), "RecordBatch", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRecordBatch_FormRedirects() {
	suite.mockBatch.On("RecordBatch", mock.Anything, mock.MatchedBy(func(req dto.RecordBatchRequest) bool {
		return req.ProductName == "Mango Sour" && req.ABVPercent != nil && *req.ABVPercent == 5 &&
			req.OriginalGravity == nil && req.ExciseDutyRate == nil && req.PackagedLitres == 20
	})).Return(stoutBatch(), nil).Once()

	w := suite.postForm("/batches", url.Values{
		"productName":    {"Mango Sour"},
		"og":             {""},
		"abv":            {"5"},
		"packagedLitres": {"20"},
		"exciseDutyRate": {""},
	})

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Equal("/#batches", w.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestRecordBatch_FormValidationRerendersPage() {
	suite.mockBatch.On("RecordBatch", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewFieldValidationError(map[string]string{"productName": "Product name is required"})).Once()
	suite.expectPage(nil, nil)

	w := suite.postForm("/batches", url.Values{"abv": {"5"}, "packagedLitres": {"20"}, "yeast": {"US-05"}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Product name is required")
	suite.Contains(w.Body.String(), `value="US-05"`)
}

func (suite *HandlersTestSuite) TestGetBatch() {
	suite.mockBatch.On("GetBatch", mock.Anything, "batch-1").Return(stoutBatch(), nil).Once()

	w := suite.doJSON(http.MethodGet, "/batches/batch-1", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.BatchResponse
	suite.decode(w, &resp)
	suite.Equal("Stout", resp.ProductName)
}

func (suite *HandlersTestSuite) TestGetBatch_NotFound() {
	suite.mockBatch.On("GetBatch", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("batch not found")).Once()

	w := suite.doJSON(http.MethodGet, "/batches/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"batch not found"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListBatches() {
	suite.mockBatch.On("ListBatches", mock.Anything).Return([]domain.BatchNotes{*stoutBatch()}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/batches", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.BatchResponse
	suite.decode(w, &resp)
	suite.Len(resp, 1)
}

func (suite *HandlersTestSuite) TestListBatches_Failure() {
	suite.mockBatch.On("ListBatches", mock.Anything).Return(nil, errStoreUnavailable).Once()

	w := suite.doJSON(http.MethodGet, "/batches", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to list batches"}`, w.Body.String())
}
