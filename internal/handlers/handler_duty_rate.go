package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/SscSPs/brew_notes_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dutyRateHandler struct {
	dutyRateService portssvc.DutyRateSvcFacade
}

func newDutyRateHandler(ds portssvc.DutyRateSvcFacade) *dutyRateHandler {
	return &dutyRateHandler{dutyRateService: ds}
}

// registerDutyRateRoutes registers routes related to excise duty rates.
func registerDutyRateRoutes(r gin.IRouter, dutyRateService portssvc.DutyRateSvcFacade, writeGuards ...gin.HandlerFunc) {
	h := newDutyRateHandler(dutyRateService)

	rates := r.Group("/duty-rates")
	{
		rates.GET("", h.listDutyRates)
		rates.GET("/current", h.getCurrentDutyRate)
		rates.Group("", writeGuards...).POST("", h.createDutyRate)
	}
}

// createDutyRate godoc
// @Summary Record an excise duty rate
// @Description Records the rate (AUD per litre of alcohol) effective from a date. A rate for the same date is replaced.
// @Tags duty-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateDutyRateRequest true "Duty rate"
// @Success 201 {object} dto.DutyRateResponse
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to create duty rate"
// @Router /duty-rates [post]
func (h *dutyRateHandler) createDutyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDutyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDutyRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.dutyRateService.CreateDutyRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create duty rate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDutyRateResponse(rate))
}

// getCurrentDutyRate godoc
// @Summary Get the current excise duty rate
// @Description Retrieves the rate effective on asOf (default today). Falls back to the default rate of 57.79 when none is recorded.
// @Tags duty-rates
// @Produce  json
// @Param   asOf query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DutyRateResponse
// @Failure 400 {object} map[string]string "Invalid asOf date"
// @Failure 500 {object} map[string]string "Failed to get current duty rate"
// @Router /duty-rates/current [get]
func (h *dutyRateHandler) getCurrentDutyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now().UTC()
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		parsed, err := time.Parse(domain.DateLayout, asOfStr)
		if err != nil {
			logger.Warn("Invalid asOf date", slog.String("as_of", asOfStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	rate, err := h.dutyRateService.GetCurrentDutyRate(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to get current duty rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToDutyRateResponse(rate))
}

// listDutyRates godoc
// @Summary List excise duty rates
// @Description Retrieves all recorded rates, latest effective date first
// @Tags duty-rates
// @Produce  json
// @Success 200 {array} dto.DutyRateResponse
// @Failure 500 {object} map[string]string "Failed to list duty rates"
// @Router /duty-rates [get]
func (h *dutyRateHandler) listDutyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.dutyRateService.ListDutyRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list duty rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDutyRateResponse(rates))
}
