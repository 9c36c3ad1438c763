package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/SscSPs/brew_notes_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// exciseHandler handles HTTP requests for the excise calculator.
type exciseHandler struct {
	exciseService portssvc.ExciseSvcFacade
	home          *homeHandler
}

// newExciseHandler creates a new exciseHandler.
func newExciseHandler(es portssvc.ExciseSvcFacade, home *homeHandler) *exciseHandler {
	return &exciseHandler{
		exciseService: es,
		home:          home,
	}
}

// registerExciseRoutes registers routes related to the excise calculator.
// writeGuards run before every POST route.
func registerExciseRoutes(r gin.IRouter, exciseService portssvc.ExciseSvcFacade, home *homeHandler, writeGuards ...gin.HandlerFunc) {
	h := newExciseHandler(exciseService, home)

	ex := r.Group("/excise")
	{
		ex.GET("/submissions", h.listSubmissions)

		writes := ex.Group("", writeGuards...)
		writes.POST("/calculate", h.calculate)
		writes.POST("/submissions", h.submit)
	}
}

// calculate godoc
// @Summary Preview an excise calculation
// @Description Runs the duty pipeline on the typed inputs without storing anything. Blank or unparsable text degrades to zero; an omitted rate uses the default 57.79.
// @Tags excise
// @Accept  json
// @Produce  json
// @Param   inputs body dto.CalculateExciseRequest true "Calculator inputs"
// @Success 200 {object} dto.ExciseResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /excise/calculate [post]
func (h *exciseHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateExciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateExcise", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.exciseService.Calculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate excise")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// submit godoc
// @Summary Submit the excise calculator form
// @Description Validates and stores a calculation in the submission history. HTML form posts are redirected back to the page (303) or re-rendered with field errors (400).
// @Tags excise
// @Accept  json,x-www-form-urlencoded
// @Produce  json,html
// @Param   submission body dto.SubmitExciseRequest true "Calculator form"
// @Success 201 {object} dto.SubmissionResponse
// @Success 303 "Redirect to the page after a form post"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to submit calculation"
// @Router /excise/submissions [post]
func (h *exciseHandler) submit(c *gin.Context) {
	if c.ContentType() != binding.MIMEJSON {
		h.submitForm(c)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitExciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitExcise", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	submission, err := h.exciseService.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to submit calculation")
		return
	}

	logger.Info("Excise submission stored", slog.String("submission_id", submission.SubmissionID))
	c.JSON(http.StatusCreated, dto.ToSubmissionResponse(submission))
}

func (h *exciseHandler) submitForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitExciseRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind form for SubmitExcise", slog.String("error", err.Error()))
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	if _, err := h.exciseService.Submit(c.Request.Context(), req); err != nil {
		if fields, ok := fieldErrors(err); ok {
			h.home.render(c, http.StatusBadRequest, pageData{Excise: req, ExciseErrors: fields})
			return
		}
		logger.Error("Failed to submit calculation form", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to submit calculation")
		return
	}

	c.Redirect(http.StatusSeeOther, "/#excise-calculator")
}

// listSubmissions godoc
// @Summary List excise submissions
// @Description Retrieves the submission history, newest first, with token-based pagination
// @Tags excise
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSubmissionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list submissions"
// @Router /excise/submissions [get]
func (h *exciseHandler) listSubmissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSubmissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSubmissions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.exciseService.ListSubmissions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list submissions")
		return
	}

	logger.Debug("Submissions listed", slog.Int("count", len(resp.Submissions)))
	c.JSON(http.StatusOK, resp)
}
