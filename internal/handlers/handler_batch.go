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

// batchHandler handles HTTP requests related to brew batches.
type batchHandler struct {
	batchService portssvc.BatchSvcFacade
	home         *homeHandler
}

// newBatchHandler creates a new batchHandler.
func newBatchHandler(bs portssvc.BatchSvcFacade, home *homeHandler) *batchHandler {
	return &batchHandler{
		batchService: bs,
		home:         home,
	}
}

// registerBatchRoutes registers routes related to brew batches.
func registerBatchRoutes(r gin.IRouter, batchService portssvc.BatchSvcFacade, home *homeHandler, writeGuards ...gin.HandlerFunc) {
	h := newBatchHandler(batchService, home)

	batches := r.Group("/batches")
	{
		batches.GET("", h.listBatches)
		batches.GET("/:batchID", h.getBatch)
		batches.Group("", writeGuards...).POST("", h.recordBatch)
	}
}

// recordBatch godoc
// @Summary Record a brew batch
// @Description Stores brew notes and the excise figures derived from them. Either abv or both og and fg are required. HTML form posts are redirected back to the page (303) or re-rendered with field errors (400).
// @Tags batches
// @Accept  json,x-www-form-urlencoded
// @Produce  json,html
// @Param   batch body dto.RecordBatchRequest true "Brew notes"
// @Success 201 {object} dto.BatchResponse
// @Success 303 "Redirect to the page after a form post"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to record batch"
// @Router /batches [post]
func (h *batchHandler) recordBatch(c *gin.Context) {
	if c.ContentType() != binding.MIMEJSON {
		h.recordBatchForm(c)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.batchService.RecordBatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record batch")
		return
	}

	logger.Info("Batch recorded successfully", slog.String("batch_id", batch.BatchID))
	c.JSON(http.StatusCreated, dto.ToBatchResponse(batch))
}

func (h *batchHandler) recordBatchForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var form dto.RecordBatchForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind form for RecordBatch", slog.String("error", err.Error()))
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	if _, err := h.batchService.RecordBatch(c.Request.Context(), form.ToRequest()); err != nil {
		if fields, ok := fieldErrors(err); ok {
			h.home.render(c, http.StatusBadRequest, pageData{Batch: form, BatchErrors: fields})
			return
		}
		logger.Error("Failed to record batch form", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to record batch")
		return
	}

	c.Redirect(http.StatusSeeOther, "/#batches")
}

// getBatch godoc
// @Summary Get a batch by ID
// @Description Retrieves the brew notes and excise figures of a recorded batch
// @Tags batches
// @Produce  json
// @Param   batchID path string true "Batch ID"
// @Success 200 {object} dto.BatchResponse
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to get batch"
// @Router /batches/{batchID} [get]
func (h *batchHandler) getBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")
	logger = logger.With(slog.String("batch_id", batchID))

	batch, err := h.batchService.GetBatch(c.Request.Context(), batchID)
	if err != nil {
		respondError(c, logger, err, "Failed to get batch")
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponse(batch))
}

// listBatches godoc
// @Summary List batches
// @Description Retrieves all recorded batches, newest first
// @Tags batches
// @Produce  json
// @Success 200 {array} dto.BatchResponse
// @Failure 500 {object} map[string]string "Failed to list batches"
// @Router /batches [get]
func (h *batchHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	batches, err := h.batchService.ListBatches(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list batches")
		return
	}

	logger.Debug("Batches listed", slog.Int("count", len(batches)))
	c.JSON(http.StatusOK, dto.ToListBatchResponse(batches))
}
