package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/SscSPs/brew_notes_app/internal/middleware"
	"github.com/SscSPs/brew_notes_app/internal/utils/excise"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	homeTemplate     = "index.html"
	untitledProduct  = "Untitled product"
	homeHistoryLimit = 20
)

var templateFuncs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return "N/A"
		}
		return t.Format(domain.DateLayout)
	},
	"timestamp": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04:05")
	},
	"orUntitled": func(name string) string {
		if name == "" {
			return untitledProduct
		}
		return name
	},
}

// loadTemplates parses the embedded HTML templates.
func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}

// pageData is everything the home page template renders.
type pageData struct {
	RatePlaceholder string
	RateIsDefault   bool

	Excise       dto.SubmitExciseRequest
	ExciseErrors map[string]string

	Batch       dto.RecordBatchForm
	BatchErrors map[string]string

	Submissions []dto.SubmissionResponse
	Batches     []dto.BatchResponse
}

// homeHandler renders the brew notes and excise calculator page.
type homeHandler struct {
	services *portssvc.ServiceContainer
}

func newHomeHandler(services *portssvc.ServiceContainer) *homeHandler {
	return &homeHandler{services: services}
}

// registerHomeRoutes registers the HTML page route and returns the handler so form
// posts can re-render the page with their errors.
func registerHomeRoutes(r *gin.Engine, services *portssvc.ServiceContainer) *homeHandler {
	h := newHomeHandler(services)
	r.GET("/", h.getHome)
	return h
}

// getHome godoc
// @Summary Show the brew notes page
// @Description Renders the brew notes form, the excise calculator and the submission history
// @Tags root
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *homeHandler) getHome(c *gin.Context) {
	h.render(c, http.StatusOK, pageData{})
}

// render fills in the lists and the rate placeholder, then writes the page.
// A failing lookup is logged and the page renders without that section.
func (h *homeHandler) render(c *gin.Context, status int, data pageData) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	data.RatePlaceholder = excise.FormatAmount(excise.DefaultDutyRate)
	data.RateIsDefault = true
	if rate, err := h.services.DutyRate.GetCurrentDutyRate(ctx, time.Now().UTC()); err != nil {
		logger.Error("Failed to get current duty rate for page", slog.String("error", err.Error()))
	} else {
		data.RatePlaceholder = rate.Rate.StringFixed(2)
		data.RateIsDefault = rate.IsDefault
	}

	if subs, err := h.services.Excise.ListSubmissions(ctx, dto.ListSubmissionsParams{Limit: homeHistoryLimit}); err != nil {
		logger.Error("Failed to list submissions for page", slog.String("error", err.Error()))
	} else {
		data.Submissions = subs.Submissions
	}

	if batches, err := h.services.Batch.ListBatches(ctx); err != nil {
		logger.Error("Failed to list batches for page", slog.String("error", err.Error()))
	} else {
		data.Batches = dto.ToListBatchResponse(batches)
	}

	c.HTML(status, homeTemplate, data)
}
