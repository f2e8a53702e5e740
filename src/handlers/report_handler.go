package handlers

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/aktienportfolio/backend/src/logger"
	"github.com/username/aktienportfolio/backend/src/models"
	"github.com/username/aktienportfolio/backend/src/security/validation"
	"github.com/username/aktienportfolio/backend/src/services"
	"github.com/username/aktienportfolio/backend/src/utils"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// ReportHandler serves the catalogue, the query console, the schema and the statistics.
type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: service,
	}
}

// HandleIndex renders the HTML list of catalogue entries.
func (h *ReportHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Queries []models.QuerySummary
	}{
		Queries: h.reportService.ListQueries(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		logger.FromContext(r.Context()).Error("Error rendering index page", "error", err)
	}
}

// HandleListQueries returns the catalogue entries as JSON.
func (h *ReportHandler) HandleListQueries(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.reportService.ListQueries(), http.StatusOK)
}

func (h *ReportHandler) HandleExecuteQuery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := logger.FromContext(r.Context())

	result, err := h.reportService.RunCatalogueQuery(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrQueryNotFound) {
			log.Debug("Unknown catalogue query requested", "queryID", id)
			utils.SendJSONError(w, "Query not found", http.StatusNotFound)
			return
		}
		log.Error("Catalogue query failed", "queryID", id, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *ReportHandler) HandleCustomQuery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req models.CustomQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Invalid custom query body", "error", err)
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.reportService.RunCustomQuery(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, services.ErrNotSelect) || errors.Is(err, validation.ErrQueryTooLong) {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Warn("Custom query failed", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *ReportHandler) HandleSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := h.reportService.GetSchema(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Error reading schema", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSONWithETag(w, r, schema)
}

func (h *ReportHandler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.GetStatistics(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Error computing statistics", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSONWithETag(w, r, stats)
}

func (h *ReportHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.reportService.Ping(r.Context()); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
