// Package handler exposes the planning engine over HTTP. Routes are keyed by
// application id; plan endpoints are pure reads, structure endpoints go
// through the revisioned store.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	planmodels "belegplan/internal/planner/models"
	"belegplan/internal/platform/middleware"
	"belegplan/internal/structure/models"
	"belegplan/internal/structure/store"
	"belegplan/internal/structure/updater"
	dErrors "belegplan/pkg/domain-errors"
	"belegplan/pkg/httputil"
)

// PlanService computes extraction plans and summaries.
type PlanService interface {
	CreatePlan(ctx context.Context, applicationID string) (*planmodels.ExtractionPlan, error)
	Summary(ctx context.Context, applicationID string) (*planmodels.Summary, error)
}

// StructureService manages the persisted extraction structure.
type StructureService interface {
	Generate(ctx context.Context, applicationID string) (*models.ExtractionStructure, error)
	Save(ctx context.Context, applicationID string, structure *models.ExtractionStructure) error
	Load(ctx context.Context, applicationID string) (*models.ExtractionStructure, error)
	UpdateWithResults(ctx context.Context, applicationID string, results []updater.Result) (*models.ExtractionStructure, int, error)
}

// Handler wires planning and structure endpoints to their services.
type Handler struct {
	plans      PlanService
	structures StructureService
	logger     *slog.Logger
}

// New constructs the extraction handler.
func New(plans PlanService, structures StructureService, logger *slog.Logger) *Handler {
	return &Handler{plans: plans, structures: structures, logger: logger}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/applications/{applicationID}/extraction", func(r chi.Router) {
		r.Get("/plan", h.HandleGetPlan)
		r.Get("/summary", h.HandleGetSummary)
		r.Post("/structure", h.HandleGenerateStructure)
		r.Get("/structure", h.HandleGetStructure)
		r.Put("/structure", h.HandleSaveStructure)
		r.Post("/results", h.HandleApplyResults)
	})
}

// HandleGetPlan handles GET /applications/{applicationID}/extraction/plan.
func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicationID := chi.URLParam(r, "applicationID")
	start := time.Now()

	plan, err := h.plans.CreatePlan(ctx, applicationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "plan computation failed",
			"request_id", middleware.GetRequestID(ctx),
			"application_id", applicationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "plan computed",
		"request_id", middleware.GetRequestID(ctx),
		"application_id", applicationID,
		"persons", plan.Counts.Persons,
		"documents", plan.Counts.DocumentsToScan,
		"values", plan.Counts.ValuesToExtract,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, plan)
}

// HandleGetSummary handles GET /applications/{applicationID}/extraction/summary.
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicationID := chi.URLParam(r, "applicationID")

	summary, err := h.plans.Summary(ctx, applicationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "plan summary failed",
			"request_id", middleware.GetRequestID(ctx),
			"application_id", applicationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandleGenerateStructure handles POST /applications/{applicationID}/extraction/structure.
func (h *Handler) HandleGenerateStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicationID := chi.URLParam(r, "applicationID")

	structure, err := h.structures.Generate(ctx, applicationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "structure generation failed",
			"request_id", middleware.GetRequestID(ctx),
			"application_id", applicationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, structure)
}

// HandleGetStructure handles GET /applications/{applicationID}/extraction/structure.
func (h *Handler) HandleGetStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicationID := chi.URLParam(r, "applicationID")

	structure, err := h.structures.Load(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.logger.ErrorContext(ctx, "structure load failed",
				"request_id", middleware.GetRequestID(ctx),
				"application_id", applicationID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, structure)
}

// HandleSaveStructure handles PUT /applications/{applicationID}/extraction/structure.
func (h *Handler) HandleSaveStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicationID := chi.URLParam(r, "applicationID")

	var structure models.ExtractionStructure
	if err := json.NewDecoder(r.Body).Decode(&structure); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid structure payload"))
		return
	}

	if err := h.structures.Save(ctx, applicationID, &structure); err != nil {
		if !errors.Is(err, store.ErrRevisionConflict) {
			h.logger.ErrorContext(ctx, "structure save failed",
				"request_id", middleware.GetRequestID(ctx),
				"application_id", applicationID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, saveResponse{Revision: structure.Revision})
}

// HandleApplyResults handles POST /applications/{applicationID}/extraction/results.
func (h *Handler) HandleApplyResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicationID := chi.URLParam(r, "applicationID")

	var req applyResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid results payload"))
		return
	}
	if len(req.Results) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "results are required"))
		return
	}

	structure, skipped, err := h.structures.UpdateWithResults(ctx, applicationID, req.Results)
	if err != nil {
		h.logger.ErrorContext(ctx, "applying extraction results failed",
			"request_id", middleware.GetRequestID(ctx),
			"application_id", applicationID,
			"results", len(req.Results),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "extraction results applied",
		"request_id", middleware.GetRequestID(ctx),
		"application_id", applicationID,
		"applied", len(req.Results)-skipped,
		"skipped", skipped,
	)
	httputil.WriteJSON(w, http.StatusOK, applyResultsResponse{
		Applied:   len(req.Results) - skipped,
		Skipped:   skipped,
		Revision:  structure.Revision,
		Structure: structure,
	})
}

type saveResponse struct {
	Revision int64 `json:"revision"`
}

type applyResultsRequest struct {
	Results []updater.Result `json:"results"`
}

type applyResultsResponse struct {
	Applied   int                         `json:"applied"`
	Skipped   int                         `json:"skipped"`
	Revision  int64                       `json:"revision"`
	Structure *models.ExtractionStructure `json:"structure"`
}
