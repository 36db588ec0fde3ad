package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"reggate/internal/domain"
	"reggate/internal/intake"
	"reggate/internal/platform/metrics"
	"reggate/internal/platform/middleware"
	"reggate/pkg/platform/httputil"
)

// Service defines the interface for intake validation.
type Service interface {
	Validate(payload domain.IntakePayload) intake.Result
}

// Handler wires the intake endpoint to the validator.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs an intake handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts intake endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/intake/validate", h.HandleValidate)
}

// HandleValidate handles POST /intake/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Validate(req.Payload())

	h.metrics.IncrementOutcome("intake", result.Valid)
	h.metrics.CountIssues(issueCodes(result.Issues))
	h.metrics.ObserveRequestLatency("intake_validate", time.Since(start))
	h.logger.InfoContext(ctx, "intake validated",
		"request_id", requestID,
		"valid", result.Valid,
		"issue_count", len(result.Issues),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, result)
}

func issueCodes(issues []domain.ValidationIssue) []string {
	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	return codes
}
