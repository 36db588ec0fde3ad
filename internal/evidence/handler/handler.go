package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"reggate/internal/domain"
	"reggate/internal/evidence"
	"reggate/internal/platform/metrics"
	"reggate/internal/platform/middleware"
	"reggate/pkg/platform/httputil"
)

// Service defines the interface for statement validation.
type Service interface {
	ValidateStatements(statements []domain.StatementCandidate, idx evidence.Index) []domain.StatementValidationResult
}

// Handler wires the statement-validation endpoint to the evidence policy.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs an evidence handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts evidence endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/evidence/statements/validate", h.HandleValidateStatements)
}

// HandleValidateStatements handles POST /evidence/statements/validate. The
// handler derives the id-set and confidence map from the posted evidence
// objects before invoking the policy.
func (h *Handler) HandleValidateStatements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateStatementsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results := h.service.ValidateStatements(req.Statements, evidence.BuildIndex(req.EvidenceObjects))

	okCount := 0
	for _, result := range results {
		if result.Status == domain.StatementStatusOK {
			okCount++
		}
	}
	h.metrics.IncrementOutcome("evidence", okCount == len(results))
	h.metrics.ObserveRequestLatency("evidence_statements_validate", time.Since(start))
	h.logger.InfoContext(ctx, "statements validated",
		"request_id", requestID,
		"statement_count", len(results),
		"ok_count", okCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, results)
}
