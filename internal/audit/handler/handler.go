package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"reggate/internal/audit"
	"reggate/internal/domain"
	"reggate/internal/platform/metrics"
	"reggate/internal/platform/middleware"
	dErrors "reggate/pkg/domain-errors"
	"reggate/pkg/platform/httputil"
)

// Service defines the interface for the audit log.
type Service interface {
	Append(event domain.AuditEvent) (domain.AuditEvent, error)
	List() []domain.AuditEvent
	Length() int
	Verify() audit.VerifyResult
}

// Handler wires the audit endpoints to the log.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs an audit handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/audit/events", h.HandleAppend)
	r.Get("/audit/events", h.HandleList)
	r.Get("/audit/events/verify", h.HandleVerify)
}

// HandleAppend handles POST /audit/events. A chain-integrity failure is a
// rejected mutation and surfaces as a conflict, never a server fault.
func (h *Handler) HandleAppend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[AppendEventRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementAppend("rejected")
		return
	}

	stored, err := h.service.Append(req.Event())
	if err != nil {
		if dErrors.Is(err, dErrors.CodeConflict) {
			h.metrics.IncrementAppend("chain_mismatch")
			h.logger.WarnContext(ctx, "audit append rejected",
				"request_id", requestID,
				"event_id", req.EventID,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.metrics.IncrementAppend("rejected")
		h.logger.ErrorContext(ctx, "audit append failed",
			"request_id", requestID,
			"event_id", req.EventID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementAppend("ok")
	h.metrics.SetChainLength(h.service.Length())
	h.metrics.ObserveRequestLatency("audit_append", time.Since(start))
	h.logger.InfoContext(ctx, "audit event appended",
		"request_id", requestID,
		"event_id", stored.EventID,
		"event_type", stored.EventType,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, stored)
}

// HandleList handles GET /audit/events, returning the full sequence in append
// order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	events := h.service.List()
	httputil.WriteJSON(w, http.StatusOK, events)
}

// HandleVerify handles GET /audit/events/verify, walking the stored chain and
// reporting the first break.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	result := h.service.Verify()
	if !result.Intact {
		h.logger.WarnContext(r.Context(), "audit chain verification failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"broken_at", result.BrokenAt,
			"reason", result.Reason,
		)
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
