package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"reggate/internal/domain"
	"reggate/internal/packet"
	"reggate/internal/platform/metrics"
	"reggate/internal/platform/middleware"
	"reggate/pkg/platform/httputil"
)

// Service defines the interface for packet validation.
type Service interface {
	Validate(pkt domain.HandoffPacket) packet.Result
}

// Handler wires the packet endpoint to the validator.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a packet handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts packet endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/workflow/packets/validate", h.HandleValidate)
}

// HandleValidate handles POST /workflow/packets/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Validate(req.Packet())

	h.metrics.IncrementOutcome("packet", result.Acceptable)
	h.metrics.CountIssues(issueCodes(result.Issues))
	h.metrics.ObserveRequestLatency("packet_validate", time.Since(start))
	h.logger.InfoContext(ctx, "packet validated",
		"request_id", requestID,
		"packet_id", req.PacketID,
		"acceptable", result.Acceptable,
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
