// Package httpapi assembles the public router. It owns no business logic;
// every route delegates to a domain handler.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auditHandler "reggate/internal/audit/handler"
	evidenceHandler "reggate/internal/evidence/handler"
	intakeHandler "reggate/internal/intake/handler"
	packetHandler "reggate/internal/packet/handler"
	"reggate/internal/platform/middleware"
	"reggate/pkg/platform/httputil"
)

// Handlers collects the domain handlers the router mounts.
type Handlers struct {
	Intake   *intakeHandler.Handler
	Evidence *evidenceHandler.Handler
	Packet   *packetHandler.Handler
	Audit    *auditHandler.Handler
}

// NewRouter wires all public endpoints behind the shared middleware stack.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/health", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	h.Intake.Register(r)
	h.Evidence.Register(r)
	h.Packet.Register(r)
	h.Audit.Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
