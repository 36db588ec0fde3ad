package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"reggate/internal/audit"
	auditHandler "reggate/internal/audit/handler"
	"reggate/internal/evidence"
	evidenceHandler "reggate/internal/evidence/handler"
	"reggate/internal/intake"
	intakeHandler "reggate/internal/intake/handler"
	"reggate/internal/packet"
	packetHandler "reggate/internal/packet/handler"
	"reggate/internal/platform/config"
	"reggate/internal/platform/httpserver"
	"reggate/internal/platform/logger"
	"reggate/internal/platform/metrics"
	httptransport "reggate/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal domain
// packages. The audit log is constructed here and owned by the process; there
// is no ambient global state.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	m := metrics.New()

	auditLog := audit.NewLog()

	router := httptransport.NewRouter(httptransport.Handlers{
		Intake:   intakeHandler.New(intake.NewValidator(), log, m),
		Evidence: evidenceHandler.New(evidence.NewPolicy(), log, m),
		Packet:   packetHandler.New(packet.NewValidator(), log, m),
		Audit:    auditHandler.New(auditLog, log, m),
	}, log)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting reggate", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
