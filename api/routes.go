package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/gestor-oficina/ledger-server/internal/handlers/v1/entry"
	"github.com/gestor-oficina/ledger-server/internal/handlers/v1/pricing"
	"github.com/gestor-oficina/ledger-server/internal/handlers/v1/session"
	"github.com/gestor-oficina/ledger-server/internal/handlers/v1/status"
	"github.com/gestor-oficina/ledger-server/internal/handlers/v1/stream"
	"github.com/gestor-oficina/ledger-server/internal/handlers/v1/summary"
	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/logging"
	"github.com/gestor-oficina/ledger-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// snapshotStream bundles the snapshot read with the change feed for
// the SSE handler.
type snapshotStream struct {
	ledger  *service.LedgerService
	changes *service.Broadcaster
}

func (s snapshotStream) Snapshot(ctx context.Context) ([]ledger.Entry, error) {
	return s.ledger.Snapshot(ctx)
}

func (s snapshotStream) Subscribe() (<-chan []ledger.Entry, func()) {
	return s.changes.Subscribe()
}

// authMiddleware rejects requests without a valid session token.
// Operations marked public in their metadata skip the check. The SSE
// endpoint may carry the token as a query parameter since EventSource
// cannot set headers.
func authMiddleware(api huma.API, sessions *service.SessionService) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if public, _ := ctx.Operation().Metadata["public"].(bool); public {
			next(ctx)
			return
		}

		token := strings.TrimPrefix(ctx.Header("Authorization"), "Bearer ")
		if token == "" {
			token = ctx.Query("token")
		}
		if !sessions.Validate(token) {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or missing token")
			return
		}
		next(ctx)
	}
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Ledger Server", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))
	humaAPI.UseMiddleware(authMiddleware(humaAPI, r.Service.Sessions))

	session.NewHandler(r.Service.Sessions).Register(humaAPI)
	entry.NewCreateEntryHandler(r.Service.Ledger).Register(humaAPI)
	entry.NewDeleteEntryHandler(r.Service.Ledger).Register(humaAPI)
	entry.NewListEntriesHandler(r.Service.Ledger).Register(humaAPI)
	stream.NewHandler(snapshotStream{ledger: r.Service.Ledger, changes: r.Service.Changes}).Register(humaAPI)
	pricing.NewQuoteHandler().Register(humaAPI)
	pricing.NewPriceTableHandler().Register(humaAPI)
	summary.NewSummaryHandler(r.Service.Ledger).Register(humaAPI)
	summary.NewReportHandler(r.Service.Ledger).Register(humaAPI)

	// WriteTimeout stays zero: the snapshot stream holds its
	// connection open indefinitely.
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
