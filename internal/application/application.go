package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"lak_auction/internal/config"
	"lak_auction/internal/domain/service/auction"
	"lak_auction/internal/infrastructure/monitoring"
	"lak_auction/internal/infrastructure/persistence"
	"lak_auction/internal/server"
	"lak_auction/pkg/application/modules"
	"lak_auction/pkg/logx"
	"lak_auction/pkg/middlewarex"
)

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	log.Info(
		"configuration loaded",
		logx.FieldStorePath, cfg.Store.Path,
		"bid-step", cfg.Auction.BidStep,
		"creation-enabled", cfg.Auction.AllowCreate,
	)

	// 2. Metrics & store
	metrics := monitoring.New(prometheus.DefaultRegisterer)
	store := persistence.NewFileStore(cfg.Store.Path, metrics)

	// 3. Domain service
	auctionService := auction.NewService(store, metrics, cfg.Auction.BidStep).
		WithCreationEnabled(cfg.Auction.AllowCreate)

	// 4. HTTP API
	srv := server.NewServer(server.NewItemServer(auctionService, cfg.App.Name, cfg.Auction.BidStep))

	router := newRouter(cfg, metrics, srv)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 5. Lifecycle
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newRouter(cfg config.Config, metrics *monitoring.Metrics, srv server.Server) chi.Router {
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()

	router.Use(middlewarex.TraceID)
	router.Use(middlewarex.Logger)
	router.Use(middlewarex.Recovery)
	router.Use(monitoring.Middleware(metrics))
	router.Use(middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen))
	router.Use(middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORS.AllowOrigin},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-Id"},
		ExposedHeaders: []string{"X-Trace-Id"},
		MaxAge:         300,
	}))

	srv.RegisterRoutes(router)

	router.NotFound(server.SPAHandler(cfg.HTTP.PublicDir))

	return router
}
