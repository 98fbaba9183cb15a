package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/bonfire/internal/metrics"
	analyticsrepo "github.com/kailas-cloud/bonfire/internal/repository/analytics"
	chiTransport "github.com/kailas-cloud/bonfire/internal/transport/chi"
	gen "github.com/kailas-cloud/bonfire/internal/transport/generated"
	analyticsuc "github.com/kailas-cloud/bonfire/internal/usecase/analytics"
	cataloguc "github.com/kailas-cloud/bonfire/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/bonfire/internal/usecase/health"
	joinuc "github.com/kailas-cloud/bonfire/internal/usecase/join"
	"github.com/kailas-cloud/bonfire/internal/version"
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.close(context.Background())
	logger := a.logger

	logger.Info("Starting bonfire API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", a.env),
		zap.Int("http_port", a.cfg.HTTP.Port),
		zap.String("document_driver", a.cfg.Documents.Driver),
		zap.String("graph_driver", a.cfg.Graph.Driver),
	)

	metrics.RegisterHTTPMetrics()
	metrics.RegisterDomainMetrics()

	catalogSvc := cataloguc.New(cataloguc.Repositories{
		Items:        a.items,
		Persons:      a.persons,
		Reviews:      a.reviews,
		Publishers:   a.publishers,
		Transactions: a.transactions,
	}, a.graph).WithPagination(a.cfg.Pagination.DefaultPageSize, a.cfg.Pagination.MaxPageSize)
	joinSvc := joinuc.New(a.graph, a.items, a.persons).WithMaxLimit(a.cfg.Pagination.MaxRankingLimit)
	analyticsSvc := analyticsuc.New(
		analyticsrepo.New(a.items, a.reviews, a.publishers, a.transactions),
		a.persons,
	)
	healthSvc := healthuc.New(a.store, a.graph)

	server := chiTransport.NewServer(catalogSvc, joinSvc, analyticsSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(a.cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	gen.HandlerWithOptions(server, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: chiTransport.ParamErrorHandler,
	})

	addr := fmt.Sprintf(":%d", a.cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(a.cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}
