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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/api/handlers"
	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/internal/api/routes"
	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/config"
	"github.com/paulamunoz06/gestionproyectos/internal/config/db"
	"github.com/paulamunoz06/gestionproyectos/internal/cron"
	"github.com/paulamunoz06/gestionproyectos/internal/logging"
	"github.com/paulamunoz06/gestionproyectos/internal/metrics"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
)

const (
	serverReadTimeout  = 10 * time.Second
	serverWriteTimeout = 15 * time.Second
	serverIdleTimeout  = 60 * time.Second
	cleanupInterval    = 24 * time.Hour
)

var serviceNames = []string{config.ServiceCompany, config.ServiceCoordinator, config.ServiceStudent}

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:       "serve [company|coordinator|student]",
		Short:     "Run a service: HTTP API and bus consumers",
		Long:      `Run one service. The argument overrides SERVICE_NAME.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: serviceNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(args)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "Run table migrations before serving")
	return cmd
}

// bootstrap loads configuration, applies the service argument and builds the
// process logger.
func bootstrap(args []string) (*config.Config, *zap.Logger, error) {
	if len(args) == 1 {
		if err := os.Setenv("SERVICE_NAME", args[0]); err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	log = log.With(zap.String("service", cfg.Service))
	zap.ReplaceGlobals(log)
	return cfg, log, nil
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger, migrate bool) error {
	gdb, err := db.Open(cfg.DB, log)
	if err != nil {
		return err
	}
	if migrate {
		if err := db.Migrate(gdb, cfg.Service); err != nil {
			return err
		}
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	repos := repository.NewRepositories(gdb)
	failures := application.NewFailureService(repos, log.Named("failures"))

	b, err := openBus(cfg, log, m, failures.RecordDrop)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Warn("close bus", zap.Error(err))
		}
	}()

	var (
		feed      *handlers.ProjectFeed
		listeners []application.ProjectListener
	)
	if cfg.Service == config.ServiceCoordinator {
		feed = handlers.NewProjectFeed(cfg.CORSOrigins, log.Named("feed"))
		listeners = append(listeners, feed)
	}

	svc := application.New(application.Deps{
		Repos:     repos,
		Publisher: b,
		Metrics:   m,
		Logger:    log,
		Listeners: listeners,
		Failure:   failures,
	})

	if err := svc.Replica.Start(ctx, b, cfg.Service); err != nil {
		return err
	}
	cron.StartCleanupTask(ctx, svc.Failure, cfg.FailureRetentionDays, cleanupInterval, log.Named("cleanup"))

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(handlers.New(svc, feed), routes.Options{
		Service:     cfg.Service,
		JWT:         middleware.NewJWT(cfg.JWTSecret, cfg.JWTIssuer),
		Logger:      log.Named("http"),
		CORSOrigins: cfg.CORSOrigins,
		Ping:        sqlDB.PingContext,
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// nil for the in-memory bus, which never fails on its own
	var busFailed <-chan error
	if w, ok := b.(bus.Watcher); ok {
		busFailed = w.Failed()
	}

	var runErr error
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case err := <-busFailed:
		runErr = fmt.Errorf("message bus: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func openBus(cfg *config.Config, log *zap.Logger, m *metrics.Metrics, onDrop bus.DropFunc) (bus.Bus, error) {
	opts := []bus.Option{
		bus.WithLogger(log.Named("bus")),
		bus.WithMetrics(m),
		bus.WithDropFunc(onDrop),
		bus.WithBuffer(cfg.BusPrefetch),
	}
	switch cfg.BusDriver {
	case config.BusMemory:
		log.Warn("using in-memory bus; messages do not leave this process")
		return bus.NewMemory(opts...), nil
	default:
		return bus.DialRabbitMQ(cfg.RabbitMQURL, cfg.Service, opts...)
	}
}
