package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"procurement/db"
	"procurement/db/migrations"
	"procurement/internal/config"
	"procurement/internal/handlers"
	"procurement/internal/logger"
	"procurement/internal/metrics"
	"procurement/internal/repository"
	"procurement/internal/seed"
	"procurement/internal/views"
)

func main() {
	os.Exit(serve())
}

// serve возвращает код выхода; все defer срабатывают до os.Exit
func serve() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Cannot load config: %v", err)
		return 1
	}

	lg, err := logger.New(cfg.Logger())
	if err != nil {
		log.Printf("Cannot init logger: %v", err)
		return 1
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return exitCode(lg, run(ctx, cfg, lg))
}

func exitCode(lg *zap.Logger, err error) int {
	if err == nil {
		lg.Info("server stopped")
		return 0
	}
	lg.Error("server stopped", logger.ErrorF(err))
	return 1
}

func run(ctx context.Context, cfg config.Config, lg *zap.Logger) error {
	backend, closeBackend, err := openBackend(ctx, cfg.Storage, lg)
	if err != nil {
		return err
	}
	defer closeBackend()

	store := db.NewStorage(backend,
		db.WithPrefix(cfg.Storage.KeyPrefix),
		db.WithLogger(lg),
		db.WithMetrics(metrics.NewStorage(prometheus.DefaultRegisterer)),
	)
	if !store.Available() {
		lg.Warn("storage is disabled, collections are served empty and writes are dropped")
	}

	opts := []repository.Option{repository.WithLogger(lg)}
	defs := repository.NewDefinitions(store, opts...)
	projects := repository.NewProjects(store, opts...)
	tenders := repository.NewTenders(store, opts...)
	bids := repository.NewBids(store, opts...)
	evals := repository.NewEvaluations(store, opts...)
	contracts := repository.NewContracts(store, opts...)

	svc := views.NewService(views.Repositories{
		Definitions: defs, Projects: projects, Tenders: tenders,
		Bids: bids, Evaluations: evals, Contracts: contracts,
	}, views.WithExpiringDays(cfg.ExpiringDays))
	mgr := seed.NewManager(seed.Repositories{
		Definitions: defs, Projects: projects, Tenders: tenders,
		Evaluations: evals, Contracts: contracts,
	}, lg)

	if cfg.SeedOnStart && !mgr.HasAnyData(ctx) {
		loaded := mgr.LoadAll(ctx)
		lg.Info("demo data loaded", logger.Any("counts", loaded))
	}

	h := handlers.NewHandler(handlers.Deps{
		Definitions: defs,
		Projects:    projects,
		Tenders:     tenders,
		Bids:        bids,
		Evaluations: evals,
		Contracts:   contracts,
		Preferences: store,
		Seed:        mgr,
		Views:       svc,
		Log:         lg,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/api", h.Routes())
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: cfg.Server.Address, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", logger.String("addr", cfg.Server.Address), logger.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down", logger.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openBackend подключает хранилище по STORAGE_DRIVER; для "none" бэкенда нет
func openBackend(ctx context.Context, cfg config.Storage, lg *zap.Logger) (db.Backend, func(), error) {
	const op = "main.openBackend"
	noop := func() {}

	switch cfg.Driver {
	case config.DriverMemory:
		return db.NewMemoryBackend(), noop, nil
	case config.DriverSQLite, config.DriverPostgres:
		driver, dsn := migrations.DriverSQLite, cfg.SQLitePath
		if cfg.Driver == config.DriverPostgres {
			driver, dsn = migrations.DriverPostgres, cfg.PostgresConn
		}
		conn, err := db.OpenSQL(ctx, driver, dsn, lg)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		return db.NewSQLBackend(conn), func() { conn.Close() }, nil
	case config.DriverMongo:
		client, err := db.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		return db.NewMongoBackend(coll), func() { client.Disconnect(context.Background()) }, nil
	case config.DriverNone:
		return nil, noop, nil
	}
	return nil, noop, fmt.Errorf("%s: %w: %q", op, config.ErrUnknownDriver, cfg.Driver)
}
