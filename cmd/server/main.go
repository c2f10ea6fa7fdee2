package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/seaward-io/seaward/internal/api"
	"github.com/seaward-io/seaward/internal/cache"
	"github.com/seaward-io/seaward/internal/config"
	"github.com/seaward-io/seaward/internal/engine"
	"github.com/seaward-io/seaward/internal/geocode"
	"github.com/seaward-io/seaward/internal/harbor"
	"github.com/seaward-io/seaward/internal/hazard"
	"github.com/seaward-io/seaward/internal/landmask"
	"github.com/seaward-io/seaward/internal/storage"
	"github.com/seaward-io/seaward/internal/verdict"
	"github.com/seaward-io/seaward/internal/weather"
)

func main() {
	// A missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	// PostgreSQL is optional. With it, harbors come from the harbors table
	// (seeded on first boot); without it, from the built-in gazetteer.
	var (
		dbPinger api.Pinger
		harbors  = harbor.Seed()
	)
	if cfg.DB.URL != "" {
		pool, err := storage.Connect(ctx, cfg.DB.URL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if err := storage.RunMigrations(ctx, pool, cfg.DB.MigrationsDir); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")

		repo := storage.NewRepository(pool)
		if n, err := repo.SeedIfEmpty(ctx, harbor.Seed()); err != nil {
			return fmt.Errorf("seeding harbors: %w", err)
		} else if n > 0 {
			log.Info("seeded harbor table", "rows", n)
		}

		if harbors, err = repo.ListHarbors(ctx); err != nil {
			return fmt.Errorf("loading harbors: %w", err)
		}
		dbPinger = &pgxPoolPinger{pool: pool}
	}
	log.Info("gazetteer loaded", "harbors", len(harbors))

	// Redis is optional; without it every hazard query hits the providers.
	var (
		redisPinger api.Pinger
		alertCache  engine.AlertCache
	)
	if cfg.Redis.URL != "" {
		redisClient, err := cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		alertCache = cache.NewCache(redisClient)
		redisPinger = &redisPingerAdapter{client: redisClient}
	}

	// Land classification is optional; without a shapefile every coordinate
	// is treated as water and validation rests on harbor proximity alone.
	var land harbor.LandClassifier
	if cfg.Engine.LandmaskPath != "" {
		mask, err := landmask.Load(cfg.Engine.LandmaskPath)
		if err != nil {
			return fmt.Errorf("loading landmask: %w", err)
		}
		land = mask
		log.Info("landmask loaded", "path", cfg.Engine.LandmaskPath)
	}

	var sources []hazard.Source
	if cfg.Sources.USGSEnabled {
		sources = append(sources, hazard.NewUSGSSourceWithURL(cfg.Sources.USGSURL))
	}
	if cfg.Sources.GDACSEnabled {
		sources = append(sources, hazard.NewGDACSSourceWithURL(cfg.Sources.GDACSURL))
	}
	if cfg.Sources.OpenMeteoEnabled {
		sources = append(sources, hazard.NewOpenMeteoSourceWithURL(cfg.Sources.OpenMeteoURL))
	}
	log.Info("hazard sources configured", "count", len(sources))

	var geocoder engine.Geocoder
	if cfg.Engine.GeocodeEnabled {
		geocoder = geocode.New()
	}

	gaz := harbor.NewGazetteer(harbors)
	validator := harbor.NewValidator(gaz, land, harbor.DefaultValidatorConfig())
	aggregator := hazard.NewAggregator(log, hazard.DefaultAggregatorConfig(), sources...)
	classifier := verdict.NewClassifier(verdict.DefaultThresholds())

	// The refresher watches every served hazard query and re-aggregates it
	// on the interval until the location goes unqueried for the watch TTL.
	refresher := engine.NewRefresher(log, cfg.Engine.RefreshInterval, cfg.Engine.WatchTTL)

	eng := engine.New(
		log,
		engine.Config{DefaultRadiusKm: cfg.Engine.DefaultRadiusKm},
		gaz,
		validator,
		aggregator,
		classifier,
		weather.NewClient(),
		geocoder,
		alertCache,
		refresher,
	)

	handlers := api.NewHandlers(eng, eng, eng, eng, log)
	router := api.NewRouter(handlers, cfg.Auth.Token, dbPinger, redisPinger, log)

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go refresher.Run(refreshCtx, eng)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// pgxPoolPinger adapts pgxpool.Pool to the api.Pinger interface.
type pgxPoolPinger struct {
	pool interface {
		Ping(ctx context.Context) error
	}
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to the api.Pinger interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
