package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"citycast/internal/config"
	"citycast/internal/database"
	"citycast/internal/database/migration"
	handlers "citycast/internal/http/handler"
	"citycast/internal/http/middleware"
	"citycast/internal/logger"
	"citycast/internal/otel"
	"citycast/internal/repository/postgres"
	"citycast/internal/service"
	"citycast/internal/storage"
	"citycast/internal/upstream"
)

const (
	bodyLimit       = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// @title cityCast API
// @version 1.0
// @description Backend of the stadtour.nl city tour builder.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.Default(time.UTC)
		fallback.Fatal().Err(err).Msg("config_invalid")
	}
	log := logger.Default(cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger.Component(log, "otel"))
	if err != nil {
		log.Fatal().Err(err).Msg("tracing_init_failed")
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database_connect_failed")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("database_migration_failed")
	}

	// The object store only backs the sitemap; without it the sitemap is
	// rendered per request.
	var objStore storage.Storage
	if err := storage.ValidateMinIOConfig(cfg.MinIO); err != nil {
		log.Warn().Err(err).Msg("object_storage_disabled")
	} else if objStore, err = storage.NewMinIO(ctx, cfg.MinIO); err != nil {
		log.Fatal().Err(err).Msg("object_storage_init_failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	upMetrics, err := upstream.NewMetrics(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics_init_failed")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics_init_failed")
	}

	httpClient := upstream.NewHTTPClient(cfg.UpstreamTimeout())
	upCfg := func(baseURL, key string) upstream.Config {
		return upstream.Config{BaseURL: baseURL, APIKey: key, HTTPClient: httpClient, Metrics: upMetrics}
	}
	places := upstream.NewPlacesClient(upCfg(cfg.Upstream.GooglePlacesURL, cfg.Upstream.PlacesKey))
	maps := upstream.NewMapsClient(upCfg(cfg.Upstream.GoogleMapsURL, cfg.Upstream.MapsKey))
	otm := upstream.NewOpenTripMapClient(upCfg(cfg.Upstream.OpenTripMapURL, cfg.Upstream.OpenTripMapKey))
	meteo := upstream.NewOpenMeteoClient(upCfg(cfg.Upstream.OpenMeteoURL, ""))
	mollie := upstream.NewMollieClient(upCfg(cfg.Upstream.MollieURL, cfg.Upstream.MollieKey))

	warnUnconfigured(log, map[string]string{
		"places":      cfg.Upstream.PlacesKey,
		"maps":        cfg.Upstream.MapsKey,
		"opentripmap": cfg.Upstream.OpenTripMapKey,
		"mollie":      cfg.Upstream.MollieKey,
	})

	// Initialize repositories and services
	stopRepo := postgres.NewStopPostgres(db)
	feedbackRepo := postgres.NewFeedbackPostgres(db)

	svc := handlers.Services{
		Stops:      service.NewStopService(stopRepo, places, cfg.Upstream.DefaultLanguage, cfg.Upstream.PlacesMaxResults),
		Enrichment: service.NewEnrichmentService(stopRepo, otm),
		Feedback:   service.NewFeedbackService(feedbackRepo),
		Payments:   service.NewPaymentService(mollie),
		Geocode:    service.NewGeocodeService(maps, cfg.Upstream.DefaultLanguage, cfg.Upstream.DefaultRegion),
		Weather:    service.NewWeatherService(meteo),
		Navigation: service.NewNavigationService(maps, cfg.Upstream.DefaultLanguage,
			cfg.Navigation.OffRouteThresholdM, cfg.Navigation.ArrivalThresholdM),
		Sitemap: service.NewSitemapService(objStore, stopRepo, cfg.Site.URL, cfg.Site.Cities),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             bodyLimit,
		DisableStartupMessage: cfg.Env == "production",
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowHeaders:  "Content-Type,X-Api-Key,Authorization",
		AllowMethods:  "GET,POST,OPTIONS",
		ExposeHeaders: middleware.RequestIDHeader,
	}))

	handlers.RegisterRoutes(app, db, svc, handlers.Options{
		RateLimitPerMin: cfg.RateLimitPerMin,
		Gatherer:        reg,
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown_started")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("http_shutdown_failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server_starting")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("server_failed")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error().Err(err).Msg("tracing_shutdown_failed")
	}
	log.Info().Msg("shutdown_complete")
}

func warnUnconfigured(log zerolog.Logger, keys map[string]string) {
	for provider, key := range keys {
		if key == "" {
			log.Warn().Str("provider", provider).Msg("upstream_not_configured")
		}
	}
}
