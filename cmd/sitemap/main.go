// Command sitemap renders sitemap.xml from the configured and stored
// cities and publishes it to the object store. It is meant to run from a
// scheduler after new cities have been generated.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/joho/godotenv/autoload"

	"citycast/internal/config"
	"citycast/internal/database"
	"citycast/internal/logger"
	"citycast/internal/repository/postgres"
	"citycast/internal/service"
	"citycast/internal/storage"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "write the sitemap to stdout instead of publishing it")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.Default(time.UTC)
		fallback.Fatal().Err(err).Msg("config_invalid")
	}
	log := logger.Component(logger.Default(cfg.Location()), "sitemap")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	ctx = log.WithContext(ctx)

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database_connect_failed")
	}
	defer db.Close()

	var objStore storage.Storage
	if !*dryRun {
		if objStore, err = storage.NewMinIO(ctx, cfg.MinIO); err != nil {
			log.Fatal().Err(err).Msg("object_storage_init_failed")
		}
	}

	svc := service.NewSitemapService(objStore, postgres.NewStopPostgres(db), cfg.Site.URL, cfg.Site.Cities)

	if *dryRun {
		doc, err := svc.Build(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("sitemap_build_failed")
		}
		if _, err := os.Stdout.Write(doc); err != nil {
			log.Fatal().Err(err).Msg("sitemap_write_failed")
		}
		return
	}

	info, err := svc.Publish(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sitemap_publish_failed")
	}
	log.Info().Str("key", info.Key).Int64("size", info.Size).Msg("sitemap_published")
}
