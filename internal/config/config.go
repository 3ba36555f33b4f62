package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `koanf:"host"`
	Port               string `koanf:"port"`
	User               string `koanf:"user"`
	Password           string `koanf:"password"`
	Name               string `koanf:"name"`
	SSLMode            string `koanf:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns       int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns       int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeSec int    `koanf:"conn_max_lifetime_sec" validate:"gte=0"`
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	UseSSL    bool   `koanf:"use_ssl"`
}

// UpstreamConfig holds API keys and base URLs of the third-party services.
// Base URLs default to the public endpoints and exist so tests and staging
// can point the clients elsewhere.
type UpstreamConfig struct {
	MapsKey          string `koanf:"maps_key"`
	PlacesKey        string `koanf:"places_key"`
	OpenTripMapKey   string `koanf:"opentripmap_key"`
	MollieKey        string `koanf:"mollie_key"`
	GoogleMapsURL    string `koanf:"google_maps_url" validate:"required,url"`
	GooglePlacesURL  string `koanf:"google_places_url" validate:"required,url"`
	OpenTripMapURL   string `koanf:"opentripmap_url" validate:"required,url"`
	OpenMeteoURL     string `koanf:"open_meteo_url" validate:"required,url"`
	MollieURL        string `koanf:"mollie_url" validate:"required,url"`
	TimeoutSec       int    `koanf:"timeout_sec" validate:"gt=0"`
	DefaultLanguage  string `koanf:"default_language" validate:"required"`
	DefaultRegion    string `koanf:"default_region" validate:"required"`
	PlacesMaxResults int    `koanf:"places_max_results" validate:"gt=0,lte=20"`
}

// NavigationConfig holds the distance thresholds used by the progress tracker.
type NavigationConfig struct {
	OffRouteThresholdM float64 `koanf:"off_route_threshold_m" validate:"gt=0"`
	ArrivalThresholdM  float64 `koanf:"arrival_threshold_m" validate:"gt=0"`
}

// SiteConfig describes the public web site the sitemap is generated for.
type SiteConfig struct {
	URL    string   `koanf:"url" validate:"required,url"`
	Cities []string `koanf:"cities"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env              string           `koanf:"env" validate:"oneof=development staging production test"`
	Port             string           `koanf:"port" validate:"required,numeric"`
	Timezone         string           `koanf:"timezone" validate:"required"`
	CORSAllowOrigins string           `koanf:"cors_allow_origins"`
	RateLimitPerMin  int              `koanf:"rate_limit_per_min" validate:"gte=0"`
	Database         DatabaseConfig   `koanf:"database"`
	MinIO            MinIOConfig      `koanf:"minio"`
	Upstream         UpstreamConfig   `koanf:"upstream"`
	Navigation       NavigationConfig `koanf:"navigation"`
	Site             SiteConfig       `koanf:"site"`
}

// envKeys maps environment variables onto koanf paths. Variables not
// listed here are ignored.
var envKeys = map[string]string{
	"APP_ENV":                  "env",
	"PORT":                     "port",
	"APP_TIMEZONE":             "timezone",
	"CORS_ALLOW_ORIGINS":       "cors_allow_origins",
	"RATE_LIMIT_PER_MINUTE":    "rate_limit_per_min",
	"DB_HOST":                  "database.host",
	"DB_PORT":                  "database.port",
	"DB_USER":                  "database.user",
	"DB_PASSWORD":              "database.password",
	"DB_NAME":                  "database.name",
	"DB_SSLMODE":               "database.sslmode",
	"DB_MAX_OPEN_CONNS":        "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":        "database.max_idle_conns",
	"DB_CONN_MAX_LIFETIME_SEC": "database.conn_max_lifetime_sec",
	"MINIO_ENDPOINT":           "minio.endpoint",
	"MINIO_ACCESS_KEY":         "minio.access_key",
	"MINIO_SECRET_KEY":         "minio.secret_key",
	"MINIO_BUCKET":             "minio.bucket",
	"MINIO_USE_SSL":            "minio.use_ssl",
	"MAPS_KEY":                 "upstream.maps_key",
	"PLACES_KEY":               "upstream.places_key",
	"OPENTRIPMAP_API_KEY":      "upstream.opentripmap_key",
	"MOLLIE_API_KEY":           "upstream.mollie_key",
	"GOOGLE_MAPS_URL":          "upstream.google_maps_url",
	"GOOGLE_PLACES_URL":        "upstream.google_places_url",
	"OPENTRIPMAP_URL":          "upstream.opentripmap_url",
	"OPEN_METEO_URL":           "upstream.open_meteo_url",
	"MOLLIE_URL":               "upstream.mollie_url",
	"UPSTREAM_TIMEOUT_SEC":     "upstream.timeout_sec",
	"DEFAULT_LANGUAGE":         "upstream.default_language",
	"DEFAULT_REGION":           "upstream.default_region",
	"PLACES_MAX_RESULTS":       "upstream.places_max_results",
	"OFF_ROUTE_THRESHOLD_M":    "navigation.off_route_threshold_m",
	"ARRIVAL_THRESHOLD_M":      "navigation.arrival_threshold_m",
	"SITE_URL":                 "site.url",
	"SITEMAP_CITIES":           "site.cities",
}

// defaults are loaded before the environment.
var defaults = map[string]any{
	"env":                              "development",
	"port":                             "8080",
	"timezone":                         "Europe/Amsterdam",
	"cors_allow_origins":               "*",
	"rate_limit_per_min":               60,
	"database.port":                    "5432",
	"database.sslmode":                 "disable",
	"database.max_open_conns":          10,
	"database.max_idle_conns":          5,
	"database.conn_max_lifetime_sec":   300,
	"upstream.google_maps_url":         "https://maps.googleapis.com",
	"upstream.google_places_url":       "https://places.googleapis.com",
	"upstream.opentripmap_url":         "https://api.opentripmap.com/0.1/en/places",
	"upstream.open_meteo_url":          "https://api.open-meteo.com",
	"upstream.mollie_url":              "https://api.mollie.com",
	"upstream.timeout_sec":             10,
	"upstream.default_language":        "nl",
	"upstream.default_region":          "nl",
	"upstream.places_max_results":      10,
	"navigation.off_route_threshold_m": 50.0,
	"navigation.arrival_threshold_m":   30.0,
	"site.url":                         "https://stadtour.nl",
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// UpstreamTimeout is the per-request deadline applied to third-party calls.
func (c *AppConfig) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSec) * time.Second
}

// Load reads configuration from environment variables on top of the
// defaults. A .env file can be auto-loaded by importing:
// _ "github.com/joho/godotenv/autoload". Real environment variables take
// precedence over the file. Empty variables are treated as unset.
func Load() (*AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &AppConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Upstream.PlacesKey == "" {
		cfg.Upstream.PlacesKey = cfg.Upstream.MapsKey
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envValue maps one environment variable onto its koanf path. Comma
// separated lists become slices with blanks dropped.
func envValue(key, value string) (string, any) {
	path, ok := envKeys[key]
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", nil
	}
	if path == "site.cities" {
		return path, splitList(value)
	}
	return path, value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
