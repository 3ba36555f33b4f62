package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("OFF_ROUTE_THRESHOLD_M", "75.5")
	t.Setenv("SITEMAP_CITIES", "Amsterdam, Utrecht,,Den Haag ")
	t.Setenv("MAPS_KEY", "maps-key")
	t.Setenv("APP_TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 75.5, cfg.Navigation.OffRouteThresholdM)
	assert.Equal(t, 30.0, cfg.Navigation.ArrivalThresholdM)
	assert.Equal(t, []string{"Amsterdam", "Utrecht", "Den Haag"}, cfg.Site.Cities)
	assert.Equal(t, "maps-key", cfg.Upstream.PlacesKey, "places key falls back to the maps key")
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, "Europe/Amsterdam", cfg.Timezone, "empty variables keep the default")
	assert.Equal(t, "https://stadtour.nl", cfg.Site.URL)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad environment name", func(t *testing.T) {
		t.Setenv("APP_ENV", "moon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive threshold", func(t *testing.T) {
		t.Setenv("OFF_ROUTE_THRESHOLD_M", "-5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad site url", func(t *testing.T) {
		t.Setenv("SITE_URL", "not a url")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "Europe/Amsterdam"}
	assert.Equal(t, "Europe/Amsterdam", cfg.Location().String())

	cfg.Timezone = "Nowhere/Special"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestEnvValue(t *testing.T) {
	tests := []struct {
		key, value string
		wantPath   string
		wantValue  any
	}{
		{"DB_HOST", "db.internal", "database.host", "db.internal"},
		{"OPENTRIPMAP_API_KEY", " otm ", "upstream.opentripmap_key", "otm"},
		{"SITEMAP_CITIES", "Utrecht, ,Leiden", "site.cities", []string{"Utrecht", "Leiden"}},
		{"DB_PASSWORD", "   ", "", nil},
		{"HOME", "/root", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			path, value := envValue(tt.key, tt.value)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
