package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "quickprice", cfg.App.Name)
	require.Equal(t, "info", cfg.Logging.Level)

	require.InDelta(t, 99.0, cfg.Pricing.BandLower, 1e-9)
	require.InDelta(t, 101.0, cfg.Pricing.BandUpper, 1e-9)
	require.InDelta(t, 100.0, cfg.Pricing.ParTarget, 1e-9)
	require.InDelta(t, 250000.0, cfg.Pricing.DSCRTierCutoff, 1e-9)
	require.InDelta(t, 1000000.0, cfg.Pricing.StandardTierCutoff, 1e-9)
	require.InDelta(t, -1.625, cfg.Pricing.DefaultMarginHoldback, 1e-9)

	require.Equal(t, 1280, cfg.Export.ChartWidth)
	require.Empty(t, cfg.Database.DSN)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
logging:
  level: debug
pricing:
  band_lower: 98.5
  band_upper: 101.5
database:
  dsn: postgres://localhost/quickprice
  conn_max_lifetime: 5m
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.InDelta(t, 98.5, cfg.Pricing.BandLower, 1e-9)
	require.InDelta(t, 101.5, cfg.Pricing.BandUpper, 1e-9)
	require.Equal(t, "postgres://localhost/quickprice", cfg.Database.DSN)
	require.Equal(t, "5m0s", cfg.Database.ConnMaxLifetime.String())

	// untouched keys keep defaults
	require.InDelta(t, 100.0, cfg.Pricing.ParTarget, 1e-9)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("QUICKPRICE_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	good, err := Load("")
	require.NoError(t, err)

	t.Run("inverted band", func(t *testing.T) {
		cfg := *good
		cfg.Pricing.BandLower = 102
		require.Error(t, cfg.Validate())
	})

	t.Run("par outside band", func(t *testing.T) {
		cfg := *good
		cfg.Pricing.ParTarget = 98
		require.Error(t, cfg.Validate())
	})

	t.Run("zero cutoff", func(t *testing.T) {
		cfg := *good
		cfg.Pricing.DSCRTierCutoff = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("bad chart size", func(t *testing.T) {
		cfg := *good
		cfg.Export.ChartWidth = 0
		require.Error(t, cfg.Validate())
	})
}
