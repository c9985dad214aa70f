package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"quickprice/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  logging.Config `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Export   ExportConfig   `mapstructure:"export"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig encapsulates PostgreSQL connectivity for the rate-sheet
// and quote stores. An empty DSN disables persistence.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsPath  string        `mapstructure:"migrations_path"`
}

// PricingConfig tunes the engine: the visible price band, the par target,
// the per-class tier cutoffs, and the margin applied to imported sheets that
// do not set one.
type PricingConfig struct {
	BandLower             float64 `mapstructure:"band_lower"`
	BandUpper             float64 `mapstructure:"band_upper"`
	ParTarget             float64 `mapstructure:"par_target"`
	DSCRTierCutoff        float64 `mapstructure:"dscr_tier_cutoff"`
	StandardTierCutoff    float64 `mapstructure:"standard_tier_cutoff"`
	DefaultMarginHoldback float64 `mapstructure:"default_margin_holdback"`
}

// ExportConfig sets CLI export behaviour.
type ExportConfig struct {
	ChartWidth  int `mapstructure:"chart_width"`
	ChartHeight int `mapstructure:"chart_height"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QUICKPRICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "quickprice")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("pricing.band_lower", 99.0)
	v.SetDefault("pricing.band_upper", 101.0)
	v.SetDefault("pricing.par_target", 100.0)
	v.SetDefault("pricing.dscr_tier_cutoff", 250000.0)
	v.SetDefault("pricing.standard_tier_cutoff", 1000000.0)
	v.SetDefault("pricing.default_margin_holdback", -1.625)

	v.SetDefault("export.chart_width", 1280)
	v.SetDefault("export.chart_height", 720)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrations_path", "migrations")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Pricing.BandLower >= c.Pricing.BandUpper {
		return fmt.Errorf("pricing.band_lower must be below pricing.band_upper")
	}
	if c.Pricing.ParTarget < c.Pricing.BandLower || c.Pricing.ParTarget > c.Pricing.BandUpper {
		return fmt.Errorf("pricing.par_target must lie within the price band")
	}
	if c.Pricing.DSCRTierCutoff <= 0 {
		return fmt.Errorf("pricing.dscr_tier_cutoff must be greater than zero")
	}
	if c.Pricing.StandardTierCutoff <= 0 {
		return fmt.Errorf("pricing.standard_tier_cutoff must be greater than zero")
	}
	if c.Export.ChartWidth <= 0 || c.Export.ChartHeight <= 0 {
		return fmt.Errorf("export.chart_width and export.chart_height must be greater than zero")
	}
	return nil
}
