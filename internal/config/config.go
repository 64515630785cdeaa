package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"ndbc-data/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Logging logging.Config `mapstructure:"logging"`
	NDBC    NDBCConfig     `mapstructure:"ndbc"`
	Output  OutputConfig   `mapstructure:"output"`
	Fetch   FetchConfig    `mapstructure:"fetch"`
	Watch   WatchConfig    `mapstructure:"watch"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// NDBCConfig covers access to the NDBC web endpoints.
type NDBCConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// OutputConfig governs where and how station tables are written.
type OutputConfig struct {
	Dir             string `mapstructure:"dir"`
	Format          string `mapstructure:"format"`
	UpdateGitignore bool   `mapstructure:"update_gitignore"`
}

// FetchConfig tunes per-run station processing.
type FetchConfig struct {
	Workers int `mapstructure:"workers"`
}

// WatchConfig drives the periodic refresh loop.
type WatchConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	AlignToBucket bool          `mapstructure:"align_to_bucket"`
	StartupDelay  time.Duration `mapstructure:"startup_delay"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NDBCDATA")
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
	v.SetDefault("app.name", "ndbc-data")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("ndbc.base_url", "https://www.ndbc.noaa.gov")
	v.SetDefault("ndbc.request_timeout", "30s")
	v.SetDefault("ndbc.user_agent", "ndbc-data/1.0")

	v.SetDefault("output.dir", "data")
	v.SetDefault("output.format", "parquet")
	v.SetDefault("output.update_gitignore", true)

	v.SetDefault("fetch.workers", 4)

	v.SetDefault("watch.interval", "1h")
	v.SetDefault("watch.align_to_bucket", true)
	v.SetDefault("watch.startup_delay", "0s")
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
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	switch c.Output.Format {
	case "parquet", "csv":
	default:
		return fmt.Errorf("output.format must be parquet or csv, got %q", c.Output.Format)
	}
	if c.Fetch.Workers <= 0 {
		return fmt.Errorf("fetch.workers must be greater than zero")
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be greater than zero")
	}
	return nil
}
