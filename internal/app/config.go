package app

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port               int           `yaml:"port"`
	Env                string        `yaml:"env"`
	DB                 DBConfig      `yaml:"db"`
	OtelCollectorUrl   string        `yaml:"otelCollectorUrl"`
	OtelSampleRatio    float64       `yaml:"otelSampleRatio"`
	OtelMetricInterval time.Duration `yaml:"otelMetricInterval"`
}

type DBConfig struct {
	DSN          string        `yaml:"dsn"`
	MaxOpenConns int           `yaml:"maxOpenConns"`
	MaxIdleTime  time.Duration `yaml:"maxIdleTime"`
	Migrate      bool          `yaml:"migrate"`
}

func defaultConfig() Config {
	return Config{
		Port: 3000,
		Env:  "dev",
		DB: DBConfig{
			MaxOpenConns: 25,
			MaxIdleTime:  15 * time.Minute,
			Migrate:      true,
		},
		OtelSampleRatio:    1,
		OtelMetricInterval: 15 * time.Second,
	}
}

// parseConfig reads the command line. Values from the -config file replace
// the defaults and flags given explicitly replace both.
func parseConfig(fs *flag.FlagSet, args []string) (Config, bool, error) {
	cfg := defaultConfig()

	var flags Config

	fs.IntVar(&flags.Port, "port", cfg.Port, "server port")
	fs.StringVar(&flags.Env, "env", cfg.Env, "Environment (dev|staging|prod)")

	fs.StringVar(&flags.DB.DSN, "db-dsn", cfg.DB.DSN, "PostgreSQL DSN")
	fs.IntVar(&flags.DB.MaxOpenConns, "db-max-open-conns", cfg.DB.MaxOpenConns, "PostgreSQL max open connections")
	fs.DurationVar(&flags.DB.MaxIdleTime, "db-max-idle-time", cfg.DB.MaxIdleTime, "PostgreSQL max idle time for connections")
	fs.BoolVar(&flags.DB.Migrate, "db-migrate", cfg.DB.Migrate, "Apply database migrations on startup")

	fs.StringVar(&flags.OtelCollectorUrl, "otel-collector-url", cfg.OtelCollectorUrl, "OpenTelemetry collector gRPC endpoint")
	fs.Float64Var(&flags.OtelSampleRatio, "otel-sample-ratio", cfg.OtelSampleRatio, "Fraction of root traces sampled (0..1)")
	fs.DurationVar(&flags.OtelMetricInterval, "otel-metric-interval", cfg.OtelMetricInterval, "Interval between metric exports")

	configFile := fs.String("config", "", "Path to a YAML configuration file")
	displayVersion := fs.Bool("version", false, "Display version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}

	if *configFile == "" {
		return flags, *displayVersion, nil
	}

	if err := loadConfigFile(*configFile, &cfg); err != nil {
		return Config{}, false, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = flags.Port
		case "env":
			cfg.Env = flags.Env
		case "db-dsn":
			cfg.DB.DSN = flags.DB.DSN
		case "db-max-open-conns":
			cfg.DB.MaxOpenConns = flags.DB.MaxOpenConns
		case "db-max-idle-time":
			cfg.DB.MaxIdleTime = flags.DB.MaxIdleTime
		case "db-migrate":
			cfg.DB.Migrate = flags.DB.Migrate
		case "otel-collector-url":
			cfg.OtelCollectorUrl = flags.OtelCollectorUrl
		case "otel-sample-ratio":
			cfg.OtelSampleRatio = flags.OtelSampleRatio
		case "otel-metric-interval":
			cfg.OtelMetricInterval = flags.OtelMetricInterval
		}
	})

	return cfg, *displayVersion, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
