// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from .env files and
// environment variables.
type Config struct {
	Region       string `mapstructure:"AWS_REGION"`
	Table        string `mapstructure:"DYNAMODB_TABLE"`
	Endpoint     string `mapstructure:"DYNAMODB_ENDPOINT"`
	KeyAttribute string `mapstructure:"DYNAMODB_KEY_ATTRIBUTE"`
	CreateTable  bool   `mapstructure:"DYNAMODB_CREATE_TABLE"`

	SeedSource    string  `mapstructure:"SEED_SOURCE"`
	SeedWriteRate float64 `mapstructure:"SEED_WRITE_RATE"`

	MinIOEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinIOAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinIOSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinIOUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"AWS_REGION":             "us-east-1",
	"DYNAMODB_TABLE":         "giftapp-data",
	"DYNAMODB_ENDPOINT":      "",
	"DYNAMODB_KEY_ATTRIBUTE": "id",
	"DYNAMODB_CREATE_TABLE":  false,
	"SEED_SOURCE":            "util/import-mongo/gifts.json",
	"SEED_WRITE_RATE":        0.0,
	"MINIO_ENDPOINT":         "",
	"MINIO_ACCESS_KEY":       "",
	"MINIO_SECRET_KEY":       "",
	"MINIO_USE_SSL":          false,
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "text",
}

// Load reads configuration from the environment. envFiles are loaded into
// the process environment first without overriding variables that are
// already set; with no envFiles, ./.env is loaded if present.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("config: load %s: %w", strings.Join(envFiles, ", "), err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Table == "" {
		return errors.New("config: DYNAMODB_TABLE must not be empty")
	}
	if c.Region == "" {
		return errors.New("config: AWS_REGION must not be empty")
	}
	if c.SeedWriteRate < 0 {
		return fmt.Errorf("config: SEED_WRITE_RATE must not be negative, got %v", c.SeedWriteRate)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	loc, err := ParseSeedLocation(c.SeedSource)
	if err != nil {
		return err
	}
	if loc.Scheme == SchemeMinIO && c.MinIOEndpoint == "" {
		return errors.New("config: MINIO_ENDPOINT is required for minio:// seed sources")
	}
	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Scheme identifies where the seed document is stored.
type Scheme string

const (
	SchemeFile  Scheme = "file"
	SchemeS3    Scheme = "s3"
	SchemeMinIO Scheme = "minio"
)

// SeedLocation is a parsed SEED_SOURCE value.
type SeedLocation struct {
	Scheme Scheme
	Path   string // SchemeFile
	Bucket string // SchemeS3, SchemeMinIO
	Key    string // SchemeS3, SchemeMinIO
}

// ParseSeedLocation parses a plain path, file://path, s3://bucket/key or
// minio://bucket/key.
func ParseSeedLocation(raw string) (SeedLocation, error) {
	if raw == "" {
		return SeedLocation{}, errors.New("config: SEED_SOURCE must not be empty")
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return SeedLocation{Scheme: SchemeFile, Path: raw}, nil
	}

	switch Scheme(strings.ToLower(scheme)) {
	case SchemeFile:
		if rest == "" {
			return SeedLocation{}, fmt.Errorf("config: SEED_SOURCE %q has no path", raw)
		}
		return SeedLocation{Scheme: SchemeFile, Path: rest}, nil
	case SchemeS3, SchemeMinIO:
		u, err := url.Parse(raw)
		if err != nil {
			return SeedLocation{}, fmt.Errorf("config: SEED_SOURCE: %w", err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return SeedLocation{}, fmt.Errorf("config: SEED_SOURCE %q must be %s://bucket/key", raw, scheme)
		}
		return SeedLocation{Scheme: Scheme(strings.ToLower(scheme)), Bucket: u.Host, Key: key}, nil
	default:
		return SeedLocation{}, fmt.Errorf("config: SEED_SOURCE scheme %q is not supported", scheme)
	}
}
