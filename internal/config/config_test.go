package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"AWS_REGION", "DYNAMODB_TABLE", "DYNAMODB_ENDPOINT", "DYNAMODB_KEY_ATTRIBUTE",
	"DYNAMODB_CREATE_TABLE", "SEED_SOURCE", "SEED_WRITE_RATE", "MINIO_ENDPOINT",
	"MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_USE_SSL", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every key; viper treats empty variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "giftapp-data", cfg.Table)
	assert.Empty(t, cfg.Endpoint)
	assert.Equal(t, "id", cfg.KeyAttribute)
	assert.False(t, cfg.CreateTable)
	assert.Equal(t, "util/import-mongo/gifts.json", cfg.SeedSource)
	assert.Zero(t, cfg.SeedWriteRate)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_REGION", "eu-central-1")
	t.Setenv("DYNAMODB_TABLE", "gifts-test")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("DYNAMODB_CREATE_TABLE", "true")
	t.Setenv("SEED_SOURCE", "s3://seed-bucket/gifts.json.gz")
	t.Setenv("SEED_WRITE_RATE", "25")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, "gifts-test", cfg.Table)
	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
	assert.True(t, cfg.CreateTable)
	assert.Equal(t, "s3://seed-bucket/gifts.json.gz", cfg.SeedSource)
	assert.InDelta(t, 25.0, cfg.SeedWriteRate, 0)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that already exist, even empty ones.
	require.NoError(t, os.Unsetenv("DYNAMODB_TABLE"))
	require.NoError(t, os.Unsetenv("SEED_SOURCE"))
	t.Cleanup(func() {
		_ = os.Unsetenv("DYNAMODB_TABLE")
		_ = os.Unsetenv("SEED_SOURCE")
	})

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DYNAMODB_TABLE=from-file\nSEED_SOURCE=file:///data/gifts.json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Table)
	assert.Equal(t, "file:///data/gifts.json", cfg.SeedSource)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative rate", "SEED_WRITE_RATE", "-1"},
		{"bad level", "LOG_LEVEL", "loud"},
		{"bad format", "LOG_FORMAT", "xml"},
		{"bad scheme", "SEED_SOURCE", "ftp://host/gifts.json"},
		{"minio without endpoint", "SEED_SOURCE", "minio://bucket/gifts.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_EmptyTable(t *testing.T) {
	cfg := &Config{Region: "us-east-1", Table: "giftapp-data", SeedSource: "gifts.json", LogLevel: "info", LogFormat: "text"}
	require.NoError(t, cfg.Validate())

	cfg.Table = ""
	assert.Error(t, cfg.Validate())
}

func TestParseSeedLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want SeedLocation
	}{
		{"util/import-mongo/gifts.json", SeedLocation{Scheme: SchemeFile, Path: "util/import-mongo/gifts.json"}},
		{"file:///var/seed/gifts.json", SeedLocation{Scheme: SchemeFile, Path: "/var/seed/gifts.json"}},
		{"s3://seed-bucket/data/gifts.json", SeedLocation{Scheme: SchemeS3, Bucket: "seed-bucket", Key: "data/gifts.json"}},
		{"minio://seed/gifts.json.zst", SeedLocation{Scheme: SchemeMinIO, Bucket: "seed", Key: "gifts.json.zst"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSeedLocation(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeedLocation_Errors(t *testing.T) {
	for _, raw := range []string{"", "file://", "s3://bucket", "s3:///key", "http://host/gifts.json"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseSeedLocation(raw)
			assert.Error(t, err)
		})
	}
}
