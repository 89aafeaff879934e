package config

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/criswit/bai2/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envDBPath, envMongoURI, envMongoDatabase, envSecretName, envAWSRegion, envOutput, envLogLevel} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{"HOME": "/custom/home"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, filepath.Join("/custom/home", ".bai2", "bai2.db"), cfg.DBPath)
				assert.Equal(t, "", cfg.MongoURI)
				assert.Equal(t, "bai2", cfg.MongoDatabase)
				assert.Equal(t, "", cfg.SecretName)
				assert.Equal(t, "", cfg.AWSRegion)
				assert.Equal(t, "table", cfg.Output)
			},
		},
		{
			name: "environment_overrides",
			env: map[string]string{
				envDBPath:        "/tmp/statements.db",
				envMongoURI:      "mongodb://localhost:27017",
				envMongoDatabase: "treasury",
				envSecretName:    "bai2-store",
				envAWSRegion:     "us-east-1",
				envOutput:        "json",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/statements.db", cfg.DBPath)
				assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
				assert.Equal(t, "treasury", cfg.MongoDatabase)
				assert.Equal(t, "bai2-store", cfg.SecretName)
				assert.Equal(t, "us-east-1", cfg.AWSRegion)
				assert.Equal(t, "json", cfg.Output)
			},
		},
		{
			name: "whitespace_values_use_defaults",
			env:  map[string]string{envOutput: "   ", envMongoDatabase: "\t"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "table", cfg.Output)
				assert.Equal(t, "bai2", cfg.MongoDatabase)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := Load(context.Background())
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadLogsDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envDBPath, "/tmp/statements.db")

	buf := &bytes.Buffer{}
	ctx := logger.WithContext(context.Background(), logger.NewJSON("debug", buf))

	Load(ctx)

	output := buf.String()
	assert.Contains(t, output, "Using database path from environment variable")
	assert.Contains(t, output, `"key":"BAI2_MONGO_DATABASE"`)
	assert.Contains(t, output, `"default":"bai2"`)
}

func TestDefaultLogLevel(t *testing.T) {
	t.Setenv(envLogLevel, "")
	assert.Equal(t, "warn", DefaultLogLevel())

	t.Setenv(envLogLevel, "info")
	assert.Equal(t, "info", DefaultLogLevel())
}
