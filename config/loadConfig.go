package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/criswit/bai2/logger"
)

const (
	defaultDBFile        = ".bai2/bai2.db"
	defaultMongoDatabase = "bai2"
	defaultOutput        = "table"
	defaultLogLevel      = "warn"
	envDBPath            = "BAI2_DB_PATH"
	envMongoURI          = "BAI2_MONGO_URI"
	envMongoDatabase     = "BAI2_MONGO_DATABASE"
	envSecretName        = "BAI2_SECRET_NAME"
	envAWSRegion         = "BAI2_AWS_REGION"
	envOutput            = "BAI2_OUTPUT"
	envLogLevel          = "BAI2_LOG_LEVEL"
)

// Load reads the configuration from environment variables, falling back to defaults.
// Each fallback is logged at debug level through the context logger.
func Load(ctx context.Context) *Config {
	return &Config{
		DBPath:        dbPath(ctx),
		MongoURI:      getEnv(ctx, envMongoURI, ""),
		MongoDatabase: getEnv(ctx, envMongoDatabase, defaultMongoDatabase),
		SecretName:    getEnv(ctx, envSecretName, ""),
		AWSRegion:     getEnv(ctx, envAWSRegion, ""),
		Output:        getEnv(ctx, envOutput, defaultOutput),
	}
}

// DefaultLogLevel returns the log level from the environment before any logger exists.
func DefaultLogLevel() string {
	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		return level
	}
	return defaultLogLevel
}

func getEnv(ctx context.Context, key, fallback string) string {
	log := logger.FromContext(ctx)

	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		log.Debug().Str("key", key).Str("default", fallback).Msg("Using default value")
		return fallback
	}
	log.Debug().Str("key", key).Msg("Using value from environment variable")
	return value
}

// dbPath places the SQLite file under the home directory unless BAI2_DB_PATH is set.
func dbPath(ctx context.Context) string {
	log := logger.FromContext(ctx)

	if path := strings.TrimSpace(os.Getenv(envDBPath)); path != "" {
		log.Debug().Str("path", path).Msg("Using database path from environment variable")
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("Could not resolve home directory, using working directory")
		return filepath.Base(defaultDBFile)
	}
	path := filepath.Join(homeDir, defaultDBFile)
	log.Debug().Str("path", path).Msg("Using default database path")
	return path
}
