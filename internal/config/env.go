// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded into the process environment when present.
// Variables that are already set are not overwritten.
const dotEnvFile = ".env"

// legacyEnv holds the unprefixed variable names used by the original
// deployment of both services.
type legacyEnv struct {
	Port        string `env:"PORT"`
	JWTSecret   string `env:"JWT_SECRET"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseLegacyEnv maps PORT, JWT_SECRET and DATABASE_URL onto a
// [StructuredConfig].
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App:     App{TokenSignKey: legacy.JWTSecret},
		Storage: Storage{DB: DB{DSN: legacy.DatabaseURL}},
	}
	if port := strings.TrimSpace(legacy.Port); port != "" {
		cfg.Server.HTTPAddress = ":" + strings.TrimPrefix(port, ":")
	}

	return cfg, nil
}

// loadDotEnv loads path into the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}
