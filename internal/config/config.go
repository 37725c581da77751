// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package config

import (
	"time"
)

// Role identifies which binary is loading the configuration. Defaults and
// validation rules differ per role.
type Role string

const (
	// RoleUserService is the registration/login service.
	RoleUserService Role = "user-service"
	// RoleGoalService is the goal CRUD service.
	RoleGoalService Role = "goal-service"
)

// Default listening addresses of the two services.
const (
	DefaultUserServiceAddress = ":3008"
	DefaultGoalServiceAddress = ":3009"
)

// Accepted range of the bcrypt work factor. MaxBcryptCost matches
// bcrypt.MaxCost; higher values make hashing fail outright.
const (
	MinBcryptCost = 10
	MaxBcryptCost = 31
)

// StructuredConfig is the top-level configuration container shared by the
// user and goal services. It is populated by merging role defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key
	// and the password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the addresses goalctl uses to reach both services.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the process-wide HMAC secret used to sign session
	// tokens. Required by the user service.
	// Env: APP_TOKEN_SIGN_KEY (legacy: JWT_SECRET)
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// BcryptCost is the bcrypt work factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format; the host may be empty.
	// Env: SERVER_ADDRESS (legacy: PORT)
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL/keyword string or a sqlite DSN
	// ("file:goals.db", ":memory:", "sqlite://path").
	// Env: STORAGE_DB_DATABASE_URI (legacy: DATABASE_URL)
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client side view of both services.
type Adapter struct {
	// UserServiceAddress is the base URL of the user service.
	// Env: ADAPTER_USER_SERVICE_ADDRESS
	UserServiceAddress string `env:"USER_SERVICE_ADDRESS"`

	// GoalServiceAddress is the base URL of the goal service.
	// Env: ADAPTER_GOAL_SERVICE_ADDRESS
	GoalServiceAddress string `env:"GOAL_SERVICE_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the session token goalctl falls back to when no user id
	// is given on the command line.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the configuration of a
// service in the following priority order (last source wins for non-zero
// fields):
//  1. Role defaults
//  2. Environment variables (after loading an optional .env file)
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(role Role, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults(role).
		withEnv().
		withFlags(args).
		withJSON().
		build(role)
}

// defaults returns the baseline configuration for role.
func defaults(role Role) *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			BcryptCost: MinBcryptCost,
			LogLevel:   "debug",
			Version:    "dev",
		},
		Server: Server{
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			UserServiceAddress: "http://localhost" + DefaultUserServiceAddress,
			GoalServiceAddress: "http://localhost" + DefaultGoalServiceAddress,
			RequestTimeout:     10 * time.Second,
		},
	}

	switch role {
	case RoleUserService:
		cfg.Server.HTTPAddress = DefaultUserServiceAddress
	case RoleGoalService:
		cfg.Server.HTTPAddress = DefaultGoalServiceAddress
	}

	return cfg
}
