// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/migrations"
)

// Dialect names the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is a database handle shared by all repositories. It carries the query
// builder and error classifier matching its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings the database described by cfg.DSN. The
// dialect is inferred from the DSN: "file:", "sqlite://", ":memory:" and
// *.db / *.sqlite paths open sqlite, everything else is handed to pgx.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn := DialectFromDSN(cfg.DSN)

	var (
		db  *DB
		err error
	)
	switch dialect {
	case DialectPostgres:
		db, err = newConnectPostgres(ctx, dsn, log)
	case DialectSQLite:
		db, err = newConnectSQLite(ctx, dsn, log)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDialect, cfg.DSN)
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("func", "NewConnect").Str("dialect", string(dialect)).Msg("connected to database successfully")
	return db, nil
}

// DialectFromDSN infers the dialect of dsn and returns the DSN in the form
// its driver expects.
func DialectFromDSN(dsn string) (Dialect, string) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:",
		strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return DialectSQLite, dsn
	default:
		return DialectPostgres, dsn
	}
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect reports the SQL flavour of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the schema owned by set.
func (db *DB) Migrate(set migrations.Set) error {
	return migrations.Migrate(db.DB, string(db.dialect), set)
}
