// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package migrations

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose queries the db itself; sqlmock rejects every unexpected call
	err = Migrate(db, DialectPostgres, SetUsers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres, SetUsers)
	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownSetOrDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.ErrorIs(t, Migrate(db, DialectPostgres, Set("billing")), ErrUnknownSet)
	assert.ErrorIs(t, Migrate(db, "mysql", SetGoals), ErrUnknownDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DialectSQLite, SetUsers))
	require.NoError(t, Migrate(db, DialectSQLite, SetGoals))

	// applying twice is a no-op
	require.NoError(t, Migrate(db, DialectSQLite, SetGoals))

	for _, table := range []string{"users", "goals", "goose_db_version_users", "goose_db_version_goals"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrationsDir(t *testing.T) {
	dir, err := migrationsDir(DialectPostgres, SetGoals)
	require.NoError(t, err)
	assert.Equal(t, "postgres/goals", dir)

	dir, err = migrationsDir(DialectSQLite, SetUsers)
	require.NoError(t, err)
	assert.Equal(t, "sqlite/users", dir)
}

func TestPostgresMigrations_Use64BitKeys(t *testing.T) {
	serial := regexp.MustCompile(`(?m)^\s*id\s+SERIAL\b`)
	intUserID := regexp.MustCompile(`(?m)^\s*user_id\s+INTEGER\b`)

	for _, file := range []string{
		"postgres/users/00001_create_users.sql",
		"postgres/goals/00001_create_goals.sql",
	} {
		raw, err := embedMigrations.ReadFile(file)
		require.NoError(t, err, file)
		ddl := string(raw)

		assert.Regexp(t, `(?m)^\s*id\s+BIGSERIAL PRIMARY KEY`, ddl, file)
		assert.NotRegexp(t, serial, ddl, file)
		assert.NotRegexp(t, intUserID, ddl, file)
	}

	raw, err := embedMigrations.ReadFile("postgres/goals/00001_create_goals.sql")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^\s*user_id\s+BIGINT\s+NOT NULL`, string(raw))
}

func TestMigrate_SQLite_LargeUserID(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DialectSQLite, SetGoals))

	const userID int64 = 9_999_999_999
	_, err = db.Exec(`INSERT INTO goals (title, start_date, deadline, user_id) VALUES ('g', '2026-01-01', '2026-02-01', ?)`, userID)
	require.NoError(t, err)

	var got int64
	require.NoError(t, db.QueryRow(`SELECT user_id FROM goals`).Scan(&got))
	assert.Equal(t, userID, got)
}
