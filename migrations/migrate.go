// Package migrations embeds the SQL schema of both services and applies it
// with goose.
//
// Migrations are grouped by dialect and by set: the user service owns the
// "users" set, the goal service owns the "goals" set. Each set keeps its own
// goose version table, so both services can share one database or run
// against separate ones.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
)

// Set names a group of migrations owned by one service.
type Set string

const (
	// SetUsers holds the credential store schema.
	SetUsers Set = "users"
	// SetGoals holds the goal store schema.
	SetGoals Set = "goals"
)

// Dialects understood by [Migrate].
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var (
	ErrNilDB          = errors.New("db is nil")
	ErrUnknownSet     = errors.New("unknown migration set")
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

//go:embed postgres/*/*.sql sqlite/*/*.sql
var embedMigrations embed.FS

// goose keeps its settings in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of set to db.
func Migrate(db *sql.DB, dialect string, set Set) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, err := migrationsDir(dialect, set)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName(versionTable(set))

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string, set Set) (string, error) {
	if set != SetUsers && set != SetGoals {
		return "", fmt.Errorf("%w: %q", ErrUnknownSet, set)
	}

	switch dialect {
	case DialectPostgres:
		return path.Join("postgres", string(set)), nil
	case DialectSQLite:
		return path.Join("sqlite", string(set)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}

func versionTable(set Set) string {
	return "goose_db_version_" + string(set)
}
