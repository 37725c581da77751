package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. Repositories branch on it instead of on
// driver specific error codes.
type ErrorClassification int

const (
	// ClassOther is the default classification for unrecognised errors.
	ClassOther ErrorClassification = iota

	// ClassUniqueViolation marks an INSERT or UPDATE rejected by a unique
	// constraint.
	ClassUniqueViolation

	// ClassConnection marks a lost or refused database connection.
	ClassConnection
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not a
// PostgreSQL driver error, [ClassOther] is returned.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return ClassOther
	}

	switch postgresError(err) {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.CannotConnectNow:
		return ClassConnection
	}

	return ClassOther
}

// String implements [fmt.Stringer] for structured log fields.
func (c ErrorClassification) String() string {
	switch c {
	case ClassUniqueViolation:
		return "unique_violation"
	case ClassConnection:
		return "connection"
	default:
		return "other"
	}
}
