package pg

import (
	"errors"

	"github.com/lib/pq"
)

type ErrorClassification int

const (
	Statement ErrorClassification = iota
	Connection
)

// PostgresErrorClassifier tells connection-level failures apart from
// statement-level ones. The dashboard never retries, but a connection-class
// failure means the whole backend is gone and is logged as such.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Statement
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyPgError(pqErr)
	}

	return Statement
}

func classifyPgError(pqErr *pq.Error) ErrorClassification {
	// PostgreSQL error codes: https://www.postgresql.org/docs/current/errcodes-appendix.html

	switch pqErr.Code {
	// Class 08 - connection exceptions
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Connection

	// Class 57 - operator intervention (server shutting down etc.)
	case "57P01", "57P02", "57P03":
		return Connection
	}

	return Statement
}
