package services

import (
	"context"
	"database/sql"

	"github.com/username/aktienportfolio/backend/src/logger"
	"github.com/username/aktienportfolio/backend/src/models"
)

type sqlExecutor struct {
	db *sql.DB
}

// NewQueryExecutor returns an executor that takes a dedicated connection from db for every call.
func NewQueryExecutor(db *sql.DB) QueryExecutor {
	return &sqlExecutor{db: db}
}

func (e *sqlExecutor) Execute(ctx context.Context, query string) (*models.QueryResult, error) {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	results := []map[string]any{}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, &QueryError{Err: err}
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}

	logger.FromContext(ctx).Debug("Query executed", "columns", len(columns), "rows", len(results))
	return &models.QueryResult{
		Columns:  columns,
		Results:  results,
		RowCount: len(results),
	}, nil
}

// normalizeValue maps driver values onto JSON-friendly types.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	default:
		return val
	}
}
