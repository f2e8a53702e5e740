package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/username/aktienportfolio/backend/src/catalogue"
	"github.com/username/aktienportfolio/backend/src/logger"
	"github.com/username/aktienportfolio/backend/src/models"
	"github.com/username/aktienportfolio/backend/src/security/validation"
)

type reportServiceImpl struct {
	db       *sql.DB
	executor QueryExecutor
}

func NewReportService(db *sql.DB, executor QueryExecutor) ReportService {
	return &reportServiceImpl{
		db:       db,
		executor: executor,
	}
}

func (s *reportServiceImpl) ListQueries() []models.QuerySummary {
	all := catalogue.All()
	out := make([]models.QuerySummary, 0, len(all))
	for _, q := range all {
		out = append(out, models.QuerySummary{ID: q.ID, Name: q.Name, Description: q.Description})
	}
	return out
}

func (s *reportServiceImpl) RunCatalogueQuery(ctx context.Context, id string) (*models.CatalogueResult, error) {
	q, ok := catalogue.Lookup(id)
	if !ok {
		return nil, ErrQueryNotFound
	}

	logger.FromContext(ctx).Info("Running catalogue query", "queryID", id)
	result, err := s.executor.Execute(ctx, q.SQL)
	if err != nil {
		return nil, err
	}
	return &models.CatalogueResult{
		Name:        q.Name,
		Description: q.Description,
		Query:       q.Text(),
		QueryResult: *result,
	}, nil
}

// IsSelect reports whether query passes the SELECT-prefix allow-list.
// This is a textual check only; it does not parse the statement.
func IsSelect(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT")
}

func (s *reportServiceImpl) RunCustomQuery(ctx context.Context, query string) (*models.QueryResult, error) {
	query, err := validation.NormalizeQuery(query)
	if err != nil {
		return nil, err
	}
	if !IsSelect(query) {
		return nil, ErrNotSelect
	}

	logger.FromContext(ctx).Info("Running custom query", "length", len(query))
	return s.executor.Execute(ctx, query)
}

func (s *reportServiceImpl) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
