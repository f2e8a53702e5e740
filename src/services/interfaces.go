package services

import (
	"context"

	"github.com/username/aktienportfolio/backend/src/models"
)

// QueryExecutor runs a single SQL statement and returns its tabular result.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) (*models.QueryResult, error)
}

// ReportService defines the read-only reporting operations exposed over HTTP.
type ReportService interface {
	ListQueries() []models.QuerySummary
	RunCatalogueQuery(ctx context.Context, id string) (*models.CatalogueResult, error)
	RunCustomQuery(ctx context.Context, query string) (*models.QueryResult, error)
	GetSchema(ctx context.Context) (map[string]models.TableSchema, error)
	GetStatistics(ctx context.Context) (*models.Statistics, error)
	Ping(ctx context.Context) error
}
