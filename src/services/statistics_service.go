package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/username/aktienportfolio/backend/src/models"
)

func (s *reportServiceImpl) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("error acquiring connection: %w", err)
	}
	defer conn.Close()

	var stats models.Statistics
	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM Investor", &stats.TotalInvestors},
		{"SELECT COUNT(*) FROM Depot", &stats.TotalDepots},
		{"SELECT COUNT(*) FROM Depot WHERE Status = 'Aktiv'", &stats.ActiveDepots},
		{"SELECT COUNT(*) FROM Aktie", &stats.TotalStocks},
		{"SELECT COUNT(*) FROM Unternehmen", &stats.TotalCompanies},
		{"SELECT COUNT(*) FROM Transaktionen", &stats.TotalTransactions},
		{"SELECT COUNT(DISTINCT Land) FROM Unternehmen", &stats.Countries},
		{"SELECT COUNT(DISTINCT Branche) FROM Unternehmen", &stats.Industries},
	}
	for _, c := range counts {
		if err := conn.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("error running %q: %w", c.query, err)
		}
	}

	// SUM over no rows is NULL and is reported as zero.
	var volume sql.NullFloat64
	if err := conn.QueryRowContext(ctx, "SELECT ROUND(SUM(Gesamtwert), 2) FROM Transaktionen").Scan(&volume); err != nil {
		return nil, fmt.Errorf("error summing transaction volume: %w", err)
	}
	stats.TotalVolume = volume.Float64

	return &stats, nil
}
