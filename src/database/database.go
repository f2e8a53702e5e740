package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/username/aktienportfolio/backend/src/logger"
	_ "modernc.org/sqlite"
)

// AnchorTable is counted to decide whether the sample data still has to be loaded.
const AnchorTable = "Unternehmen"

var (
	//go:embed sql/schema.sql
	SchemaSQL string

	//go:embed sql/sample_data.sql
	SampleDataSQL string
)

// InitDB opens the SQLite store at databasePath, creating its directory when needed.
// Every pooled connection enforces foreign keys.
func InitDB(databasePath string) (*sql.DB, error) {
	if dir := filepath.Dir(databasePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn(databasePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", databasePath, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database at %s: %w", databasePath, err)
	}
	return db, nil
}

func dsn(databasePath string) string {
	return "file:" + databasePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// LoadScripts returns the schema and seed scripts. Empty paths select the embedded copies.
func LoadScripts(schemaPath, seedPath string) (schema, seed string, err error) {
	schema, seed = SchemaSQL, SampleDataSQL
	if schemaPath != "" {
		b, err := os.ReadFile(schemaPath)
		if err != nil {
			return "", "", fmt.Errorf("failed to read schema script: %w", err)
		}
		schema = string(b)
	}
	if seedPath != "" {
		b, err := os.ReadFile(seedPath)
		if err != nil {
			return "", "", fmt.Errorf("failed to read seed script: %w", err)
		}
		seed = string(b)
	}
	return schema, seed, nil
}

// Initialize applies the schema script and, while the anchor table is empty, the seed script.
// It reports whether the seed script ran. Calling it again on a populated store changes nothing.
func Initialize(ctx context.Context, db *sql.DB, schemaSQL, seedSQL string) (bool, error) {
	log := logger.FromContext(ctx)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		log.Error("failed to apply schema script", "error", err)
		return false, fmt.Errorf("failed to apply schema script: %w", err)
	}
	log.Info("Database tables ensured/created.")

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+AnchorTable).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count rows in %s: %w", AnchorTable, err)
	}
	if count > 0 {
		log.Info("Existing data found, skipping sample data", "anchorTable", AnchorTable, "rows", count)
		return false, nil
	}
	if seedSQL == "" {
		log.Info("No sample data script configured")
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, seedSQL); err != nil {
		log.Error("failed to apply sample data script", "error", err)
		return false, fmt.Errorf("failed to apply sample data script: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing sample data: %w", err)
	}
	log.Info("Sample data loaded.")
	return true, nil
}
