package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seededTables = []string{
	"Investor", "Telefonnummer", "Depot", "Unternehmen",
	"Aktie", "Kursverlauf", "Transaktionen", "HistorischerDepotwert",
}

func rowCounts(t *testing.T, db *sql.DB) map[string]int {
	t.Helper()
	counts := make(map[string]int, len(seededTables))
	for _, table := range seededTables {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
		counts[table] = n
	}
	return counts
}

func TestInitDB_CreatesDirectoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "aktienportfolio.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestInitialize_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	seeded, err := Initialize(ctx, db, SchemaSQL, SampleDataSQL)
	require.NoError(t, err)
	assert.True(t, seeded)

	counts := rowCounts(t, db)
	assert.Equal(t, 6, counts["Investor"])
	assert.Equal(t, 9, counts["Depot"])
	assert.Equal(t, 10, counts["Unternehmen"])
	assert.Equal(t, 10, counts["Aktie"])
	assert.Equal(t, 28, counts["Transaktionen"])
	assert.Equal(t, 50, counts["Kursverlauf"])

	var missing int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM Transaktionen WHERE Gesamtwert IS NULL").Scan(&missing))
	assert.Zero(t, missing, "every transaction carries its total value")
}

func TestInitialize_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = Initialize(ctx, db, SchemaSQL, SampleDataSQL)
	require.NoError(t, err)
	before := rowCounts(t, db)

	seeded, err := Initialize(ctx, db, SchemaSQL, SampleDataSQL)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, before, rowCounts(t, db))
}

func TestInitialize_SkipsWithoutSeedScript(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	seeded, err := Initialize(context.Background(), db, SchemaSQL, "")
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Zero(t, rowCounts(t, db)["Unternehmen"])
}

func TestInitialize_BrokenSeedLeavesStoreEmpty(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	broken := "INSERT INTO Unternehmen (UnternehmenID, Name, Branche, Land) VALUES (1, 'X', 'Y', 'Z');\nINSERT INTO Nope VALUES (1);"
	_, err = Initialize(context.Background(), db, SchemaSQL, broken)
	require.Error(t, err)
	assert.Zero(t, rowCounts(t, db)["Unternehmen"], "a failed seed is rolled back")
}

func TestInitDB_EnforcesForeignKeys(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = Initialize(context.Background(), db, SchemaSQL, SampleDataSQL)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO Depot (DepotID, InvestorID, Bezeichnung, Eroeffnungsdatum, Status) VALUES (100, 999, 'Geister', '2024-01-01', 'Aktiv')")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestLoadScripts(t *testing.T) {
	schema, seed, err := LoadScripts("", "")
	require.NoError(t, err)
	assert.Equal(t, SchemaSQL, schema)
	assert.Equal(t, SampleDataSQL, seed)

	custom := filepath.Join(t.TempDir(), "seed.sql")
	require.NoError(t, os.WriteFile(custom, []byte("SELECT 1;"), 0o644))
	_, seed, err = LoadScripts("", custom)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;", seed)

	_, _, err = LoadScripts(filepath.Join(t.TempDir(), "missing.sql"), "")
	assert.Error(t, err)
}
