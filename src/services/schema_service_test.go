package services

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/aktienportfolio/backend/src/models"
)

func TestGetSchema_ListsSchemaTables(t *testing.T) {
	svc, db := newTestService(t, true)

	schema, err := svc.GetSchema(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"Aktie", "Depot", "HistorischerDepotwert", "Investor",
		"Kursverlauf", "Telefonnummer", "Transaktionen", "Unternehmen",
	}, names)

	for name, table := range schema {
		var n int64
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+quoteIdent(name)).Scan(&n))
		assert.Equal(t, n, table.RowCount, name)
		assert.NotNil(t, table.ForeignKeys, name)
	}
}

func TestGetSchema_ColumnsAndForeignKeys(t *testing.T) {
	svc, _ := newTestService(t, false)

	schema, err := svc.GetSchema(context.Background())
	require.NoError(t, err)

	aktie := schema["Aktie"]
	require.NotEmpty(t, aktie.Columns)
	assert.Equal(t, models.ColumnInfo{Name: "ISIN", Type: "TEXT", NotNull: false, PrimaryKey: true}, aktie.Columns[0])
	assert.Equal(t, []models.ForeignKey{
		{Column: "UnternehmenID", ReferencesTable: "Unternehmen", ReferencesColumn: "UnternehmenID"},
	}, aktie.ForeignKeys)
	assert.Zero(t, aktie.RowCount)

	kurs := schema["Kursverlauf"]
	pk := 0
	for _, col := range kurs.Columns {
		if col.PrimaryKey {
			pk++
		}
	}
	assert.Equal(t, 2, pk, "composite key on ISIN and Datum")

	tx := schema["Transaktionen"]
	assert.ElementsMatch(t, []models.ForeignKey{
		{Column: "DepotID", ReferencesTable: "Depot", ReferencesColumn: "DepotID"},
		{Column: "ISIN", ReferencesTable: "Aktie", ReferencesColumn: "ISIN"},
	}, tx.ForeignKeys)

	unternehmen := schema["Unternehmen"]
	assert.Empty(t, unternehmen.ForeignKeys)
	for _, col := range unternehmen.Columns {
		if col.Name == "Name" {
			assert.True(t, col.NotNull)
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"Investor"`, quoteIdent("Investor"))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
}
