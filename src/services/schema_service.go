package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/username/aktienportfolio/backend/src/models"
)

const listTablesQuery = `
	SELECT name FROM sqlite_master
	WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	ORDER BY name`

func (s *reportServiceImpl) GetSchema(ctx context.Context) (map[string]models.TableSchema, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("error acquiring connection: %w", err)
	}
	defer conn.Close()

	tables, err := listTables(ctx, conn)
	if err != nil {
		return nil, err
	}

	schema := make(map[string]models.TableSchema, len(tables))
	for _, table := range tables {
		columns, err := tableColumns(ctx, conn, table)
		if err != nil {
			return nil, err
		}
		foreignKeys, err := tableForeignKeys(ctx, conn, table)
		if err != nil {
			return nil, err
		}
		var rowCount int64
		if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table)).Scan(&rowCount); err != nil {
			return nil, fmt.Errorf("error counting rows of %s: %w", table, err)
		}
		schema[table] = models.TableSchema{
			Columns:     columns,
			ForeignKeys: foreignKeys,
			RowCount:    rowCount,
		}
	}
	return schema, nil
}

func listTables(ctx context.Context, conn *sql.Conn) ([]string, error) {
	rows, err := conn.QueryContext(ctx, listTablesQuery)
	if err != nil {
		return nil, fmt.Errorf("error listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func tableColumns(ctx context.Context, conn *sql.Conn, table string) ([]models.ColumnInfo, error) {
	rows, err := conn.QueryContext(ctx, `SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("error reading columns of %s: %w", table, err)
	}
	defer rows.Close()

	columns := []models.ColumnInfo{}
	for rows.Next() {
		var (
			col         models.ColumnInfo
			notNull, pk int
		)
		if err := rows.Scan(&col.Name, &col.Type, &notNull, &pk); err != nil {
			return nil, fmt.Errorf("error scanning column info of %s: %w", table, err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func tableForeignKeys(ctx context.Context, conn *sql.Conn, table string) ([]models.ForeignKey, error) {
	rows, err := conn.QueryContext(ctx, `SELECT "from", "table", "to" FROM pragma_foreign_key_list(?) ORDER BY id, seq`, table)
	if err != nil {
		return nil, fmt.Errorf("error reading foreign keys of %s: %w", table, err)
	}
	defer rows.Close()

	foreignKeys := []models.ForeignKey{}
	for rows.Next() {
		var (
			fk models.ForeignKey
			to sql.NullString // NULL when the parent's primary key is implied
		)
		if err := rows.Scan(&fk.Column, &fk.ReferencesTable, &to); err != nil {
			return nil, fmt.Errorf("error scanning foreign key of %s: %w", table, err)
		}
		fk.ReferencesColumn = to.String
		foreignKeys = append(foreignKeys, fk)
	}
	return foreignKeys, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
