package models

type ColumnInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"not_null"`
	PrimaryKey bool   `json:"primary_key"`
}

type ForeignKey struct {
	Column           string `json:"column"`
	ReferencesTable  string `json:"references_table"`
	ReferencesColumn string `json:"references_column"`
}

// TableSchema describes one user table of the store.
type TableSchema struct {
	Columns     []ColumnInfo `json:"columns"`
	ForeignKeys []ForeignKey `json:"foreign_keys"`
	RowCount    int64        `json:"row_count"`
}

// Statistics are the aggregate figures shown on the dashboard.
type Statistics struct {
	TotalInvestors    int64   `json:"total_investors"`
	TotalDepots       int64   `json:"total_depots"`
	ActiveDepots      int64   `json:"active_depots"`
	TotalStocks       int64   `json:"total_stocks"`
	TotalCompanies    int64   `json:"total_companies"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalVolume       float64 `json:"total_volume"`
	Countries         int64   `json:"countries"`
	Industries        int64   `json:"industries"`
}
