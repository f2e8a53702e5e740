package models

// QueryResult is the tabular outcome of one SELECT.
// Every row holds exactly the keys listed in Columns.
type QueryResult struct {
	Columns  []string         `json:"columns"`
	Results  []map[string]any `json:"results"`
	RowCount int              `json:"row_count"`
}

// CatalogueResult is a QueryResult annotated with the catalogue entry that produced it.
type CatalogueResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Query       string `json:"query"`
	QueryResult
}

// QuerySummary describes a catalogue entry without its SQL text.
type QuerySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CustomQueryRequest struct {
	Query string `json:"query"`
}
