// Package catalogue holds the fixed set of analytical reports that can be run by identifier.
// The catalogue is built once at package initialization and is read-only afterwards.
package catalogue

import "strings"

// Query is one catalogued report.
type Query struct {
	ID          string
	Name        string
	Description string
	SQL         string
}

// Text returns the SQL statement without surrounding whitespace.
func (q Query) Text() string {
	return strings.TrimSpace(q.SQL)
}

var byID = func() map[string]Query {
	m := make(map[string]Query, len(entries))
	for _, q := range entries {
		m[q.ID] = q
	}
	return m
}()

// All returns the catalogue in display order. The returned slice is a copy.
func All() []Query {
	out := make([]Query, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the query registered under id.
func Lookup(id string) (Query, bool) {
	q, ok := byID[id]
	return q, ok
}

// Len reports the number of catalogued queries.
func Len() int {
	return len(entries)
}
