package services

import "errors"

var (
	ErrQueryNotFound = errors.New("query not found")
	ErrNotSelect     = errors.New("only SELECT statements are permitted")
)

// QueryError carries the message reported by the database engine.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }
