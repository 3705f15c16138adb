package store

import "errors"

// Predefined errors for the store layer.
var (
	// ErrNotConfigured is returned when a store is used without its credentials.
	ErrNotConfigured = errors.New("store not configured")

	// ErrEmptyResult indicates the backend accepted an insert but returned no row.
	ErrEmptyResult = errors.New("insert returned no row")
)
