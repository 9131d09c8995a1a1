package domain

import "errors"

// Sentinel errors shared across the adapters and the dispatcher. The Spanish
// messages surface verbatim in API responses.
var (
	// ErrNotAuthenticated is raised before routing when an event carries no
	// verified identity claims.
	ErrNotAuthenticated = errors.New("user is not authenticated")

	// ErrUnsupportedFileType rejects uploads that are neither JPEG nor PDF.
	ErrUnsupportedFileType = errors.New("Tipo de archivo no soportado")

	// ErrRecordNotFound is returned by a conditional delete when no record
	// with the given id exists.
	ErrRecordNotFound = errors.New("invoice record not found")
)
