package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors. Not-found is a normal outcome for point lookups,
	// callers branch on these rather than treating them as failures.
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")

	// Fixture errors
	ErrInvalidFixture  = errors.New("invalid fixture")
	ErrFixtureNotFound = errors.New("fixture not found")

	// Directory errors
	ErrDirectoryNotLoaded = errors.New("directory not loaded")

	// Filter errors
	ErrInvalidFilter = errors.New("invalid filter")
)
