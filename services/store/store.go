package store

import (
	"errors"

	models "miniclip/models/postgres"
)

// ErrNotFound is returned when an operation targets an id that is not in the
// store.
var ErrNotFound = errors.New("game not found")

/*
 * 'CatalogStore' abstracts persistence of submitted games. Two implementations
 * exist: PostgresStore (durable, backed by the games table) and MemoryStore
 * (process-lifetime fallback used when the database is unconfigured or
 * failing). Both are constructed once in main and injected into the
 * moderation service.
 */
type CatalogStore interface {
	// Submit inserts a new record and returns it with its assigned id.
	Submit(game models.Game) (*models.Game, error)

	// ListSubmitted returns every submitted record regardless of status,
	// newest first.
	ListSubmitted() ([]models.Game, error)

	// ListApproved returns records with status approved, newest first.
	ListApproved() ([]models.Game, error)

	// SetStatus updates the status of the record with the given id.
	SetStatus(id string, status string) error

	// Delete removes the record with the given id.
	Delete(id string) error
}
