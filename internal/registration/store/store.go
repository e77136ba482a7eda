package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. Repositories hang off it as methods so a Tx-scoped Store exposes the
// exact same surface and transactions cannot be nested by accident.
type Store interface {
	Clients() Clients

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction is rolled back
	// if fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// SaveClient inserts a registered client keyed by its client_id. A
	// duplicate client_id fails with ErrAlreadyExists, which is how
	// concurrently generated identifiers are kept unique.
	SaveClient(ctx context.Context, c domain.RegisteredClient) error

	// GetClientByID fetches a client by client_id.
	GetClientByID(ctx context.Context, clientID string) (domain.RegisteredClient, error)

	// ListClientsByServiceID returns every client registered for a service_id,
	// ordered by evaluation order then creation date.
	ListClientsByServiceID(ctx context.Context, serviceID string) ([]domain.RegisteredClient, error)

	// ListClients returns all clients ordered by creation date (newest first).
	ListClients(ctx context.Context) ([]domain.RegisteredClient, error)
}
