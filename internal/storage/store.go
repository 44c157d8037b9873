// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/divvyd/divvy/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer. The system assumes a single active session; concurrent
// writers are not supported and the last write wins.
type Store interface {
	// ListExpenses returns all expenses in creation order.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// CreateExpense persists a new expense. The ID and CreatedAt fields
	// are populated by the store when unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	// Returns ErrNotFound if no such expense exists.
	DeleteExpense(ctx context.Context, id string) error

	// ListPeople returns the roster in insertion order.
	ListPeople(ctx context.Context) ([]string, error)

	// AddPerson appends a name to the roster.
	AddPerson(ctx context.Context, name string) error

	// RenamePerson rewrites a roster entry and cascades the rename through
	// every expense payer, payer share, participant, and settlement key
	// referencing the old name, atomically.
	RenamePerson(ctx context.Context, oldName, newName string) error

	// ListSettlements returns all settlement flags.
	ListSettlements(ctx context.Context) ([]models.Settlement, error)

	// ToggleSettlement flips the paid flag for a directed pair, creating
	// the entry as paid if absent.
	ToggleSettlement(ctx context.Context, from, to string) error

	// Replace swaps the entire persisted state for the given snapshot,
	// all-or-nothing. Used by import and reset.
	Replace(ctx context.Context, snapshot models.Snapshot) error

	// Snapshot reads the entire persisted state.
	Snapshot(ctx context.Context) (models.Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
