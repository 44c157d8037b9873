// Package service wires validation, storage and the debt calculator together
// behind the operations the UI consumes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/divvyd/divvy/internal/calculator"
	"github.com/divvyd/divvy/internal/models"
	"github.com/divvyd/divvy/internal/storage"
	"github.com/divvyd/divvy/internal/transfer"
)

// ErrInvalidInput marks validation failures so the API layer can map them to
// a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// payerSumTolerance is the allowed gap between the expense amount and the
// sum of its payer shares.
const payerSumTolerance = 0.01

// SettlementView is a simplified debt joined with its paid flag for the
// settlement screen.
type SettlementView struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	Paid   bool    `json:"paid"`
}

// Ledger implements the expense ledger operations on top of a storage.Store.
// All derived values (balances, simplified debts, breakdowns) are recomputed
// from the stored expenses on every call.
type Ledger struct {
	store storage.Store
}

// NewLedger creates a Ledger backed by the given store.
func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Expenses returns all stored expenses in creation order.
func (l *Ledger) Expenses(ctx context.Context) ([]models.Expense, error) {
	return l.store.ListExpenses(ctx)
}

// AddExpense validates and persists a new expense. The returned expense
// carries the assigned ID and timestamp.
//
// Validation happens here, before the expense exists: the calculator never
// sees an invalid record from this path.
func (l *Ledger) AddExpense(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	if err := validateExpense(expense); err != nil {
		return nil, err
	}
	if err := l.store.CreateExpense(ctx, &expense); err != nil {
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}
	slog.Info("Expense added", "id", expense.ID, "amount", expense.Amount, "participants", len(expense.Participants))
	return &expense, nil
}

func validateExpense(expense models.Expense) error {
	if expense.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if len(expense.Participants) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	for _, name := range expense.Participants {
		if name == "" {
			return fmt.Errorf("%w: participant names must not be empty", ErrInvalidInput)
		}
	}

	if len(expense.Payers) == 0 {
		if expense.Payer == "" {
			return fmt.Errorf("%w: a payer is required", ErrInvalidInput)
		}
		return nil
	}

	var paid float64
	for _, p := range expense.Payers {
		if p.Name == "" {
			return fmt.Errorf("%w: payer names must not be empty", ErrInvalidInput)
		}
		if p.Amount <= 0 {
			return fmt.Errorf("%w: payer amounts must be positive", ErrInvalidInput)
		}
		paid += p.Amount
	}
	if math.Abs(paid-expense.Amount) > payerSumTolerance {
		return fmt.Errorf("%w: payer amounts sum to %.2f, expense amount is %.2f", ErrInvalidInput, paid, expense.Amount)
	}
	return nil
}

// DeleteExpense removes an expense by ID.
func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	if err := l.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	slog.Info("Expense deleted", "id", id)
	return nil
}

// People returns the roster in insertion order.
func (l *Ledger) People(ctx context.Context) ([]string, error) {
	return l.store.ListPeople(ctx)
}

// AddPerson appends a new name to the roster.
func (l *Ledger) AddPerson(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	people, err := l.store.ListPeople(ctx)
	if err != nil {
		return err
	}
	for _, existing := range people {
		if existing == name {
			return fmt.Errorf("%w: %q is already on the roster", ErrInvalidInput, name)
		}
	}
	return l.store.AddPerson(ctx, name)
}

// RenamePerson renames the roster entry at index and cascades the new name
// through every expense and settlement key referencing the old one. Stale
// references would otherwise silently become a new person.
func (l *Ledger) RenamePerson(ctx context.Context, index int, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	people, err := l.store.ListPeople(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(people) {
		return fmt.Errorf("person at index %d: %w", index, storage.ErrNotFound)
	}
	oldName := people[index]
	if oldName == newName {
		return nil
	}
	for _, existing := range people {
		if existing == newName {
			return fmt.Errorf("%w: %q is already on the roster", ErrInvalidInput, newName)
		}
	}

	if err := l.store.RenamePerson(ctx, oldName, newName); err != nil {
		return err
	}
	slog.Info("Person renamed", "from", oldName, "to", newName)
	return nil
}

// Balances returns the per-person net balances across all expenses.
func (l *Ledger) Balances(ctx context.Context) ([]calculator.Balance, error) {
	expenses, err := l.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.Aggregate(expenses), nil
}

// Settlements returns the simplified debts joined with their paid flags.
// Settlement entries whose pair no longer matches a live simplified debt
// (orphans left behind by reversed directions) are not emitted.
func (l *Ledger) Settlements(ctx context.Context) ([]SettlementView, error) {
	expenses, err := l.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := l.store.ListSettlements(ctx)
	if err != nil {
		return nil, err
	}

	paid := make(map[models.Settlement]bool, len(stored))
	for _, s := range stored {
		paid[models.Settlement{From: s.From, To: s.To}] = s.Paid
	}

	debts := calculator.Simplify(expenses)
	views := make([]SettlementView, 0, len(debts))
	for _, d := range debts {
		views = append(views, SettlementView{
			From:   d.From,
			To:     d.To,
			Amount: d.Amount,
			Paid:   paid[models.Settlement{From: d.From, To: d.To}],
		})
	}
	return views, nil
}

// ToggleSettlement flips the paid flag for a directed pair, creating the
// entry if absent.
func (l *Ledger) ToggleSettlement(ctx context.Context, from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: both sides of the pair are required", ErrInvalidInput)
	}
	return l.store.ToggleSettlement(ctx, from, to)
}

// Breakdown lists the per-expense contributions behind the simplified debt
// between two people.
func (l *Ledger) Breakdown(ctx context.Context, from, to string) ([]calculator.BreakdownItem, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: both sides of the pair are required", ErrInvalidInput)
	}
	expenses, err := l.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.Breakdown(expenses, from, to), nil
}

// Export serializes the full persisted state into the versioned JSON format.
func (l *Ledger) Export(ctx context.Context) ([]byte, error) {
	snapshot, err := l.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return transfer.Export(snapshot, time.Now())
}

// Import parses an export file and replaces the entire persisted state with
// its contents. Nothing is applied when parsing or storage fails.
func (l *Ledger) Import(ctx context.Context, data []byte) error {
	snapshot, err := transfer.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := l.store.Replace(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to apply import: %w", err)
	}
	slog.Info("Data imported", "expenses", len(snapshot.Expenses), "people", len(snapshot.People))
	return nil
}

// Reset clears all expenses, people and settlements.
func (l *Ledger) Reset(ctx context.Context) error {
	if err := l.store.Replace(ctx, models.Snapshot{}); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}
	slog.Info("All data cleared")
	return nil
}
