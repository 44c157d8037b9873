package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/divvyd/divvy/internal/models"
)

// Snapshot reads the entire persisted state.
func (s *SQLiteStore) Snapshot(ctx context.Context) (models.Snapshot, error) {
	var snapshot models.Snapshot
	var err error

	if snapshot.Expenses, err = s.ListExpenses(ctx); err != nil {
		return models.Snapshot{}, err
	}
	if snapshot.People, err = s.ListPeople(ctx); err != nil {
		return models.Snapshot{}, err
	}
	if snapshot.Settlements, err = s.ListSettlements(ctx); err != nil {
		return models.Snapshot{}, err
	}
	return snapshot, nil
}

// Replace swaps the entire persisted state for the given snapshot in one
// transaction. Nothing is applied if any row fails.
func (s *SQLiteStore) Replace(ctx context.Context, snapshot models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"expense_payers", "expense_participants", "expenses", "people", "settlements"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, exp := range snapshot.Expenses {
		if exp.ID == "" {
			exp.ID = uuid.New().String()
		}
		if exp.CreatedAt == 0 {
			exp.CreatedAt = time.Now().Unix()
		}
		if err := insertExpenseTx(ctx, tx, exp); err != nil {
			return err
		}
	}

	for _, name := range snapshot.People {
		if _, err := tx.ExecContext(ctx, "INSERT INTO people (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}
	}

	for _, settlement := range snapshot.Settlements {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO settlements (from_name, to_name, paid) VALUES (?, ?, ?)",
			settlement.From, settlement.To, settlement.Paid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
