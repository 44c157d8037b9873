package sqlite

import (
	"context"
	"fmt"

	"github.com/divvyd/divvy/internal/storage"
)

// ListPeople returns the roster in insertion order.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM people ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return people, nil
}

// AddPerson appends a name to the roster.
func (s *SQLiteStore) AddPerson(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "INSERT INTO people (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("failed to add person: %w", err)
	}
	return nil
}

// RenamePerson rewrites a roster entry and cascades the new name through
// every reference in a single transaction: the expenses payer column, payer
// share rows, participant rows, and both sides of settlement keys. Stale
// references left behind would silently become a distinct person, so the
// rewrite is all-or-nothing.
func (s *SQLiteStore) RenamePerson(ctx context.Context, oldName, newName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE people SET name = ? WHERE name = ?", newName, oldName)
	if err != nil {
		return fmt.Errorf("failed to rename person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rename result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %s: %w", oldName, storage.ErrNotFound)
	}

	cascades := []struct {
		desc  string
		query string
	}{
		{"expense payer", "UPDATE expenses SET payer = ? WHERE payer = ?"},
		{"payer share", "UPDATE expense_payers SET name = ? WHERE name = ?"},
		{"participant", "UPDATE expense_participants SET name = ? WHERE name = ?"},
		{"settlement debtor", "UPDATE settlements SET from_name = ? WHERE from_name = ?"},
		{"settlement creditor", "UPDATE settlements SET to_name = ? WHERE to_name = ?"},
	}
	for _, c := range cascades {
		if _, err := tx.ExecContext(ctx, c.query, newName, oldName); err != nil {
			return fmt.Errorf("failed to rewrite %s references: %w", c.desc, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
