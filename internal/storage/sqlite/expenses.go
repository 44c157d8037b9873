package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/divvyd/divvy/internal/models"
	"github.com/divvyd/divvy/internal/storage"
)

// CreateExpense persists a new expense with its payers and participants.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID and timestamp if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertExpenseTx(ctx, tx, *expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// insertExpenseTx writes one expense and its child rows inside tx.
func insertExpenseTx(ctx context.Context, tx *sql.Tx, expense models.Expense) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO expenses (id, description, type, date, amount, payer, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		expense.ID, expense.Description, expense.Type, expense.Date,
		expense.Amount, expense.Payer, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, p := range expense.Payers {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_payers (expense_id, position, name, amount) VALUES (?, ?, ?, ?)",
			expense.ID, i, p.Name, p.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payer: %w", err)
		}
	}

	for i, name := range expense.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, position, name) VALUES (?, ?, ?)",
			expense.ID, i, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	return nil
}

// ListExpenses retrieves all expenses in creation order, including payers
// and participants.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description, type, date, amount, payer, created_at FROM expenses ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	index := make(map[string]int)
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.ID, &exp.Description, &exp.Type, &exp.Date,
			&exp.Amount, &exp.Payer, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		index[exp.ID] = len(expenses)
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	payerRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, name, amount FROM expense_payers ORDER BY expense_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payers: %w", err)
	}
	defer payerRows.Close()

	for payerRows.Next() {
		var expenseID string
		var share models.PayerShare
		if err := payerRows.Scan(&expenseID, &share.Name, &share.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payer: %w", err)
		}
		if i, ok := index[expenseID]; ok {
			expenses[i].Payers = append(expenses[i].Payers, share)
		}
	}
	if err := payerRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payers: %w", err)
	}

	participantRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, name FROM expense_participants ORDER BY expense_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer participantRows.Close()

	for participantRows.Next() {
		var expenseID, name string
		if err := participantRows.Scan(&expenseID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if i, ok := index[expenseID]; ok {
			expenses[i].Participants = append(expenses[i].Participants, name)
		}
	}
	if err := participantRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense and its child rows by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
