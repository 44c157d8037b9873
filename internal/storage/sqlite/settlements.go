package sqlite

import (
	"context"
	"fmt"

	"github.com/divvyd/divvy/internal/models"
)

// ListSettlements retrieves all settlement flags.
func (s *SQLiteStore) ListSettlements(ctx context.Context) ([]models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT from_name, to_name, paid FROM settlements ORDER BY from_name, to_name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		var settlement models.Settlement
		if err := rows.Scan(&settlement.From, &settlement.To, &settlement.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}
	return settlements, nil
}

// ToggleSettlement flips the paid flag for a directed pair. An absent entry
// is created as paid (implicit false -> true).
func (s *SQLiteStore) ToggleSettlement(ctx context.Context, from, to string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (from_name, to_name, paid) VALUES (?, ?, 1)
		 ON CONFLICT(from_name, to_name) DO UPDATE SET paid = NOT paid`,
		from, to,
	)
	if err != nil {
		return fmt.Errorf("failed to toggle settlement: %w", err)
	}
	return nil
}
