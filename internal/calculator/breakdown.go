package calculator

import "github.com/divvyd/divvy/internal/models"

// Direction labels for BreakdownItem.
const (
	// DirectionOwes marks an expense that pushes `from` toward owing `to`.
	DirectionOwes = "owes"

	// DirectionOwed marks an expense that pushes the opposite way.
	DirectionOwed = "owed"
)

// BreakdownItem explains one expense's contribution to a simplified debt
// between two people.
type BreakdownItem struct {
	ExpenseID   string  `json:"expenseId"`
	Type        string  `json:"type,omitempty"`
	Date        string  `json:"date,omitempty"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Direction   string  `json:"direction"`
}

// Breakdown reconstructs, per expense, the mutual debt between two named
// people before cross-expense netting. It is a display aid for the
// settlement view and mutates nothing.
//
// For each expense the contribution is the expense's own resolved debts
// restricted to the two people: from->to amounts count toward "owes",
// to->from amounts toward "owed", netted within the expense. Expenses that
// contribute nothing between the pair are skipped.
func Breakdown(expenses []models.Expense, from, to string) []BreakdownItem {
	var items []BreakdownItem
	for _, exp := range expenses {
		var contribution float64
		for _, debt := range Resolve(exp) {
			switch {
			case debt.From == from && debt.To == to:
				contribution += debt.Amount
			case debt.From == to && debt.To == from:
				contribution -= debt.Amount
			}
		}

		amount := round2(contribution)
		if amount == 0 {
			continue
		}

		direction := DirectionOwes
		if amount < 0 {
			direction = DirectionOwed
			amount = -amount
		}

		items = append(items, BreakdownItem{
			ExpenseID:   exp.ID,
			Type:        exp.Type,
			Date:        exp.Date,
			Description: exp.Description,
			Amount:      amount,
			Direction:   direction,
		})
	}
	return items
}
