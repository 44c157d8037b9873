package calculator

import (
	"math"

	"github.com/divvyd/divvy/internal/models"
)

// Balance summarizes one person's position across all expenses.
type Balance struct {
	// Person is the display name.
	Person string `json:"person"`

	// Owes is the total this person owes others, non-negative.
	Owes float64 `json:"owes"`

	// Owed is the total others owe this person, non-negative.
	Owed float64 `json:"owed"`

	// Net is Owed minus Owes. Positive = owed money, negative = owes money.
	Net float64 `json:"net"`
}

// Aggregate folds the elementary debts of every expense into one net balance
// per person. Only people who appear in at least one elementary debt get an
// entry; entries come out in first-encounter order.
//
// All output fields are rounded to two decimals. The net balances of all
// people sum to zero within rounding tolerance: every debt has an equal and
// opposite credit.
func Aggregate(expenses []models.Expense) []Balance {
	type totals struct {
		owes, owed float64
	}
	byPerson := make(map[string]*totals)
	var order []string
	get := func(name string) *totals {
		t, ok := byPerson[name]
		if !ok {
			t = &totals{}
			byPerson[name] = t
			order = append(order, name)
		}
		return t
	}

	for _, exp := range expenses {
		for _, debt := range Resolve(exp) {
			get(debt.From).owes += debt.Amount
			get(debt.To).owed += debt.Amount
		}
	}

	balances := make([]Balance, 0, len(order))
	for _, name := range order {
		t := byPerson[name]
		balances = append(balances, Balance{
			Person: name,
			Owes:   round2(t.owes),
			Owed:   round2(t.owed),
			Net:    round2(t.owed - t.owes),
		})
	}
	return balances
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
