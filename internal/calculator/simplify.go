package calculator

import "github.com/divvyd/divvy/internal/models"

// pair is a directed debtor/creditor pair used as a netting key.
type pair struct {
	from, to string
}

// Simplify nets the elementary debts of all expenses into at most one
// directed debt per pair of people.
//
// Each incoming debt is netted against the reverse direction first: an
// existing B->A balance absorbs an A->B debt, flipping direction when it
// goes negative. The result is pairwise netting only; a cycle such as
// A->B->C->A of equal amounts is left as three transfers, not collapsed.
//
// Amounts are rounded to two decimals and entries at or below one cent are
// dropped. Output is in first-encounter order of each surviving pair.
func Simplify(expenses []models.Expense) []Debt {
	balances := make(map[pair]float64)
	seen := make(map[pair]bool)
	var order []pair
	add := func(key pair, amount float64) {
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
		balances[key] += amount
	}

	for _, exp := range expenses {
		for _, debt := range Resolve(exp) {
			key := pair{from: debt.From, to: debt.To}
			reverse := pair{from: debt.To, to: debt.From}

			remaining, ok := balances[reverse]
			if !ok {
				add(key, debt.Amount)
				continue
			}

			remaining -= debt.Amount
			switch {
			case remaining < 0:
				delete(balances, reverse)
				add(key, -remaining)
			case remaining == 0:
				delete(balances, reverse)
			default:
				balances[reverse] = remaining
			}
		}
	}

	var debts []Debt
	for _, key := range order {
		amount, ok := balances[key]
		if !ok {
			continue
		}
		amount = round2(amount)
		if amount <= minTransfer {
			continue
		}
		debts = append(debts, Debt{From: key.from, To: key.to, Amount: amount})
	}
	return debts
}
