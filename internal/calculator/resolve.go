// Package calculator derives debts, balances and settlements from expenses.
//
// Everything here is a pure function over its inputs: no I/O, no stored
// state. Derived values are recomputed from scratch on every call, so there
// is no cache to invalidate.
package calculator

import (
	"sort"

	"github.com/divvyd/divvy/internal/models"
)

const (
	// noiseThreshold absorbs floating-point drift when classifying a
	// person's net contribution as debtor or creditor.
	noiseThreshold = 0.001

	// minTransfer is the smallest transfer worth recording. Amounts at or
	// below one cent are dropped.
	minTransfer = 0.01
)

// Debt represents money owed from one person to another. The same shape
// serves both elementary debts (derived from a single expense) and
// simplified debts (netted across the whole expense history).
type Debt struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// party tracks one person's outstanding magnitude during greedy matching.
type party struct {
	name   string
	amount float64
}

// Resolve converts a single expense into the elementary debts it creates
// between participants and payers.
//
// Malformed expenses (no participants, non-positive amount, no payer at all)
// resolve to no debts rather than an error: a single bad record must not take
// down the whole summary view.
//
// Callers must not depend on the order of the returned list, only on its
// content.
func Resolve(exp models.Expense) []Debt {
	if len(exp.Participants) == 0 || exp.Amount <= 0 {
		return nil
	}

	share := exp.Amount / float64(len(exp.Participants))

	if len(exp.Payers) > 0 {
		return resolveMultiPayer(exp, share)
	}
	if exp.Payer == "" {
		return nil
	}

	// Legacy single-payer form: every other participant owes their share
	// directly to the payer. No netting needed with one payer.
	var debts []Debt
	for _, p := range exp.Participants {
		if p == exp.Payer {
			continue
		}
		debts = append(debts, Debt{From: p, To: exp.Payer, Amount: share})
	}
	return debts
}

// resolveMultiPayer settles one expense with an explicit payer list by greedy
// largest-debtor/largest-creditor matching.
//
// This matches each expense independently and is not the globally minimal
// transaction set across the group; cross-expense netting happens later in
// Simplify.
func resolveMultiPayer(exp models.Expense, share float64) []Debt {
	// Net contribution per person: paid amounts minus one share per
	// occurrence in the participant list. Encounter order is preserved so
	// equal magnitudes tie-break deterministically.
	net := make(map[string]float64)
	var order []string
	credit := func(name string, amount float64) {
		if _, ok := net[name]; !ok {
			order = append(order, name)
		}
		net[name] += amount
	}
	for _, p := range exp.Payers {
		credit(p.Name, p.Amount)
	}
	for _, name := range exp.Participants {
		credit(name, -share)
	}

	// A payer who is not a participant appears only as a creditor; a
	// participant who paid nothing appears only as a debtor.
	var debtors, creditors []party
	for _, name := range order {
		switch v := net[name]; {
		case v < -noiseThreshold:
			debtors = append(debtors, party{name: name, amount: -v})
		case v > noiseThreshold:
			creditors = append(creditors, party{name: name, amount: v})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].amount > debtors[j].amount
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].amount > creditors[j].amount
	})

	// Match the largest debtor against the largest creditor, transfer the
	// smaller remainder, and advance past anyone settled to within a cent.
	var debts []Debt
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := debtors[i].amount
		if creditors[j].amount < amount {
			amount = creditors[j].amount
		}

		if amount > minTransfer {
			debts = append(debts, Debt{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: amount,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < minTransfer {
			i++
		}
		if creditors[j].amount < minTransfer {
			j++
		}
	}

	return debts
}
