package calculator

import (
	"math"
	"testing"

	"github.com/divvyd/divvy/internal/models"
)

func TestBreakdown_MixedDirections(t *testing.T) {
	expenses := []models.Expense{
		{ID: "e1", Description: "Dinner", Amount: 60, Payer: "Alice", Participants: []string{"Alice", "Bob"}},
		{ID: "e2", Description: "Taxi", Amount: 20, Payer: "Bob", Participants: []string{"Alice", "Bob"}},
		{ID: "e3", Description: "Coffee", Amount: 9, Payer: "Carol", Participants: []string{"Carol"}},
	}

	items := Breakdown(expenses, "Bob", "Alice")

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %v", len(items), items)
	}

	first := items[0]
	if first.ExpenseID != "e1" || first.Direction != DirectionOwes || math.Abs(first.Amount-30) > 0.01 {
		t.Errorf("e1 item = %+v, want Bob owes 30", first)
	}
	second := items[1]
	if second.ExpenseID != "e2" || second.Direction != DirectionOwed || math.Abs(second.Amount-10) > 0.01 {
		t.Errorf("e2 item = %+v, want owed 10", second)
	}
}

func TestBreakdown_CarriesExpenseMetadata(t *testing.T) {
	expenses := []models.Expense{
		{
			ID:           "e1",
			Type:         "food",
			Date:         "2026-08-01",
			Description:  "Groceries",
			Amount:       30,
			Payer:        "Alice",
			Participants: []string{"Alice", "Bob", "Carol"},
		},
	}

	items := Breakdown(expenses, "Bob", "Alice")

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]
	if item.Type != "food" || item.Date != "2026-08-01" || item.Description != "Groceries" {
		t.Errorf("metadata not carried through: %+v", item)
	}
}

func TestBreakdown_SkipsUnrelatedExpenses(t *testing.T) {
	expenses := []models.Expense{
		{ID: "e1", Amount: 40, Payer: "Carol", Participants: []string{"Carol", "Dave"}},
	}

	if items := Breakdown(expenses, "Alice", "Bob"); len(items) != 0 {
		t.Errorf("expected no items for unrelated pair, got %v", items)
	}
}

func TestBreakdown_MultiPayerContribution(t *testing.T) {
	// From the greedy matching: C->A 25, D->A 10, D->B 15.
	expenses := []models.Expense{
		{
			ID:     "e1",
			Amount: 100,
			Payers: []models.PayerShare{
				{Name: "A", Amount: 60},
				{Name: "B", Amount: 40},
			},
			Participants: []string{"A", "B", "C", "D"},
		},
	}

	items := Breakdown(expenses, "D", "A")

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %v", len(items), items)
	}
	if items[0].Direction != DirectionOwes || math.Abs(items[0].Amount-10) > 0.01 {
		t.Errorf("got %+v, want D owes A 10", items[0])
	}
}
