package calculator

import (
	"math"
	"testing"

	"github.com/divvyd/divvy/internal/models"
)

func TestAggregate_SinglePayerScenario(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 90, Payer: "A", Participants: []string{"A", "B", "C"}},
	}

	balances := Aggregate(expenses)

	want := map[string]Balance{
		"A": {Person: "A", Owes: 0, Owed: 60, Net: 60},
		"B": {Person: "B", Owes: 30, Owed: 0, Net: -30},
		"C": {Person: "C", Owes: 30, Owed: 0, Net: -30},
	}
	if len(balances) != len(want) {
		t.Fatalf("got %d balances, want %d: %v", len(balances), len(want), balances)
	}
	for _, b := range balances {
		w, ok := want[b.Person]
		if !ok {
			t.Errorf("unexpected person %s", b.Person)
			continue
		}
		if math.Abs(b.Owes-w.Owes) > 0.01 || math.Abs(b.Owed-w.Owed) > 0.01 || math.Abs(b.Net-w.Net) > 0.01 {
			t.Errorf("%s = %+v, want %+v", b.Person, b, w)
		}
	}
}

func TestAggregate_Conservation(t *testing.T) {
	// Mixed single- and multi-payer history with uneven amounts.
	expenses := []models.Expense{
		{Amount: 90, Payer: "A", Participants: []string{"A", "B", "C"}},
		{Amount: 47.35, Payer: "B", Participants: []string{"A", "B"}},
		{
			Amount: 100,
			Payers: []models.PayerShare{
				{Name: "A", Amount: 60},
				{Name: "B", Amount: 40},
			},
			Participants: []string{"A", "B", "C", "D"},
		},
		{Amount: 13.99, Payer: "D", Participants: []string{"C", "D", "E"}},
	}

	balances := Aggregate(expenses)

	var totalOwes, totalOwed, totalNet float64
	for _, b := range balances {
		totalOwes += b.Owes
		totalOwed += b.Owed
		totalNet += b.Net
	}
	if math.Abs(totalOwes-totalOwed) > 0.01 {
		t.Errorf("owes total %v != owed total %v", totalOwes, totalOwed)
	}
	if math.Abs(totalNet) > 0.01 {
		t.Errorf("net balances sum to %v, want 0", totalNet)
	}
}

func TestAggregate_OnlyDebtParticipantsAppear(t *testing.T) {
	// Grace participates in nothing that produces a debt for her.
	expenses := []models.Expense{
		{Amount: 50, Payer: "Alice", Participants: []string{"Alice", "Bob"}},
	}

	balances := Aggregate(expenses)

	for _, b := range balances {
		if b.Person != "Alice" && b.Person != "Bob" {
			t.Errorf("unexpected person %s in balances", b.Person)
		}
	}
	if len(balances) != 2 {
		t.Errorf("got %d balances, want 2", len(balances))
	}
}

func TestAggregate_Rounding(t *testing.T) {
	// 10 / 3 leaves repeating decimals; every output field must be rounded
	// to two decimals.
	expenses := []models.Expense{
		{Amount: 10, Payer: "A", Participants: []string{"A", "B", "C"}},
	}

	for _, b := range Aggregate(expenses) {
		for _, v := range []float64{b.Owes, b.Owed, b.Net} {
			if math.Abs(v*100-math.Round(v*100)) > 1e-9 {
				t.Errorf("%s has unrounded field %v", b.Person, v)
			}
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	if balances := Aggregate(nil); len(balances) != 0 {
		t.Errorf("expected no balances, got %v", balances)
	}
}
