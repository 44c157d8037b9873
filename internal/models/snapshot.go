package models

// Snapshot is the complete persisted state of a ledger: every expense, the
// roster of people, and the settlement flags. Import and export operate on
// whole snapshots, all-or-nothing.
type Snapshot struct {
	Expenses    []Expense    `json:"expenses"`
	People      []string     `json:"people"`
	Settlements []Settlement `json:"settlements"`
}
