package models

// PayerShare records how much one person contributed toward an expense.
type PayerShare struct {
	// Name is the display name of the payer.
	Name string `json:"name"`

	// Amount is the portion of the expense this person paid.
	Amount float64 `json:"amount"`
}

// Expense represents a shared cost split equally among its participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Assigned by the store at creation, immutable afterwards.
	ID string `json:"id"`

	// Description is a human-readable note (e.g. "Groceries", "Taxi").
	// Descriptive only, no settlement impact.
	Description string `json:"description,omitempty"`

	// Type is a free-form category label (e.g. "food", "transport").
	Type string `json:"type,omitempty"`

	// Date is the user-entered date of the expense (display metadata).
	Date string `json:"date,omitempty"`

	// Amount is the total cost, positive, two decimal places of meaningful
	// precision.
	Amount float64 `json:"amount"`

	// Payer is the legacy single-payer form: this person paid the full
	// amount. Ignored when Payers is non-empty.
	Payer string `json:"payer,omitempty"`

	// Payers lists who paid what. The amounts must sum to Amount within
	// 0.01; the service layer enforces this before an expense is stored.
	Payers []PayerShare `json:"payers,omitempty"`

	// Participants are the people sharing the cost, non-empty. Order is
	// irrelevant to settlement math but preserved for display.
	//
	// Names here are not checked against the roster: an unknown name is
	// treated as a valid distinct party.
	Participants []string `json:"participants"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"createdAt,omitempty"`
}
