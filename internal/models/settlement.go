package models

import "strings"

// pairKeySeparator joins the two names of a settlement key in the JSON
// export format. A name containing the separator makes the string form
// ambiguous; internally settlements are stored as two columns, so the
// ambiguity is confined to the import/export boundary.
const pairKeySeparator = "->"

// Settlement marks a directed debt between two people as paid or unpaid.
// It is keyed by the name pair, not by expense: the pair survives even when
// newer expenses reverse the debt direction, leaving an orphaned entry that
// simply no longer matches any simplified debt.
type Settlement struct {
	// From is the debtor side of the pair.
	From string `json:"from"`

	// To is the creditor side of the pair.
	To string `json:"to"`

	// Paid is the user-toggled flag. No further state machine exists.
	Paid bool `json:"paid"`
}

// Key returns the export-format string key for the pair, "from->to".
func (s Settlement) Key() string {
	return PairKey(s.From, s.To)
}

// PairKey formats a directed pair as the export-format settlement key.
func PairKey(from, to string) string {
	return from + pairKeySeparator + to
}

// ParsePairKey splits an export-format settlement key into its two names.
// It cuts at the first "->" occurrence; ok is false when the separator is
// absent or either side is empty.
func ParsePairKey(key string) (from, to string, ok bool) {
	from, to, found := strings.Cut(key, pairKeySeparator)
	if !found || from == "" || to == "" {
		return "", "", false
	}
	return from, to, true
}
