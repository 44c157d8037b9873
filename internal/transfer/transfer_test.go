package transfer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divvyd/divvy/internal/models"
)

func TestExportParse_RoundTrip(t *testing.T) {
	snapshot := models.Snapshot{
		Expenses: []models.Expense{
			{
				ID:           "e1",
				Description:  "Dinner",
				Type:         "food",
				Date:         "2026-08-10",
				Amount:       90,
				Payer:        "A",
				Participants: []string{"A", "B", "C"},
				CreatedAt:    1700000000,
			},
			{
				ID:     "e2",
				Amount: 100,
				Payers: []models.PayerShare{
					{Name: "A", Amount: 60},
					{Name: "B", Amount: 40},
				},
				Participants: []string{"A", "B", "C", "D"},
				CreatedAt:    1700000100,
			},
		},
		People: []string{"A", "B", "C", "D"},
		Settlements: []models.Settlement{
			{From: "B", To: "A", Paid: true},
			{From: "C", To: "A", Paid: false},
		},
	}

	data, err := Export(snapshot, time.Unix(1756400000, 0))
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, snapshot, parsed)
}

func TestExport_Envelope(t *testing.T) {
	data, err := Export(models.Snapshot{}, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var file map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &file))
	assert.JSONEq(t, "1", string(file["version"]))
	assert.JSONEq(t, `"2026-08-29T12:00:00Z"`, string(file["exportedAt"]))
	assert.Contains(t, string(file["data"]), `"expenses"`)
}

func TestParse_LegacyBareObject(t *testing.T) {
	data := []byte(`{
		"expenses": [
			{"id": "e1", "amount": 30, "payer": "Alice", "participants": ["Alice", "Bob"]}
		],
		"people": ["Alice", "Bob"]
	}`)

	snapshot, err := Parse(data)
	require.NoError(t, err)

	assert.Len(t, snapshot.Expenses, 1)
	assert.Equal(t, "Alice", snapshot.Expenses[0].Payer)
	assert.Equal(t, []string{"Alice", "Bob"}, snapshot.People)
	assert.Empty(t, snapshot.Settlements, "missing settlements defaults to empty")
}

func TestParse_SettlementKeys(t *testing.T) {
	data := []byte(`{
		"expenses": [],
		"people": [],
		"settlements": {"Bob->Alice": true, "Carol->Bob": false}
	}`)

	snapshot, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, snapshot.Settlements, 2)
	assert.Equal(t, models.Settlement{From: "Bob", To: "Alice", Paid: true}, snapshot.Settlements[0])
	assert.Equal(t, models.Settlement{From: "Carol", To: "Bob", Paid: false}, snapshot.Settlements[1])
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed JSON", data: `{"expenses": [`},
		{name: "top-level array", data: `[1, 2, 3]`},
		{name: "missing expenses", data: `{"people": []}`},
		{name: "expenses not an array", data: `{"expenses": {}, "people": []}`},
		{name: "people not an array", data: `{"expenses": [], "people": "Alice"}`},
		{name: "null data envelope", data: `{"version": 1, "data": null}`},
		{name: "malformed settlement key", data: `{"expenses": [], "people": [], "settlements": {"AliceBob": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
