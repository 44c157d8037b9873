// Package transfer implements the JSON export/import file format.
//
// Exports are wrapped in a versioned envelope; imports accept either the
// envelope or a bare legacy object. The settlement map uses "from->to"
// string keys on the wire for compatibility with the original on-disk
// format, while the rest of the system keeps settlements as name pairs.
package transfer

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/divvyd/divvy/internal/models"
)

// FormatVersion is the export envelope version written by Export.
const FormatVersion = 1

// payload is the wire form of a snapshot.
type payload struct {
	Expenses    []models.Expense `json:"expenses"`
	People      []string         `json:"people"`
	Settlements map[string]bool  `json:"settlements"`
}

// envelope is the versioned export wrapper.
type envelope struct {
	Version    int     `json:"version"`
	ExportedAt string  `json:"exportedAt"`
	Data       payload `json:"data"`
}

// Export serializes a snapshot into the versioned export format.
func Export(snapshot models.Snapshot, now time.Time) ([]byte, error) {
	settlements := make(map[string]bool, len(snapshot.Settlements))
	for _, s := range snapshot.Settlements {
		settlements[s.Key()] = s.Paid
	}

	file := envelope{
		Version:    FormatVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Data: payload{
			Expenses:    emptyIfNil(snapshot.Expenses),
			People:      emptyIfNil(snapshot.People),
			Settlements: settlements,
		},
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// Parse decodes an export file into a snapshot. It accepts the versioned
// envelope written by Export as well as a bare {expenses, people,
// settlements?} object (legacy format). A missing settlement map defaults to
// empty; missing or non-array expenses/people is a hard rejection. Parsing
// never partially applies anything; callers get a full snapshot or an error.
func Parse(data []byte) (models.Snapshot, error) {
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return models.Snapshot{}, fmt.Errorf("invalid import file: %w", err)
	}

	// Versioned envelope when a data object is present, bare payload
	// otherwise.
	doc := data
	if len(probe.Data) > 0 {
		doc = probe.Data
	}

	var wire struct {
		Expenses    *[]models.Expense `json:"expenses"`
		People      *[]string         `json:"people"`
		Settlements map[string]bool   `json:"settlements"`
	}
	if err := json.Unmarshal(doc, &wire); err != nil {
		return models.Snapshot{}, fmt.Errorf("invalid import data: %w", err)
	}
	if wire.Expenses == nil {
		return models.Snapshot{}, fmt.Errorf("invalid import data: expenses must be an array")
	}
	if wire.People == nil {
		return models.Snapshot{}, fmt.Errorf("invalid import data: people must be an array")
	}

	settlements := make([]models.Settlement, 0, len(wire.Settlements))
	for key, paid := range wire.Settlements {
		from, to, ok := models.ParsePairKey(key)
		if !ok {
			return models.Snapshot{}, fmt.Errorf("invalid import data: malformed settlement key %q", key)
		}
		settlements = append(settlements, models.Settlement{From: from, To: to, Paid: paid})
	}
	sort.Slice(settlements, func(i, j int) bool {
		if settlements[i].From != settlements[j].From {
			return settlements[i].From < settlements[j].From
		}
		return settlements[i].To < settlements[j].To
	})

	return models.Snapshot{
		Expenses:    *wire.Expenses,
		People:      *wire.People,
		Settlements: settlements,
	}, nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
