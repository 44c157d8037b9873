// Package api exposes the ledger operations over JSON HTTP for the local UI.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/divvyd/divvy/internal/service"
	"github.com/divvyd/divvy/internal/storage"
)

// maxImportSize caps import request bodies. Datasets are personal-use sized;
// anything beyond this is not a valid export file.
const maxImportSize = 10 << 20

// Server routes HTTP requests to a service.Ledger.
type Server struct {
	ledger *service.Ledger
}

// New creates an API server for the given ledger.
func New(ledger *service.Ledger) *Server {
	return &Server{ledger: ledger}
}

// Handler returns the route table for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/expenses", s.listExpenses)
	mux.HandleFunc("POST /api/expenses", s.addExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.deleteExpense)

	mux.HandleFunc("GET /api/people", s.listPeople)
	mux.HandleFunc("POST /api/people", s.addPerson)
	mux.HandleFunc("PUT /api/people/{index}", s.renamePerson)

	mux.HandleFunc("GET /api/balances", s.balances)
	mux.HandleFunc("GET /api/settlements", s.settlements)
	mux.HandleFunc("POST /api/settlements/toggle", s.toggleSettlement)
	mux.HandleFunc("GET /api/breakdown", s.breakdown)

	mux.HandleFunc("GET /api/export", s.export)
	mux.HandleFunc("POST /api/import", s.importData)
	mux.HandleFunc("POST /api/reset", s.reset)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps service and storage errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
