// Package models defines the core domain models for divvy.
//
// # Persisted Models
//
//   - Expense: a shared cost with one or more payers and a set of participants
//   - Settlement: a paid/unpaid flag attached to a directed person pair
//   - Snapshot: the full persisted state (expenses, roster, settlements)
//
// People are identified by display name (strings, unique within the roster).
// Names are the identity keys in the persisted format, so renaming a person
// cascades through every expense and settlement that references the old name.
//
// # Derived Models
//
// Net balances, elementary debts and simplified debts are recomputed from
// expenses on every read and are never persisted; they live in the calculator
// package.
package models
