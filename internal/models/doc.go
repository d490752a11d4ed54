// Package models defines the core domain models for tripsplit.
//
// # Models
//
//   - Trip: a roster of participants plus the ledger of their shared expenses
//   - Participant: a person on a trip, identified by name within that trip
//   - Expense: one payment fronted by a participant and shared equally
//   - Ledger: a consistent snapshot of a trip's roster and expenses
//
// Participants are identified by name strings; names are unique per trip
// and double as the keys of the balance mapping.
//
// # Design Principles
//
// 1. **Immutable records**: participants and expenses are never edited once stored
// 2. **Avoid circular references**: expenses reference participants by name
// 3. **Snapshots over live state**: balance computation only ever sees a Ledger
package models
