// Package models defines the core domain models for JustSplit.
//
// # Models
//
//   - Event: a trip, party or shared period that expenses belong to
//   - Expense: a single payment made by one participant for the group
//   - Settlement: a payment between participants to clear debts
//
// Participants are identified by name strings scoped to their event.
//
// # Design Principles
//
//  1. Dates are stored as time.Time in UTC; string parsing happens at the edges
//  2. Money uses decimal.Decimal so per-currency sums stay exact
//  3. Relationships use ID strings instead of pointers
package models
