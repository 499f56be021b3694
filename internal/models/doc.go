// Package models defines the persisted domain models for invoicesplit.
//
// Only inputs are persisted. An Invoice stores the total, the percentages
// and the payee, never the split amounts or links: those are recomputed
// from the inputs every time an invoice is read, so a stored invoice can
// never disagree with the calculator.
//
// A Preference records the display theme chosen by one client.
package models
