// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/invoicesplit/internal/models"
)

// ErrNotFound is wrapped by every lookup that finds no row.
var ErrNotFound = errors.New("not found")

// Store defines the interface for invoice and preference storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateInvoice persists a new invoice.
	// The invoice.ID, CreatedAt and (if empty) Title fields are populated by the store.
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error

	// GetInvoice retrieves an invoice by its ID.
	// Returns an error wrapping ErrNotFound if the invoice does not exist.
	GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error)

	// ListInvoices returns up to limit invoices, newest first.
	// A limit of zero or less returns all invoices.
	ListInvoices(ctx context.Context, limit int) ([]*models.Invoice, error)

	// DeleteInvoice removes an invoice.
	// Returns an error wrapping ErrNotFound if the invoice does not exist.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// GetPreference returns the saved preference of a client.
	// Returns an error wrapping ErrNotFound if none was saved.
	GetPreference(ctx context.Context, clientID string) (*models.Preference, error)

	// SetPreference creates or replaces the preference of a client.
	SetPreference(ctx context.Context, pref *models.Preference) error

	// Close releases any resources held by the store.
	Close() error
}
