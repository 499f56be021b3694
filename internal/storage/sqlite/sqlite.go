// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/invoicesplit/internal/models"
	"github.com/mmynk/invoicesplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateInvoice persists a new invoice to the database.
func (s *SQLiteStore) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	// Generate ID if not set
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	if invoice.CreatedAt == 0 {
		invoice.CreatedAt = time.Now().Unix()
	}
	if invoice.Title == "" {
		invoice.Title = generateTitle(invoice.PayeeID, invoice.CreatedAt)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invoices (id, title, total, tax_rate, advance_percent, payee_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID, invoice.Title, invoice.Total, invoice.TaxRate,
		invoice.AdvancePercent, invoice.PayeeID, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	return nil
}

// GetInvoice retrieves an invoice by ID.
func (s *SQLiteStore) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, total, tax_rate, advance_percent, payee_id, created_at
		 FROM invoices WHERE id = ?`,
		invoiceID,
	).Scan(&invoice.ID, &invoice.Title, &invoice.Total, &invoice.TaxRate,
		&invoice.AdvancePercent, &invoice.PayeeID, &invoice.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return invoice, nil
}

// ListInvoices retrieves the most recent invoices.
func (s *SQLiteStore) ListInvoices(ctx context.Context, limit int) ([]*models.Invoice, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, total, tax_rate, advance_percent, payee_id, created_at
		 FROM invoices ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		if err := rows.Scan(&invoice.ID, &invoice.Title, &invoice.Total, &invoice.TaxRate,
			&invoice.AdvancePercent, &invoice.PayeeID, &invoice.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	return invoices, nil
}

// DeleteInvoice removes an invoice by ID.
func (s *SQLiteStore) DeleteInvoice(ctx context.Context, invoiceID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, storage.ErrNotFound)
	}

	return nil
}

// generateTitle creates an auto-generated title from the payee.
func generateTitle(payeeID string, createdAt int64) string {
	if payeeID == "" {
		return fmt.Sprintf("Invoice - %s", time.Unix(createdAt, 0).Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("Invoice for %s", payeeID)
}
