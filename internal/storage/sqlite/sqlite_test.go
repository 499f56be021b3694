package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/invoicesplit/internal/models"
	"github.com/mmynk/invoicesplit/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "invoicesplit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateInvoice generates ID and title", func(t *testing.T) {
		invoice := &models.Invoice{
			Total:          1000,
			TaxRate:        18,
			AdvancePercent: 20,
			PayeeID:        "merchant@upi",
		}

		if err := store.CreateInvoice(ctx, invoice); err != nil {
			t.Fatalf("CreateInvoice failed: %v", err)
		}

		if invoice.ID == "" {
			t.Error("Expected invoice ID to be generated")
		}
		if invoice.Title != "Invoice for merchant@upi" {
			t.Errorf("Title = %q, want %q", invoice.Title, "Invoice for merchant@upi")
		}
		if invoice.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetInvoice retrieves stored inputs", func(t *testing.T) {
		original := &models.Invoice{
			Title:          "Kitchen remodel",
			Total:          2599.99,
			TaxRate:        12.5,
			AdvancePercent: 35,
			PayeeID:        "builder.co@okhdfc",
		}
		if err := store.CreateInvoice(ctx, original); err != nil {
			t.Fatalf("CreateInvoice failed: %v", err)
		}

		retrieved, err := store.GetInvoice(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetInvoice failed: %v", err)
		}
		if *retrieved != *original {
			t.Errorf("GetInvoice = %+v, want %+v", retrieved, original)
		}
	})

	t.Run("GetInvoice returns ErrNotFound for unknown ID", func(t *testing.T) {
		_, err := store.GetInvoice(ctx, "does-not-exist")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteInvoice removes the row", func(t *testing.T) {
		invoice := &models.Invoice{Total: 10, PayeeID: "a@b"}
		if err := store.CreateInvoice(ctx, invoice); err != nil {
			t.Fatalf("CreateInvoice failed: %v", err)
		}
		if err := store.DeleteInvoice(ctx, invoice.ID); err != nil {
			t.Fatalf("DeleteInvoice failed: %v", err)
		}
		if _, err := store.GetInvoice(ctx, invoice.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteInvoice(ctx, invoice.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestListInvoices(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i, createdAt := range []int64{100, 300, 200} {
		invoice := &models.Invoice{
			Total:     float64(i+1) * 100,
			PayeeID:   "shop@upi",
			CreatedAt: createdAt,
		}
		if err := store.CreateInvoice(ctx, invoice); err != nil {
			t.Fatalf("CreateInvoice failed: %v", err)
		}
	}

	all, err := store.ListInvoices(ctx, 0)
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 invoices, got %d", len(all))
	}
	wantOrder := []int64{300, 200, 100}
	for i, inv := range all {
		if inv.CreatedAt != wantOrder[i] {
			t.Errorf("invoice %d CreatedAt = %d, want %d", i, inv.CreatedAt, wantOrder[i])
		}
	}

	limited, err := store.ListInvoices(ctx, 2)
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 invoices, got %d", len(limited))
	}
}

func TestPreferences(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clientID := "7d9f3c1e-2a4b-4c5d-8e6f-0a1b2c3d4e5f"

	if _, err := store.GetPreference(ctx, clientID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}

	if err := store.SetPreference(ctx, &models.Preference{ClientID: clientID, Theme: models.ThemeDark}); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	pref, err := store.GetPreference(ctx, clientID)
	if err != nil {
		t.Fatalf("GetPreference failed: %v", err)
	}
	if pref.Theme != models.ThemeDark {
		t.Errorf("Theme = %s, want dark", pref.Theme)
	}
	if pref.UpdatedAt == 0 {
		t.Error("Expected UpdatedAt to be set")
	}

	// Saving again replaces the theme
	if err := store.SetPreference(ctx, &models.Preference{ClientID: clientID, Theme: models.ThemeLight, UpdatedAt: 42}); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	pref, err = store.GetPreference(ctx, clientID)
	if err != nil {
		t.Fatalf("GetPreference failed: %v", err)
	}
	if pref.Theme != models.ThemeLight || pref.UpdatedAt != 42 {
		t.Errorf("preference = %+v, want light at 42", pref)
	}

	// The schema rejects unknown themes
	if err := store.SetPreference(ctx, &models.Preference{ClientID: clientID, Theme: "sepia"}); err == nil {
		t.Error("expected error for unknown theme")
	}
}
