package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/invoicesplit/internal/models"
	"github.com/mmynk/invoicesplit/internal/storage"
)

// GetPreference retrieves the saved preference of a client.
func (s *SQLiteStore) GetPreference(ctx context.Context, clientID string) (*models.Preference, error) {
	query := `
		SELECT client_id, theme, updated_at
		FROM preferences
		WHERE client_id = ?
	`

	pref := &models.Preference{}
	var theme string
	err := s.db.QueryRowContext(ctx, query, clientID).Scan(
		&pref.ClientID,
		&theme,
		&pref.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("preference for %s: %w", clientID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	pref.Theme = models.Theme(theme)

	return pref, nil
}

// SetPreference inserts or replaces the preference of a client.
func (s *SQLiteStore) SetPreference(ctx context.Context, pref *models.Preference) error {
	if pref.UpdatedAt == 0 {
		pref.UpdatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO preferences (client_id, theme, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (client_id) DO UPDATE SET
			theme = excluded.theme,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		pref.ClientID,
		string(pref.Theme),
		pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return nil
}
