package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kitchen-calc/internal/engine"
	"kitchen-calc/internal/storage"
)

// The global settings live in a single JSON document row. A fixed id
// keeps the row addressable without a lookup table.
const settingsRowID = "global"

// GetSettings reads the global settings document. On a fresh database
// the row does not exist yet; it is seeded with the factory defaults so
// every caller after the first sees the same document.
func (s *Storage) GetSettings(ctx context.Context) (*storage.SettingsDocument, error) {
	const op = "storage.mysql.GetSettings"

	stmt := "SELECT document, last_updated FROM cabinet_settings WHERE id = ?"

	var raw []byte
	var doc storage.SettingsDocument

	err := s.db.QueryRowContext(ctx, stmt, settingsRowID).Scan(&raw, &doc.LastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.seedSettings(ctx)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(raw, &doc.Settings); err != nil {
		return nil, fmt.Errorf("%s: decode settings document: %w", op, err)
	}

	return &doc, nil
}

// UpdateSettings merges a partial update into the stored document and
// stamps last_updated.
func (s *Storage) UpdateSettings(ctx context.Context, update storage.SettingsUpdate) (*storage.SettingsDocument, error) {
	const op = "storage.mysql.UpdateSettings"

	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	merged := update.Apply(current.Settings)
	now := time.Now().UTC()

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("%s: encode settings document: %w", op, err)
	}

	stmt := "UPDATE cabinet_settings SET document = ?, last_updated = ? WHERE id = ?"

	if _, err := s.db.ExecContext(ctx, stmt, raw, now, settingsRowID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.SettingsDocument{Settings: merged, LastUpdated: now}, nil
}

func (s *Storage) seedSettings(ctx context.Context) (*storage.SettingsDocument, error) {
	const op = "storage.mysql.seedSettings"

	defaults := engine.DefaultSettings()
	now := time.Now().UTC()

	raw, err := json.Marshal(defaults)
	if err != nil {
		return nil, fmt.Errorf("%s: encode defaults: %w", op, err)
	}

	stmt := `INSERT INTO cabinet_settings (id, document, last_updated) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`

	if _, err := s.db.ExecContext(ctx, stmt, settingsRowID, raw, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.SettingsDocument{Settings: defaults, LastUpdated: now}, nil
}
