package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kitchen-calc/internal/storage"
)

func newUnitID() string {
	return "unit_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SaveUnit assigns an id and inserts the calculated unit. The part list
// and derived totals are stored as one JSON document so the read path
// does not have to reassemble the unit from rows.
func (s *Storage) SaveUnit(ctx context.Context, unit storage.UnitDocument) (*storage.UnitDocument, error) {
	const op = "storage.mysql.SaveUnit"

	unit.ID = newUnitID()
	now := time.Now().UTC()
	unit.CreatedAt = now
	unit.UpdatedAt = now

	raw, err := json.Marshal(unit)
	if err != nil {
		return nil, fmt.Errorf("%s: encode unit document: %w", op, err)
	}

	stmt := `INSERT INTO cabinet_units (id, unit_type, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, stmt, unit.ID, unit.Type, raw, unit.CreatedAt, unit.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &unit, nil
}

func (s *Storage) GetUnit(ctx context.Context, unitID string) (*storage.UnitDocument, error) {
	const op = "storage.mysql.GetUnit"

	stmt := "SELECT document FROM cabinet_units WHERE id = ?"

	var raw []byte
	err := s.db.QueryRowContext(ctx, stmt, unitID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: id=%s: %w", op, unitID, storage.ErrUnitNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var unit storage.UnitDocument
	if err := json.Unmarshal(raw, &unit); err != nil {
		return nil, fmt.Errorf("%s: decode unit document: %w", op, err)
	}

	return &unit, nil
}

// UpdateUnit rewrites the stored document in place, stamping
// updated_at. Used when an internal fit-out is added to a saved unit.
func (s *Storage) UpdateUnit(ctx context.Context, unit storage.UnitDocument) (*storage.UnitDocument, error) {
	const op = "storage.mysql.UpdateUnit"

	unit.UpdatedAt = time.Now().UTC()

	raw, err := json.Marshal(unit)
	if err != nil {
		return nil, fmt.Errorf("%s: encode unit document: %w", op, err)
	}

	stmt := "UPDATE cabinet_units SET document = ?, updated_at = ? WHERE id = ?"

	res, err := s.db.ExecContext(ctx, stmt, raw, unit.UpdatedAt, unit.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%s: id=%s: %w", op, unit.ID, storage.ErrUnitNotFound)
	}

	return &unit, nil
}
