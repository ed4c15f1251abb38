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

func newSummaryID() string {
	return "summary_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SaveSummary upserts the summary for a unit. A unit has at most one
// stored summary; regenerating replaces the document and the id.
func (s *Storage) SaveSummary(ctx context.Context, doc storage.SummaryDocument) (*storage.SummaryDocument, error) {
	const op = "storage.mysql.SaveSummary"

	doc.ID = newSummaryID()
	doc.CreatedAt = time.Now().UTC()

	raw, err := json.Marshal(doc.Summary)
	if err != nil {
		return nil, fmt.Errorf("%s: encode summary document: %w", op, err)
	}

	stmt := `INSERT INTO cabinet_summaries (id, unit_id, document, created_at) VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = VALUES(id), document = VALUES(document), created_at = VALUES(created_at)`

	if _, err := s.db.ExecContext(ctx, stmt, doc.ID, doc.UnitID, raw, doc.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &doc, nil
}

func (s *Storage) GetSummaryByUnit(ctx context.Context, unitID string) (*storage.SummaryDocument, error) {
	const op = "storage.mysql.GetSummaryByUnit"

	stmt := "SELECT id, unit_id, document, created_at FROM cabinet_summaries WHERE unit_id = ?"

	var doc storage.SummaryDocument
	var raw []byte

	err := s.db.QueryRowContext(ctx, stmt, unitID).Scan(&doc.ID, &doc.UnitID, &raw, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: unit_id=%s: %w", op, unitID, storage.ErrSummaryNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(raw, &doc.Summary); err != nil {
		return nil, fmt.Errorf("%s: decode summary document: %w", op, err)
	}

	return &doc, nil
}
