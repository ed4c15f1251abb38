package generate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"kitchen-calc/internal/storage"
)

type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, unitID string) (*storage.SummaryDocument, error)
}

// GenerateSummary builds the merged cut-list report for a saved unit and
// persists it. A repeated call replaces the stored summary.
func GenerateSummary(log *slog.Logger, gen SummaryGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.summary.generate.GenerateSummary"

		var req struct {
			UnitID string `json:"unit_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.UnitID == "" {
			http.Error(w, "unit_id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		doc, err := gen.GenerateSummary(ctx, req.UnitID)
		if err != nil {
			if errors.Is(err, storage.ErrUnitNotFound) {
				http.Error(w, "unit not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to generate summary")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, doc)
	}
}
