package edge_breakdown

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"kitchen-calc/internal/engine"
	"kitchen-calc/internal/service/cutlist"
	"kitchen-calc/internal/storage"
)

type EdgeBreakdownProvider interface {
	EdgeBreakdown(ctx context.Context, unitID string, edgeType engine.EdgeType) (*cutlist.EdgeBreakdownResult, error)
}

// GetEdgeBreakdown lists every edge of the unit's parts with lengths and
// pricing. The edge_type query parameter defaults to pvc.
func GetEdgeBreakdown(log *slog.Logger, provider EdgeBreakdownProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.units.edge-breakdown.GetEdgeBreakdown"

		unitID := chi.URLParam(r, "unitID")

		var edgeType engine.EdgeType
		if raw := r.URL.Query().Get("edge_type"); raw != "" {
			parsed, ok := engine.ParseEdgeType(raw)
			if !ok {
				http.Error(w, "unknown edge_type", http.StatusBadRequest)
				return
			}
			edgeType = parsed
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := provider.EdgeBreakdown(ctx, unitID, edgeType)
		if err != nil {
			if errors.Is(err, storage.ErrUnitNotFound) {
				http.Error(w, "unit not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to build edge breakdown")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, result)
	}
}
