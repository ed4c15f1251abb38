package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"kitchen-calc/internal/storage"
)

type UnitProvider interface {
	Unit(ctx context.Context, unitID string) (*storage.UnitDocument, error)
}

func GetUnit(log *slog.Logger, provider UnitProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.units.get.GetUnit"

		unitID := chi.URLParam(r, "unitID")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		unit, err := provider.Unit(ctx, unitID)
		if err != nil {
			if errors.Is(err, storage.ErrUnitNotFound) {
				http.Error(w, "unit not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load unit")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, unit)
	}
}
