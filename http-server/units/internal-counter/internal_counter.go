package internal_counter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"kitchen-calc/internal/engine"
	"kitchen-calc/internal/storage"
)

type InternalCounterCalculator interface {
	AddInternalCounter(ctx context.Context, unitID string, opts engine.InternalCounterOptions) (*storage.UnitDocument, error)
}

// AddInternalCounter calculates the interior fit-out (base, mirror, shelf,
// drawers) for a saved unit and stores it on the unit document.
func AddInternalCounter(log *slog.Logger, calc InternalCounterCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.units.internal-counter.AddInternalCounter"

		unitID := chi.URLParam(r, "unitID")

		var req engine.InternalCounterOptions
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		unit, err := calc.AddInternalCounter(ctx, unitID, req)
		if err != nil {
			var dimErr *engine.InvalidDimensionError
			var typeErr *engine.UnknownUnitTypeError
			switch {
			case errors.Is(err, storage.ErrUnitNotFound):
				http.Error(w, "unit not found", http.StatusNotFound)
			case errors.As(err, &dimErr):
				http.Error(w, dimErr.Error(), http.StatusUnprocessableEntity)
			case errors.As(err, &typeErr):
				http.Error(w, typeErr.Error(), http.StatusUnprocessableEntity)
			default:
				log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to calculate internal counter")
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, r, unit)
	}
}
