package calculate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"kitchen-calc/internal/engine"
	"kitchen-calc/internal/storage"
)

type UnitCalculator interface {
	CalculateUnit(ctx context.Context, spec engine.UnitSpec) (*storage.UnitDocument, error)
	EstimateUnit(ctx context.Context, spec engine.UnitSpec) (*storage.UnitDocument, error)
}

// CalculateUnit runs the parametric calculator and persists the result.
// Dimension and unit type violations come back as 422, the request shape
// itself as 400.
func CalculateUnit(log *slog.Logger, calc UnitCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.units.calculate.CalculateUnit"

		var req engine.UnitSpec
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		unit, err := calc.CalculateUnit(ctx, req)
		if err != nil {
			writeCalcError(w, log, op, err)
			return
		}

		render.JSON(w, r, unit)
	}
}

// EstimateUnit is the pricing-focused variant. The result is saved and
// carries an id, so the estimate can be turned into a summary later.
func EstimateUnit(log *slog.Logger, calc UnitCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.units.calculate.EstimateUnit"

		var req engine.UnitSpec
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		unit, err := calc.EstimateUnit(ctx, req)
		if err != nil {
			writeCalcError(w, log, op, err)
			return
		}

		render.JSON(w, r, unit)
	}
}

func writeCalcError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	var dimErr *engine.InvalidDimensionError
	var typeErr *engine.UnknownUnitTypeError
	switch {
	case errors.As(err, &dimErr):
		http.Error(w, dimErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &typeErr):
		http.Error(w, typeErr.Error(), http.StatusUnprocessableEntity)
	default:
		log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to calculate unit")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
