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

type SummaryProvider interface {
	SummaryByUnit(ctx context.Context, unitID string) (*storage.SummaryDocument, error)
}

func GetSummary(log *slog.Logger, provider SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.summary.get.GetSummary"

		unitID := chi.URLParam(r, "unitID")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		doc, err := provider.SummaryByUnit(ctx, unitID)
		if err != nil {
			if errors.Is(err, storage.ErrSummaryNotFound) {
				http.Error(w, "summary not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load summary")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, doc)
	}
}
