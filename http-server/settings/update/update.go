package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"kitchen-calc/internal/storage"
)

type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, update storage.SettingsUpdate) (*storage.SettingsDocument, error)
}

// UpdateSettings applies a partial settings update. Mounted behind the
// admin basic auth, the public surface never reaches it.
func UpdateSettings(log *slog.Logger, updater SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.update.UpdateSettings"

		var req storage.SettingsUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		doc, err := updater.UpdateSettings(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to update settings")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, doc)
	}
}
