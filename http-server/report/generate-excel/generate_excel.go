package generate_excel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"kitchen-calc/internal/storage"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, unitID string) ([]byte, error)
}

// GenerateReportExcel streams the stored summary of a unit as an xlsx
// attachment. The summary must exist; generate it first.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		unitID := r.URL.Query().Get("unit_id")
		if unitID == "" {
			http.Error(w, "unit_id is required", http.StatusBadRequest)
			return
		}

		// Rendering a workbook takes longer than a plain query.
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, unitID)
		if err != nil {
			if errors.Is(err, storage.ErrUnitNotFound) || errors.Is(err, storage.ErrSummaryNotFound) {
				http.Error(w, "unit or summary not found", http.StatusNotFound)
				return
			}
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("cut_list_%s_%s.xlsx", unitID, time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
