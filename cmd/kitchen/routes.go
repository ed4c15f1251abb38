package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	generate_excel "kitchen-calc/http-server/report/generate-excel"
	getsettings "kitchen-calc/http-server/settings/get"
	upsettings "kitchen-calc/http-server/settings/update"
	gensummary "kitchen-calc/http-server/summary/generate"
	getsummary "kitchen-calc/http-server/summary/get"
	"kitchen-calc/http-server/units/calculate"
	edge_breakdown "kitchen-calc/http-server/units/edge-breakdown"
	getunit "kitchen-calc/http-server/units/get"
	internal_counter "kitchen-calc/http-server/units/internal-counter"
	"kitchen-calc/internal/config"
	"kitchen-calc/internal/middleware/auth"
	"kitchen-calc/internal/service/cutlist"
	generate_excel2 "kitchen-calc/internal/service/generate-excel"
)

func routes(cfg *config.Config, log *slog.Logger, calcService *cutlist.Service, genService *generate_excel2.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	router.Get("/api/settings", getsettings.GetSettings(log, calcService))

	router.Post("/api/units/calculate", calculate.CalculateUnit(log, calcService))
	router.Post("/api/units/estimate", calculate.EstimateUnit(log, calcService))
	router.Get("/api/units/{unitID}", getunit.GetUnit(log, calcService))
	router.Post("/api/units/{unitID}/internal-counter", internal_counter.AddInternalCounter(log, calcService))
	router.Get("/api/units/{unitID}/edge-breakdown", edge_breakdown.GetEdgeBreakdown(log, calcService))

	router.Post("/api/summaries/generate", gensummary.GenerateSummary(log, calcService))
	router.Get("/api/summaries/{unitID}", getsummary.GetSummary(log, calcService))

	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Put("/settings", upsettings.UpdateSettings(log, calcService))

	router.Mount("/api/admin", adminRouter)

	return router
}
