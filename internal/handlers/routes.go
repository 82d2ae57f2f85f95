package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the /api sub-router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/ping", h.PingHandler)

	// справочники
	r.Get("/definitions", h.CategoriesHandler)
	r.Route("/definitions/{category}", func(r chi.Router) {
		r.Get("/", h.ListDefinitionsHandler)
		r.Post("/", h.CreateDefinitionHandler)
		r.Patch("/{id}", h.EditDefinitionHandler)
		r.Delete("/{id}", h.DeleteDefinitionHandler)
	})

	// проекты
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.ListProjectsHandler)
		r.Post("/", h.CreateProjectHandler)
		r.Get("/{id}", h.GetProjectHandler)
		r.Patch("/{id}", h.EditProjectHandler)
		r.Delete("/{id}", h.DeleteProjectHandler)
		r.Get("/{id}/tenders", h.ProjectTendersHandler)
	})

	// тендеры
	r.Route("/tenders", func(r chi.Router) {
		r.Get("/", h.ListTendersHandler)
		r.Post("/", h.CreateTenderHandler)
		r.Get("/{id}", h.GetTenderHandler)
		r.Patch("/{id}", h.EditTenderHandler)
		r.Delete("/{id}", h.DeleteTenderHandler)
		r.Get("/{id}/bids", h.TenderBidsHandler)
		r.Get("/{id}/evaluations", h.TenderEvaluationsHandler)
		r.Get("/{id}/available-bids", h.AvailableBidsHandler)
	})

	// предложения (bids)
	r.Route("/bids", func(r chi.Router) {
		r.Get("/", h.ListBidsHandler)
		r.Post("/", h.CreateBidHandler)
		r.Get("/{id}", h.GetBidHandler)
		r.Patch("/{id}", h.EditBidHandler)
		r.Delete("/{id}", h.DeleteBidHandler)
	})

	// оценки
	r.Route("/evaluations", func(r chi.Router) {
		r.Get("/", h.ListEvaluationsHandler)
		r.Post("/", h.CreateEvaluationHandler)
		r.Get("/ranked", h.RankedEvaluationsHandler)
		r.Get("/summaries", h.EvaluationSummariesHandler)
		r.Get("/{id}", h.GetEvaluationHandler)
		r.Patch("/{id}", h.EditEvaluationHandler)
		r.Delete("/{id}", h.DeleteEvaluationHandler)
	})

	// договоры
	r.Route("/contracts", func(r chi.Router) {
		r.Get("/", h.ListContractsHandler)
		r.Post("/", h.CreateContractHandler)
		r.Get("/active", h.ActiveContractsHandler)
		r.Get("/expiring", h.ExpiringContractsHandler)
		r.Get("/stats", h.ContractStatsHandler)
		r.Get("/{id}", h.GetContractHandler)
		r.Patch("/{id}", h.EditContractHandler)
		r.Delete("/{id}", h.DeleteContractHandler)
	})

	r.Get("/calc/final-score", h.FinalScoreHandler)
	r.Get("/calc/bond-value", h.BondValueHandler)

	r.Get("/setup/status", h.SetupStatusHandler)
	r.Post("/setup/seed", h.SeedHandler)
	r.Delete("/setup", h.ClearHandler)

	r.Get("/preferences/language", h.GetLanguageHandler)
	r.Put("/preferences/language", h.SetLanguageHandler)

	r.Get("/dashboard", h.DashboardHandler)

	return r
}
