package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"procurement/internal/views"
	"procurement/models"
)

// ListEvaluationsHandler возвращает оценки; q ищет по поставщику и тендеру
func (h *Handler) ListEvaluationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	evals := h.evaluations.List(ctx)
	if q := r.URL.Query().Get("q"); q != "" {
		evals = views.SearchEvaluations(evals, h.tenders.List(ctx), q)
	}
	if tender := r.URL.Query().Get("tenderId"); tender != "" {
		evals = filterByTender(evals, models.ID(tender))
	}
	writeJSON(w, http.StatusOK, paginate(evals, parsePaginationParams(r)))
}

func filterByTender(evals []models.BidEvaluation, tenderID models.ID) []models.BidEvaluation {
	out := make([]models.BidEvaluation, 0, len(evals))
	for _, e := range evals {
		if e.TenderID == tenderID {
			out = append(out, e)
		}
	}
	return out
}

// RankedEvaluationsHandler возвращает все оценки, сгруппированные по тендерам, с местами
func (h *Handler) RankedEvaluationsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.views.RankedEvaluations(r.Context()))
}

func (h *Handler) EvaluationSummariesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.views.Summaries(r.Context()))
}

func (h *Handler) GetEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	e, err := h.evaluations.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// CreateEvaluationHandler: finalScore считается из оценок, если не передан
func (h *Handler) CreateEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	var input models.EvaluationPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var e models.BidEvaluation
	input.Apply(&e)
	if input.FinalScore == nil {
		e.FinalScore = views.FinalScore(e.TechnicalScore, e.FinancialScore)
	}

	if err := validateEvaluationRequest(&e); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if e.SupplierName == "" {
		// поставщик берется из оцениваемого предложения
		if b, err := h.bids.Get(r.Context(), e.BidID); err == nil {
			e.SupplierName = string(b.SupplierName)
		}
	}

	created, err := h.evaluations.Add(r.Context(), e)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) EditEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	var input models.EvaluationPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.evaluations.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	input.Apply(&current)
	if input.FinalScore == nil && (input.TechnicalScore != nil || input.FinancialScore != nil) {
		final := views.FinalScore(current.TechnicalScore, current.FinancialScore)
		input.FinalScore = &final
		current.FinalScore = final
	}
	if err := validateEvaluationRequest(&current); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.evaluations.Update(r.Context(), current.ID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	removed, err := h.evaluations.Delete(r.Context(), idParam(r))
	h.deleteResult(w, r, removed, err)
}

// validateEvaluationRequest: оценки в диапазоне [0, 100]
func validateEvaluationRequest(e *models.BidEvaluation) error {
	if e.TenderID == "" {
		return errors.New("tenderId is required")
	}
	if e.BidID == "" {
		return errors.New("bidId is required")
	}
	scores := []struct {
		name string
		v    float64
	}{
		{"technicalScore", e.TechnicalScore},
		{"financialScore", e.FinancialScore},
		{"finalScore", e.FinalScore},
	}
	for _, s := range scores {
		if s.v < 0 || s.v > 100 {
			return fmt.Errorf("%s must be between 0 and 100", s.name)
		}
	}
	return nil
}
