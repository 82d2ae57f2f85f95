package handlers

import (
	"errors"
	"net/http"

	"procurement/internal/views"
	"procurement/models"
)

// TenderView is a tender with its phase as of now.
type TenderView struct {
	models.Tender
	Phase views.Phase `json:"phase"`
}

func (h *Handler) tenderViews(tenders []models.Tender) []TenderView {
	out := make([]TenderView, 0, len(tenders))
	for _, t := range tenders {
		out = append(out, TenderView{Tender: t, Phase: h.views.TenderPhase(t)})
	}
	return out
}

// ListTendersHandler возвращает список тендеров; q ищет по номеру и названию
func (h *Handler) ListTendersHandler(w http.ResponseWriter, r *http.Request) {
	tenders := views.SearchTenders(h.tenders.List(r.Context()), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, h.tenderViews(paginate(tenders, parsePaginationParams(r))))
}

func (h *Handler) GetTenderHandler(w http.ResponseWriter, r *http.Request) {
	t, err := h.tenders.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TenderView{Tender: t, Phase: h.views.TenderPhase(t)})
}

// CreateTenderHandler обрабатывает POST /api/tenders
func (h *Handler) CreateTenderHandler(w http.ResponseWriter, r *http.Request) {
	var input models.TenderPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var t models.Tender
	input.Apply(&t)

	// Валидация полей
	if err := validateTenderRequest(&t); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.tenders.Add(r.Context(), t)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) EditTenderHandler(w http.ResponseWriter, r *http.Request) {
	var input models.TenderPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.tenders.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	// проверяем результат слияния, а не только присланные поля
	input.Apply(&current)
	if err := validateTenderRequest(&current); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.tenders.Update(r.Context(), current.ID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTenderHandler(w http.ResponseWriter, r *http.Request) {
	removed, err := h.tenders.Delete(r.Context(), idParam(r))
	h.deleteResult(w, r, removed, err)
}

// TenderBidsHandler возвращает предложения по тендеру
func (h *Handler) TenderBidsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bids.ByTender(r.Context(), idParam(r)))
}

// TenderEvaluationsHandler возвращает оценки тендера с местами
func (h *Handler) TenderEvaluationsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.views.RankedForTender(r.Context(), idParam(r)))
}

// AvailableBidsHandler: предложения, которые еще можно оценить; editing исключает текущую оценку
func (h *Handler) AvailableBidsHandler(w http.ResponseWriter, r *http.Request) {
	editing := models.ID(r.URL.Query().Get("editing"))
	writeJSON(w, http.StatusOK, h.views.AvailableBids(r.Context(), idParam(r), editing))
}

// validateTenderRequest проверяет необходимые поля тендера
func validateTenderRequest(t *models.Tender) error {
	if t.TenderTitle == "" || len(t.TenderTitle) > 200 {
		return errors.New("tenderTitle is required and max length 200")
	}
	if t.TenderID == "" {
		return errors.New("tenderId is required")
	}
	if t.ProjectReference == "" {
		return errors.New("projectReference is required")
	}
	if err := validateDates(t.TenderIssueDate, t.TenderClosingDate); err != nil {
		return err
	}
	return nil
}
