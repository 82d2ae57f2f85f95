package handlers

import (
	"net/http"
	"strconv"

	"procurement/internal/views"
	"procurement/models"
)

type setupStatus struct {
	HasAnyData bool           `json:"hasAnyData"`
	Counts     map[string]int `json:"counts"`
}

// SetupStatusHandler показывает, есть ли данные в коллекциях
func (h *Handler) SetupStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, http.StatusOK, setupStatus{HasAnyData: h.seed.HasAnyData(ctx), Counts: h.seed.Counts(ctx)})
}

// SeedHandler загружает демонстрационные данные и возвращает количество по коллекциям
func (h *Handler) SeedHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.seed.LoadAll(r.Context()))
}

// ClearHandler удаляет все данные; требуется confirm=true
func (h *Handler) ClearHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeMessage(w, http.StatusBadRequest, "confirm=true is required to clear all data")
		return
	}
	if err := h.seed.ClearAll(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type languageBody struct {
	Language models.Language `json:"language"`
}

func (h *Handler) GetLanguageHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languageBody{Language: h.prefs.Language(r.Context())})
}

func (h *Handler) SetLanguageHandler(w http.ResponseWriter, r *http.Request) {
	var input languageBody
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidLanguage(input.Language) {
		writeMessage(w, http.StatusBadRequest, models.ErrInvalidLanguage.Error())
		return
	}
	if err := h.prefs.SetLanguage(r.Context(), input.Language); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, input)
}

func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.views.Dashboard(r.Context()))
}

// queryFloat читает обязательный числовой параметр
func queryFloat(r *http.Request, name string) (float64, bool) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	return v, err == nil
}

type finalScoreResponse struct {
	FinalScore float64     `json:"finalScore"`
	Grade      views.Grade `json:"grade"`
}

// FinalScoreHandler: GET /calc/final-score?technical=&financial=
func (h *Handler) FinalScoreHandler(w http.ResponseWriter, r *http.Request) {
	tech, ok1 := queryFloat(r, "technical")
	fin, ok2 := queryFloat(r, "financial")
	if !ok1 || !ok2 || tech < 0 || tech > 100 || fin < 0 || fin > 100 {
		writeMessage(w, http.StatusBadRequest, "technical and financial must be numbers between 0 and 100")
		return
	}
	score := views.FinalScore(tech, fin)
	writeJSON(w, http.StatusOK, finalScoreResponse{FinalScore: score, Grade: views.GradeOf(score)})
}

type bondValueResponse struct {
	BondValue float64 `json:"bondValue"`
}

// BondValueHandler: GET /calc/bond-value?contractValue=&percentage=
func (h *Handler) BondValueHandler(w http.ResponseWriter, r *http.Request) {
	value, ok1 := queryFloat(r, "contractValue")
	pct, ok2 := queryFloat(r, "percentage")
	if !ok1 || !ok2 || value < 0 || pct < 0 || pct > 100 {
		writeMessage(w, http.StatusBadRequest, "contractValue and percentage must be valid numbers")
		return
	}
	writeJSON(w, http.StatusOK, bondValueResponse{BondValue: views.BondValue(value, pct)})
}
