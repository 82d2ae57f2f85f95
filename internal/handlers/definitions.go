package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"procurement/internal/views"
	"procurement/models"
)

// categoryParam возвращает категорию из пути или пишет 400
func categoryParam(w http.ResponseWriter, r *http.Request) (models.Category, bool) {
	c := models.Category(chi.URLParam(r, "category"))
	if !models.ValidCategory(c) {
		writeMessage(w, http.StatusBadRequest, "unknown definition category")
		return "", false
	}
	return c, true
}

// CategoriesHandler возвращает список категорий справочников
func (h *Handler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Categories)
}

func (h *Handler) ListDefinitionsHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	items := views.SearchDefinitions(h.defs.List(r.Context(), c), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, paginate(items, parsePaginationParams(r)))
}

func (h *Handler) CreateDefinitionHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	var input models.DefinitionPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var item models.DefinitionItem
	input.Apply(&item)

	if err := validateDefinitionRequest(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.defs.Add(r.Context(), c, item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) EditDefinitionHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	var input models.DefinitionPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Code != nil && *input.Code == "" {
		writeMessage(w, http.StatusBadRequest, "code must not be empty")
		return
	}

	item, err := h.defs.Update(r.Context(), c, idParam(r), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteDefinitionHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	removed, err := h.defs.Delete(r.Context(), c, idParam(r))
	h.deleteResult(w, r, removed, err)
}

// validateDefinitionRequest: код и хотя бы одно название
func validateDefinitionRequest(d *models.DefinitionItem) error {
	if d.Code == "" || len(d.Code) > 50 {
		return errors.New("code is required and max length 50")
	}
	if d.NameAr == "" && d.NameEn == "" {
		return errors.New("nameAr or nameEn is required")
	}
	return nil
}
