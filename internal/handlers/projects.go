package handlers

import (
	"errors"
	"net/http"

	"procurement/internal/views"
	"procurement/models"
)

func (h *Handler) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects := views.SearchProjects(h.projects.List(r.Context()), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, paginate(projects, parsePaginationParams(r)))
}

func (h *Handler) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	p, err := h.projects.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var input models.ProjectPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var p models.Project
	input.Apply(&p)

	if err := validateProjectRequest(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.projects.Add(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) EditProjectHandler(w http.ResponseWriter, r *http.Request) {
	var input models.ProjectPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.ProjectTitle != nil && *input.ProjectTitle == "" {
		writeMessage(w, http.StatusBadRequest, "projectTitle must not be empty")
		return
	}
	if input.EstimatedBudget != nil && *input.EstimatedBudget < 0 {
		writeMessage(w, http.StatusBadRequest, "estimatedBudget must not be negative")
		return
	}

	p, err := h.projects.Update(r.Context(), idParam(r), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	removed, err := h.projects.Delete(r.Context(), idParam(r))
	h.deleteResult(w, r, removed, err)
}

// ProjectTendersHandler возвращает тендеры проекта
func (h *Handler) ProjectTendersHandler(w http.ResponseWriter, r *http.Request) {
	tenders := h.tenders.ByProject(r.Context(), idParam(r))
	writeJSON(w, http.StatusOK, h.tenderViews(tenders))
}

// validateProjectRequest проверяет обязательные поля проекта
func validateProjectRequest(p *models.Project) error {
	if p.ProjectTitle == "" || len(p.ProjectTitle) > 200 {
		return errors.New("projectTitle is required and max length 200")
	}
	if p.ProjectNumber == "" {
		return errors.New("projectNumber is required")
	}
	if p.EstimatedBudget < 0 {
		return errors.New("estimatedBudget must not be negative")
	}
	if err := validateDates(p.StartDate, p.EndDate); err != nil {
		return err
	}
	return nil
}

// validateDates: обе даты необязательны, но если заданы, должны читаться и идти по порядку
func validateDates(start, end string) error {
	s, okS := models.ParseDate(start)
	if start != "" && !okS {
		return errors.New("invalid start date")
	}
	e, okE := models.ParseDate(end)
	if end != "" && !okE {
		return errors.New("invalid end date")
	}
	if okS && okE && e.Before(s) {
		return errors.New("end date must not be before start date")
	}
	return nil
}
