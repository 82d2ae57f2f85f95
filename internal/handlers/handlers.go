package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"procurement/internal/logger"
	"procurement/internal/repository"
	"procurement/internal/views"
	"procurement/models"
)

// Ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// Deps collects the collaborators of Handler.
type Deps struct {
	Definitions DefinitionStore
	Projects    ProjectStore
	Tenders     TenderStore
	Bids        BidStore
	Evaluations EvaluationStore
	Contracts   ContractStore
	Preferences PreferenceStore
	Seed        SeedManager
	Views       *views.Service
	Log         *zap.Logger
}

// Handler serves the JSON API over the repositories and derived views.
type Handler struct {
	defs        DefinitionStore
	projects    ProjectStore
	tenders     TenderStore
	bids        BidStore
	evaluations EvaluationStore
	contracts   ContractStore
	prefs       PreferenceStore
	seed        SeedManager
	views       *views.Service
	log         *zap.Logger
}

// NewHandler создает новый Handler
func NewHandler(d Deps) *Handler {
	return &Handler{
		defs:        d.Definitions,
		projects:    d.Projects,
		tenders:     d.Tenders,
		bids:        d.Bids,
		evaluations: d.Evaluations,
		contracts:   d.Contracts,
		prefs:       d.Preferences,
		seed:        d.Seed,
		views:       d.Views,
		log:         logger.OrNop(d.Log),
	}
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type PaginationParams struct {
	Limit  int
	Offset int
}

// parsePaginationParams парсит limit и offset из query; без limit возвращается весь список
func parsePaginationParams(r *http.Request) PaginationParams {
	var params PaginationParams
	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			params.Limit = l
		}
	}
	if offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			params.Offset = o
		}
	}
	return params
}

func paginate[T any](items []T, p PaginationParams) []T {
	end := len(items)
	if p.Limit > 0 {
		end = p.Offset + p.Limit
	}
	out := lo.Slice(items, p.Offset, end)
	if out == nil {
		return []T{}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Reason string `json:"reason"`
}

func writeMessage(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, errorResponse{Reason: reason})
}

// writeError maps a repository error to a status; unexpected errors are logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}
	h.log.Error("request failed",
		logger.String("method", r.Method),
		logger.String("path", r.URL.Path),
		logger.ErrorF(err),
	)
	writeMessage(w, http.StatusInternalServerError, "storage failure")
}

// decodeJSON читает тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON format")
	}
	return nil
}

func idParam(r *http.Request) models.ID {
	return models.ID(chi.URLParam(r, "id"))
}

func (h *Handler) deleteResult(w http.ResponseWriter, r *http.Request, removed bool, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !removed {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
