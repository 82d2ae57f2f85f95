package handlers

import (
	"errors"
	"net/http"

	"procurement/internal/views"
	"procurement/models"
)

// ListBidsHandler возвращает предложения; q ищет по тендеру и поставщику
func (h *Handler) ListBidsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bids := h.bids.List(ctx)
	if q := r.URL.Query().Get("q"); q != "" {
		bids = views.SearchBids(bids, h.tenders.List(ctx), h.defs.List(ctx, models.CategorySuppliers), h.prefs.Language(ctx), q)
	}
	writeJSON(w, http.StatusOK, paginate(bids, parsePaginationParams(r)))
}

func (h *Handler) GetBidHandler(w http.ResponseWriter, r *http.Request) {
	b, err := h.bids.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) CreateBidHandler(w http.ResponseWriter, r *http.Request) {
	var input models.BidPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var b models.Bid
	input.Apply(&b)

	if err := validateBidRequest(&b); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.bids.Add(r.Context(), b)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) EditBidHandler(w http.ResponseWriter, r *http.Request) {
	var input models.BidPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.bids.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	input.Apply(&current)
	if err := validateBidRequest(&current); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.bids.Update(r.Context(), current.ID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) DeleteBidHandler(w http.ResponseWriter, r *http.Request) {
	removed, err := h.bids.Delete(r.Context(), idParam(r))
	h.deleteResult(w, r, removed, err)
}

// validateBidRequest проверяет обязательные поля предложения
func validateBidRequest(b *models.Bid) error {
	if b.TenderID == "" {
		return errors.New("tenderId is required")
	}
	if b.SupplierName == "" {
		return errors.New("supplierName is required")
	}
	if b.BidAmount < 0 {
		return errors.New("bidAmount must not be negative")
	}
	if b.SubmissionDate != "" {
		if _, ok := models.ParseDate(b.SubmissionDate); !ok {
			return errors.New("invalid submissionDate")
		}
	}
	return nil
}
