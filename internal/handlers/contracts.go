package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"procurement/internal/views"
	"procurement/models"
)

// ListContractsHandler: q ищет по номеру, названию и поставщику, status фильтрует по коду статуса
func (h *Handler) ListContractsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query().Get("q")
	status := models.Code(r.URL.Query().Get("status"))

	contracts := h.contracts.List(ctx)
	if q != "" || status != "" {
		contracts = views.SearchContracts(contracts, h.defs.List(ctx, models.CategorySuppliers), h.prefs.Language(ctx), q, status)
	}
	writeJSON(w, http.StatusOK, h.views.ContractViews(paginate(contracts, parsePaginationParams(r))))
}

func (h *Handler) ActiveContractsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.views.ContractViews(h.views.ActiveContracts(r.Context())))
}

// ExpiringContractsHandler: days по умолчанию берется из настроек
func (h *Handler) ExpiringContractsHandler(w http.ResponseWriter, r *http.Request) {
	days := 0
	if s := r.URL.Query().Get("days"); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil || d <= 0 || d > 3650 {
			writeMessage(w, http.StatusBadRequest, "days must be a positive number")
			return
		}
		days = d
	}
	writeJSON(w, http.StatusOK, h.views.ContractViews(h.views.ExpiringContracts(r.Context(), days)))
}

func (h *Handler) ContractStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.views.ContractStats(r.Context()))
}

func (h *Handler) GetContractHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.contracts.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views.ContractViews([]models.Contract{c})[0])
}

// CreateContractHandler: сумма гарантии считается из процента, если не передана
func (h *Handler) CreateContractHandler(w http.ResponseWriter, r *http.Request) {
	var input models.ContractPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var c models.Contract
	input.Apply(&c)
	if c.PerformanceBond.BondValue == 0 {
		c.PerformanceBond.BondValue = views.BondValue(c.ContractValue, c.PerformanceBond.BondPercentage)
	}

	if err := validateContractRequest(&c); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.contracts.Add(r.Context(), c)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) EditContractHandler(w http.ResponseWriter, r *http.Request) {
	var input models.ContractPatch
	if err := decodeJSON(w, r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.contracts.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	input.Apply(&current)

	// при смене суммы договора или процента гарантия пересчитывается заново
	explicit := input.PerformanceBond != nil && input.PerformanceBond.BondValue != 0
	if (input.ContractValue != nil || input.PerformanceBond != nil) && !explicit {
		bond := current.PerformanceBond
		bond.BondValue = views.BondValue(current.ContractValue, bond.BondPercentage)
		input.PerformanceBond = &bond
		current.PerformanceBond = bond
	}
	if err := validateContractRequest(&current); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.contracts.Update(r.Context(), current.ID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteContractHandler(w http.ResponseWriter, r *http.Request) {
	removed, err := h.contracts.Delete(r.Context(), idParam(r))
	h.deleteResult(w, r, removed, err)
}

// validateContractRequest проверяет обязательные поля договора
func validateContractRequest(c *models.Contract) error {
	if c.ContractNumber == "" {
		return errors.New("contractNumber is required")
	}
	if c.ContractTitle == "" || len(c.ContractTitle) > 200 {
		return errors.New("contractTitle is required and max length 200")
	}
	if c.SupplierName == "" {
		return errors.New("supplierName is required")
	}
	if c.ContractValue < 0 {
		return errors.New("contractValue must not be negative")
	}
	if p := c.PerformanceBond.BondPercentage; p < 0 || p > 100 {
		return errors.New("bondPercentage must be between 0 and 100")
	}
	if err := validateDates(c.StartDate, c.EndDate); err != nil {
		return err
	}
	return nil
}
