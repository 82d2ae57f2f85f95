package views

import (
	"time"

	"github.com/shopspring/decimal"

	"procurement/models"
)

// IsExpired: end < now. Unreadable dates are never expired.
func IsExpired(end string, now time.Time) bool {
	return models.Contract{EndDate: end}.ExpiredAt(now)
}

// IsExpiringSoon: now < end <= now+days.
func IsExpiringSoon(end string, now time.Time, days int) bool {
	return models.Contract{EndDate: end}.ExpiringWithin(now, days)
}

// IsActive needs both the ACTIVE status and an end date after now. A contract marked
// ACTIVE past its end date is left as stored and only counted as expired.
func IsActive(c models.Contract, now time.Time) bool {
	return c.ActiveAt(now)
}

// Phase of a tender relative to its issue and closing dates.
type Phase string

const (
	PhaseNotStarted Phase = "not-started"
	PhaseActive     Phase = "active"
	PhaseClosed     Phase = "closed"
)

// TenderPhase: not started before the issue date, closed after the closing date.
// A missing date does not bound its side.
func TenderPhase(issue, closing string, now time.Time) Phase {
	if t, ok := models.ParseDate(issue); ok && now.Before(t) {
		return PhaseNotStarted
	}
	if t, ok := models.ParseDate(closing); ok && now.After(t) {
		return PhaseClosed
	}
	return PhaseActive
}

// ContractView adds the computed window flags to a stored contract.
type ContractView struct {
	models.Contract
	Active        bool `json:"active"`
	Expired       bool `json:"expired"`
	ExpiringSoon  bool `json:"expiringSoon"`
	DaysRemaining *int `json:"daysRemaining"`
}

func ViewContract(c models.Contract, now time.Time, days int) ContractView {
	v := ContractView{
		Contract:     c,
		Active:       c.ActiveAt(now),
		Expired:      c.ExpiredAt(now),
		ExpiringSoon: c.ExpiringWithin(now, days),
	}
	if d, ok := c.DaysRemaining(now); ok {
		v.DaysRemaining = &d
	}
	return v
}

// ContractStats are the summary cards above the contracts table.
type ContractStats struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	Expiring   int     `json:"expiring"`
	Expired    int     `json:"expired"`
	TotalValue float64 `json:"totalValue"`
}

func Stats(contracts []models.Contract, now time.Time, days int) ContractStats {
	st := ContractStats{Total: len(contracts)}
	total := decimal.Zero
	for _, c := range contracts {
		if c.ActiveAt(now) {
			st.Active++
		}
		if c.ExpiringWithin(now, days) {
			st.Expiring++
		}
		if c.ExpiredAt(now) {
			st.Expired++
		}
		total = total.Add(decimal.NewFromFloat(c.ContractValue))
	}
	st.TotalValue = total.Round(2).InexactFloat64()
	return st
}
