package models

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DefaultExpiringDays is the look-ahead used when none is given.
const DefaultExpiringDays = 30

// End returns the parsed end date.
func (c Contract) End() (time.Time, bool) { return ParseDate(c.EndDate) }

// ExpiredAt: end date is before now. A contract without a readable end date never expires.
func (c Contract) ExpiredAt(now time.Time) bool {
	end, ok := c.End()
	return ok && end.Before(now)
}

// ExpiringWithin: now < end <= now+days, regardless of status.
func (c Contract) ExpiringWithin(now time.Time, days int) bool {
	end, ok := c.End()
	if !ok {
		return false
	}
	return end.After(now) && !end.After(now.Add(time.Duration(days)*day))
}

// ActiveAt requires both the ACTIVE status and an end date after now.
// Status is never changed here even when the two disagree.
func (c Contract) ActiveAt(now time.Time) bool {
	end, ok := c.End()
	return ok && c.ContractStatus == ContractStatusActive && end.After(now)
}

// DaysRemaining rounds up; negative once expired. ok is false without an end date.
func (c Contract) DaysRemaining(now time.Time) (int, bool) {
	end, ok := c.End()
	if !ok {
		return 0, false
	}
	return int(math.Ceil(end.Sub(now).Hours() / 24)), true
}
