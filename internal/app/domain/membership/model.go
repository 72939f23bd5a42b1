// Package membership defines gym membership plans.
package membership

import (
	"strings"

	"github.com/irongym/backend/internal/app/domain/dates"
)

// Type is the membership tier.
type Type string

const (
	TypeBasic   Type = "BASIC"
	TypePremium Type = "PREMIUM"
)

// ParseType normalizes a raw tier value. ok is false for values outside the
// closed set.
func ParseType(raw string) (Type, bool) {
	switch Type(strings.ToUpper(strings.TrimSpace(raw))) {
	case TypeBasic:
		return TypeBasic, true
	case TypePremium:
		return TypePremium, true
	default:
		return "", false
	}
}

// MonthlyPrice returns the list price per month for the tier.
func (t Type) MonthlyPrice() float64 {
	switch t {
	case TypePremium:
		return 80000
	default:
		return 50000
	}
}

// Membership ties a client to a plan for a date range. At most one membership
// may exist per client.
type Membership struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"clientId"`
	Type      Type       `json:"type"`
	StartDate dates.Date `json:"startDate"`
	EndDate   dates.Date `json:"endDate"`
	Price     float64    `json:"price"`
}

// ActiveOn reports whether the membership covers the given calendar day.
func (m Membership) ActiveOn(day dates.Date) bool {
	if m.StartDate.IsZero() || m.EndDate.IsZero() {
		return false
	}
	return !day.Before(m.StartDate) && !day.After(m.EndDate)
}

// ExpiredOn reports whether the membership ended before the given day.
func (m Membership) ExpiredOn(day dates.Date) bool {
	return !m.EndDate.IsZero() && day.After(m.EndDate)
}
