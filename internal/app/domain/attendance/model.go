// Package attendance defines class attendance records.
package attendance

import (
	"regexp"

	"github.com/irongym/backend/internal/app/domain/dates"
)

// idPattern: prefix A followed by at least two digits (A01, A02, ...).
var idPattern = regexp.MustCompile(`^A\d{2,}$`)

// ValidID reports whether id matches the attendance identifier format.
func ValidID(id string) bool { return idPattern.MatchString(id) }

// Attendance records a client's presence in a group class.
type Attendance struct {
	ID           string         `json:"id"`
	DateTime     dates.DateTime `json:"dateTime"`
	ClientID     string         `json:"clientId"`
	GroupClassID string         `json:"groupClassId"`
}
