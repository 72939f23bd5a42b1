// Package equipment defines gym equipment inventory records.
package equipment

import "strings"

// Status is the operational state of a piece of equipment.
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusMaintenance  Status = "MAINTENANCE"
	StatusOutOfService Status = "OUT_OF_SERVICE"
)

// ParseStatus normalizes a raw status value. ok is false for values outside
// the closed set.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusActive:
		return StatusActive, true
	case StatusMaintenance:
		return StatusMaintenance, true
	case StatusOutOfService:
		return StatusOutOfService, true
	default:
		return "", false
	}
}

// Equipment is a single inventory item.
type Equipment struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status Status `json:"status"`
}
