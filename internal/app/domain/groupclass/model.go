// Package groupclass defines scheduled group fitness classes.
package groupclass

// GroupClass is a scheduled class with bounded capacity. The trainer and the
// registered clients are referenced by ID only.
type GroupClass struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MaxCapacity int      `json:"maxCapacity"`
	Schedule    string   `json:"schedule"`
	TrainerID   string   `json:"trainerId,omitempty"`
	ClientIDs   []string `json:"clientIds"`
}

// HasClient reports whether the client is already registered.
func (g GroupClass) HasClient(clientID string) bool {
	for _, id := range g.ClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}

// Full reports whether the class reached its capacity.
func (g GroupClass) Full() bool {
	return g.MaxCapacity > 0 && len(g.ClientIDs) >= g.MaxCapacity
}
