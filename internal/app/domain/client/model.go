// Package client defines the gym member entity.
package client

import "github.com/irongym/backend/internal/app/domain/person"

// Client is a registered gym member. Cross-entity records (memberships,
// payments, attendance) reference it by ID only.
type Client struct {
	person.Fields
}
