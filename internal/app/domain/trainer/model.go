// Package trainer defines the trainer entity.
package trainer

import "github.com/irongym/backend/internal/app/domain/person"

// Trainer leads group classes. Group classes reference it by ID only.
type Trainer struct {
	person.Fields
}
