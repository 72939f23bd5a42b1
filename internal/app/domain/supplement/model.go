// Package supplement defines supplements sold at the gym.
package supplement

// Supplement is a retail supplement product.
type Supplement struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}
