// Package person holds the identity fields shared by clients and trainers.
package person

// Fields is the common identity block embedded by the person-derived
// entities. Phone and Identification are unique within their owning store.
type Fields struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Identification string `json:"identification"`
}
