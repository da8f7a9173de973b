package entity

import "time"

// Business representa una organización/tenant del marketplace.
// Todos los usuarios y productos quedan delimitados por su Business.
type Business struct {
	ID          string
	Name        string
	Industry    string
	CompanySize string
	CreatedAt   time.Time
}
