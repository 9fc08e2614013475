package entities

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message for a customer, shown until read
type Notification struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}
