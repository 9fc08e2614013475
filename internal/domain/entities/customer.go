package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Customer represents a customer profile entity
type Customer struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	PlateNumber null.String `json:"plateNumber,omitempty"`
	QRCode      string      `json:"qrCode"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeletedAt   null.Time   `json:"-"`
}

// CustomerInfo is the public projection returned to merchants on a scan
type CustomerInfo struct {
	CustomerID  uuid.UUID   `json:"customerId"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	PlateNumber null.String `json:"plateNumber,omitempty"`
}

// Info returns the public projection of the customer
func (c *Customer) Info() *CustomerInfo {
	return &CustomerInfo{
		CustomerID:  c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		PlateNumber: c.PlateNumber,
	}
}
