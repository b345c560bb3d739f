package domain

import (
	"fmt"
	"time"
)

type RentalStatus string

const (
	RentalStatusPending  RentalStatus = "pending"
	RentalStatusApproved RentalStatus = "approved"
	RentalStatusInvoiced RentalStatus = "invoiced"
	RentalStatusPaid     RentalStatus = "paid"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusApproved, RentalStatusInvoiced, RentalStatusPaid:
		return true
	}
	return false
}

// Occupying reports whether a rental in this status currently holds a generator.
func (s RentalStatus) Occupying() bool {
	return s == RentalStatusApproved || s == RentalStatusInvoiced
}

// ParseRentalStatus converts a query/request string into a RentalStatus.
func ParseRentalStatus(raw string) (RentalStatus, error) {
	s := RentalStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown rental status %q", raw)
	}
	return s, nil
}

type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryTypePickup || d == DeliveryTypeDelivery
}

// Rental is a customer's booking record moving through the lifecycle
// state machine. Dates are calendar dates (yyyy-mm-dd, inclusive range,
// no time of day). GeneratorID is nil while the rental is pending and is
// set exactly when the rental enters the approved status; a paid rental
// keeps the id for reporting even though the unit is released.
//
// JSON keys match the legacy rentals.json layout.
type Rental struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	DeliveryType DeliveryType `json:"delivery_type"`
	Address      string       `json:"address"`
	PriceCents   int32        `json:"price_cents"`
	Status       RentalStatus `json:"status"`
	GeneratorID  *int32       `json:"generator_id"`
	CreatedAt    time.Time    `json:"created_at"`
}

// BookedPeriod is the date range of a rental currently occupying a
// generator. These are the periods the public calendar must block.
type BookedPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
