package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponSnapshot is the write side's view of a stored coupon
type CouponSnapshot struct {
	Code     string
	Discount decimal.Decimal
}

// ReservationCreated is published after a reservation row is committed
type ReservationCreated struct {
	ID        uuid.UUID `json:"id"`
	Adults    int       `json:"adults"`
	PartySize int       `json:"partySize"`
	Phone     string    `json:"phone"`
	Coupon    string    `json:"coupon"`
	Subtotal  string    `json:"subtotal"`
	Total     string    `json:"total"`
	Receipt   *string   `json:"receipt"`
	CreatedAt time.Time `json:"createdAt"`
}
