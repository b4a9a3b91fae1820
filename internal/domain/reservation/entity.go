package reservation

import (
	"time"

	"rodizio-reservas/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation is the submitted form. Subtotal and Total are computed
// server-side at submit time and stored alongside the raw inputs.
type Reservation struct {
	id           uuid.UUID
	adults       int
	participants pricing.Participants
	phone        Phone
	coupon       string
	discount     decimal.Decimal
	receipt      *string
	subtotal     decimal.Decimal
	total        decimal.Decimal
	createdAt    time.Time
}

func ReconstructReservation(
	id uuid.UUID,
	adults int,
	participants pricing.Participants,
	phone string,
	couponCode string,
	discount decimal.Decimal,
	receipt *string,
	subtotal, total decimal.Decimal,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		adults:       adults,
		participants: participants,
		phone:        Phone{value: phone},
		coupon:       couponCode,
		discount:     discount,
		receipt:      receipt,
		subtotal:     subtotal,
		total:        total,
		createdAt:    createdAt,
	}
}

func (r *Reservation) HasReceipt() bool {
	return r.receipt != nil && *r.receipt != ""
}

func (r *Reservation) ID() uuid.UUID                      { return r.id }
func (r *Reservation) Adults() int                        { return r.adults }
func (r *Reservation) Participants() pricing.Participants { return r.participants }
func (r *Reservation) Phone() Phone                       { return r.phone }
func (r *Reservation) Coupon() string                     { return r.coupon }
func (r *Reservation) Discount() decimal.Decimal          { return r.discount }
func (r *Reservation) Receipt() *string                   { return r.receipt }
func (r *Reservation) Subtotal() decimal.Decimal          { return r.subtotal }
func (r *Reservation) Total() decimal.Decimal             { return r.total }
func (r *Reservation) CreatedAt() time.Time               { return r.createdAt }
