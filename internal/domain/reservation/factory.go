package reservation

import (
	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock      clock.Clock
	Calculator pricing.Calculator
}

func NewFactory(clock clock.Clock, calculator pricing.Calculator) *Factory {
	return &Factory{
		Clock:      clock,
		Calculator: calculator,
	}
}

// CreateReservation snapshots the draft into a record ready for insert.
// The draft itself is not modified.
func (f *Factory) CreateReservation(d *Draft) (*Reservation, error) {
	if d.IsSubmitted() {
		return nil, ErrDraftSubmitted
	}

	participants := d.Participants().Normalize()
	totals, err := f.Calculator.Compute(d.PartySize(), participants, d.Prices().Schedule, d.Discount())
	if err != nil {
		return nil, err
	}

	var receipt *string
	if d.Receipt() != "" {
		r := d.Receipt()
		receipt = &r
	}

	return &Reservation{
		id:           uuid.New(),
		adults:       d.PartySize(),
		participants: participants,
		phone:        d.Phone(),
		coupon:       d.CouponCode().String(),
		discount:     d.Discount(),
		receipt:      receipt,
		subtotal:     totals.Subtotal,
		total:        totals.Total,
		createdAt:    f.Clock.Now(),
	}, nil
}
