package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeDiscount = errors.New("discount cannot be negative")

// ReservationTotal keeps unrounded values; use Rounded for display
type ReservationTotal struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

func (t ReservationTotal) Rounded() ReservationTotal {
	return ReservationTotal{
		Subtotal: t.Subtotal.Round(2),
		Discount: t.Discount.Round(2),
		Total:    t.Total.Round(2),
	}
}

type Calculator interface {
	Compute(partySize int, participants Participants, prices PriceSchedule, discount decimal.Decimal) (ReservationTotal, error)
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (DefaultCalculator) Compute(partySize int, participants Participants, prices PriceSchedule, discount decimal.Decimal) (ReservationTotal, error) {
	return ComputeTotal(partySize, participants, prices, discount)
}

// ComputeTotal bills every person at the adult price, then swaps the adult
// price for the child tier of each bracketed participant after the first.
// The total is not clamped: a discount above the subtotal yields a negative total.
func ComputeTotal(partySize int, participants Participants, prices PriceSchedule, discount decimal.Decimal) (ReservationTotal, error) {
	if err := ValidatePartySize(partySize); err != nil {
		return ReservationTotal{}, err
	}
	if discount.IsNegative() {
		return ReservationTotal{}, ErrNegativeDiscount
	}

	subtotal := prices.Adult.Mul(decimal.NewFromInt(int64(partySize)))
	for i, p := range participants {
		if i == 0 || !p.AgeBracket.IsChild() {
			continue
		}
		subtotal = subtotal.Sub(prices.Adult).Add(prices.PriceFor(p.AgeBracket))
	}

	return ReservationTotal{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}, nil
}
