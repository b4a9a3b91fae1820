package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativePrice = errors.New("price cannot be negative")

var (
	DefaultAdultPrice      = decimal.RequireFromString("69.90")
	DefaultChild0to5Price  = decimal.Zero
	DefaultChild6to10Price = decimal.NewFromInt(45)
)

// PriceSchedule is the adult price plus the two child tiers
type PriceSchedule struct {
	Adult      decimal.Decimal
	Child0to5  decimal.Decimal
	Child6to10 decimal.Decimal
}

func NewPriceSchedule(adult, child0to5, child6to10 decimal.Decimal) (PriceSchedule, error) {
	for _, p := range []decimal.Decimal{adult, child0to5, child6to10} {
		if p.IsNegative() {
			return PriceSchedule{}, ErrNegativePrice
		}
	}
	return PriceSchedule{
		Adult:      adult,
		Child0to5:  child0to5,
		Child6to10: child6to10,
	}, nil
}

func DefaultPriceSchedule() PriceSchedule {
	return PriceSchedule{
		Adult:      DefaultAdultPrice,
		Child0to5:  DefaultChild0to5Price,
		Child6to10: DefaultChild6to10Price,
	}
}

// PriceFor returns what a participant with the given bracket pays
func (s PriceSchedule) PriceFor(b AgeBracket) decimal.Decimal {
	switch b {
	case Bracket0to5:
		return s.Child0to5
	case Bracket6to10:
		return s.Child6to10
	default:
		return s.Adult
	}
}
