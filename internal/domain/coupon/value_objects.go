package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const maxCodeLength = 64

var (
	ErrInvalidCouponCode     = errors.New("invalid coupon code")
	ErrInvalidDiscountAmount = errors.New("discount amount cannot be negative")
)

// Code is matched exactly against stored coupons; only surrounding
// whitespace is dropped.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxCodeLength {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Discount is a flat amount subtracted from the subtotal
type Discount struct {
	amount decimal.Decimal
}

func NewDiscount(amount decimal.Decimal) (Discount, error) {
	if amount.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amount: amount}, nil
}

func (d Discount) Amount() decimal.Decimal {
	return d.amount
}
