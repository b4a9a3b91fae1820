package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	code      Code
	discount  Discount
	createdAt time.Time
	updatedAt time.Time
}

func NewCoupon(code string, discount decimal.Decimal) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	d, err := NewDiscount(discount)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		code:     couponCode,
		discount: d,
	}, nil
}

func ReconstructCoupon(code string, discount decimal.Decimal, createdAt, updatedAt time.Time) *Coupon {
	return &Coupon{
		code:      Code(code),
		discount:  Discount{amount: discount},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Coupon) Code() Code                { return c.code }
func (c *Coupon) Discount() decimal.Decimal { return c.discount.Amount() }
func (c *Coupon) CreatedAt() time.Time      { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time      { return c.updatedAt }
