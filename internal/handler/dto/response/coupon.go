package response

import (
	"rodizio-reservas/internal/domain/coupon"
	"rodizio-reservas/internal/domain/pricing"
)

type CouponResponse struct {
	Code     string `json:"code"`
	Discount string `json:"discount"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		Code:     c.Code().String(),
		Discount: pricing.FormatPrice(c.Discount()),
	}
}
