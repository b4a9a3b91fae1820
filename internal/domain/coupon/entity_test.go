//go:build unit

package coupon_test

import (
	"strings"
	"testing"

	"rodizio-reservas/internal/domain/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		discount string
		errIs    error
	}{
		{name: "valid", code: "RODIZIO10", discount: "10"},
		{name: "zero discount", code: "FREE", discount: "0"},
		{name: "code is case sensitive and kept as-is", code: "Promo", discount: "5.50"},
		{name: "blank code", code: "   ", discount: "10", errIs: coupon.ErrInvalidCouponCode},
		{name: "code too long", code: strings.Repeat("A", 65), discount: "10", errIs: coupon.ErrInvalidCouponCode},
		{name: "negative discount", code: "BAD", discount: "-1", errIs: coupon.ErrInvalidDiscountAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(tc.code, decimal.RequireFromString(tc.discount))
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.code), c.Code().String())
			assert.True(t, decimal.RequireFromString(tc.discount).Equal(c.Discount()))
		})
	}
}

func TestNewCouponCodeTrims(t *testing.T) {
	code, err := coupon.NewCouponCode("  NATAL ")
	require.NoError(t, err)
	assert.Equal(t, coupon.Code("NATAL"), code)
}
