//go:build unit

package pricing_test

import (
	"testing"

	"rodizio-reservas/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0.00"},
		{in: "0.0000", want: "0.00"},
		{in: "0.00005", want: "0.00"},
		{in: "0.0000999", want: "0.00"},
		{in: "-0.00009", want: "0.00"},
		{in: "45", want: "45.00"},
		{in: "69.9", want: "69.90"},
		{in: "12.345", want: "12.35"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.FormatPrice(dec(tc.in)))
		})
	}
}
