package patch

import "github.com/shopspring/decimal"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceDecimal is Coalesce for nullable money columns
func CoalesceDecimal(d decimal.NullDecimal, fallback decimal.Decimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return fallback
}
