package queries

import (
	"time"

	"rodizio-reservas/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ParticipantView struct {
	Name       string `json:"name"`
	AgeBracket string `json:"age_bracket"`
}

// ReservationView is a stored reservation as the admin panel lists it
type ReservationView struct {
	ID           uuid.UUID         `json:"id"`
	Adults       int32             `json:"adults"`
	Participants []ParticipantView `json:"participants"`
	Phone        string            `json:"phone"`
	Coupon       string            `json:"coupon"`
	Discount     decimal.Decimal   `json:"discount"`
	Receipt      *string           `json:"receipt,omitempty"`
	Subtotal     decimal.Decimal   `json:"subtotal"`
	Total        decimal.Decimal   `json:"total"`
	CreatedAt    time.Time         `json:"created_at"`
}

type QuoteInput struct {
	PartySize    int
	Participants pricing.Participants
	Discount     decimal.Decimal
}

type QuoteResult struct {
	Prices pricing.PriceSchedule
	Totals pricing.ReservationTotal
}
