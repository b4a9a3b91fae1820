//go:build unit || e2e

package builder

import (
	"time"

	"rodizio-reservas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	Participants []queries.ParticipantView
	Phone        string
	Coupon       string
	Discount     decimal.Decimal
	Receipt      *string
	Subtotal     decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	receipt := "receipts/1740830400000_comprovante.pdf"
	return &ReservationBuilder{
		ID: uuid.New(),
		Participants: []queries.ParticipantView{
			{Name: "Ana"},
			{Name: "Bia", AgeBracket: "0-5"},
			{Name: "Caio", AgeBracket: "6-10"},
		},
		Phone:     "11999990000",
		Coupon:    "DESCONTO10",
		Discount:  decimal.NewFromInt(10),
		Receipt:   &receipt,
		Subtotal:  decimal.RequireFromString("114.90"),
		Total:     decimal.RequireFromString("104.90"),
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           r.ID,
		Adults:       int32(len(r.Participants)),
		Participants: r.Participants,
		Phone:        r.Phone,
		Coupon:       r.Coupon,
		Discount:     r.Discount,
		Receipt:      r.Receipt,
		Subtotal:     r.Subtotal,
		Total:        r.Total,
		CreatedAt:    r.CreatedAt,
	}
}
