package response

import (
	"time"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/usecase/queries"
)

type ReservationResponse struct {
	ID           string                `json:"id"`
	Adults       int32                 `json:"adults"`
	Participants []ParticipantResponse `json:"participants"`
	Phone        string                `json:"phone"`
	Coupon       string                `json:"coupon,omitempty"`
	Discount     string                `json:"discount"`
	Receipt      *string               `json:"receipt,omitempty"`
	Subtotal     string                `json:"subtotal"`
	Total        string                `json:"total"`
	CreatedAt    time.Time             `json:"createdAt"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   string                 `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	participants := make([]ParticipantResponse, len(v.Participants))
	for i, p := range v.Participants {
		participants[i] = ParticipantResponse{Name: p.Name, Bracket: p.AgeBracket}
	}
	return &ReservationResponse{
		ID:           v.ID.String(),
		Adults:       v.Adults,
		Participants: participants,
		Phone:        v.Phone,
		Coupon:       v.Coupon,
		Discount:     pricing.FormatPrice(v.Discount),
		Receipt:      v.Receipt,
		Subtotal:     pricing.FormatPrice(v.Subtotal),
		Total:        pricing.FormatPrice(v.Total),
		CreatedAt:    v.CreatedAt,
	}
}

func FromReservationList(items []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]*ReservationResponse, len(items))}
	for i, it := range items {
		resp.Reservations[i] = FromReservationView(it)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
