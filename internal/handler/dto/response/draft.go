package response

import (
	"time"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/usecase/commands"
)

type ParticipantResponse struct {
	Name    string `json:"name"`
	Bracket string `json:"bracket"`
}

type TotalsResponse struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

type NotificationResponse struct {
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DraftResponse is everything the reservation form renders
type DraftResponse struct {
	ID           string                `json:"id"`
	PartySize    int                   `json:"partySize"`
	Participants []ParticipantResponse `json:"participants"`
	Phone        string                `json:"phone"`
	CouponCode   string                `json:"couponCode"`
	Discount     string                `json:"discount"`
	Receipt      string                `json:"receipt"`
	Prices       PricesResponse        `json:"prices"`
	Totals       TotalsResponse        `json:"totals"`
	Popup        PopupResponse         `json:"popup"`
	Address      AddressResponse       `json:"address"`
	Payment      PaymentResponse       `json:"payment"`
	Notification *NotificationResponse `json:"notification"`
	SubmittedID  *string               `json:"submittedId"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func FromDraftState(s *commands.DraftState) *DraftResponse {
	resp := &DraftResponse{
		ID:           s.ID.String(),
		PartySize:    len(s.Participants),
		Participants: fromParticipants(s.Participants),
		Phone:        s.Phone,
		CouponCode:   s.CouponCode,
		Discount:     pricing.FormatPrice(s.Discount),
		Receipt:      s.Receipt,
		Prices:       FromPriceSettings(s.Settings.Prices),
		Totals:       FromTotals(s.Totals),
		Popup:        FromPopupSettings(s.Settings.Popup),
		Address:      FromAddress(s.Settings.Address),
		Payment:      FromPaymentSettings(s.Settings.Payment),
		CreatedAt:    s.CreatedAt,
	}
	if s.Notice != nil {
		resp.Notification = &NotificationResponse{
			Message:   s.Notice.Message,
			Type:      string(s.Notice.Kind),
			ExpiresAt: s.Notice.ExpiresAt,
		}
	}
	if s.SubmittedID != nil {
		id := s.SubmittedID.String()
		resp.SubmittedID = &id
	}
	return resp
}

func FromTotals(t pricing.ReservationTotal) TotalsResponse {
	return TotalsResponse{
		Subtotal: pricing.FormatPrice(t.Subtotal),
		Discount: pricing.FormatPrice(t.Discount),
		Total:    pricing.FormatPrice(t.Total),
	}
}

func fromParticipants(ps pricing.Participants) []ParticipantResponse {
	out := make([]ParticipantResponse, len(ps))
	for i, p := range ps {
		out[i] = ParticipantResponse{Name: p.Name, Bracket: p.AgeBracket.String()}
	}
	return out
}
