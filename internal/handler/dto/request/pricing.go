package request

import (
	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type QuoteParticipant struct {
	Name    string `json:"name"`
	Bracket string `json:"bracket" binding:"omitempty,oneof=0-5 6-10"`
}

type QuoteRequest struct {
	PartySize    int                `json:"partySize" binding:"required"`
	Participants []QuoteParticipant `json:"participants" binding:"omitempty,dive"`
	Discount     decimal.Decimal    `json:"discount" swaggertype:"string" example:"0"`
}

// ToDomain ignores participants beyond the party size
func (r *QuoteRequest) ToDomain() (queries.QuoteInput, error) {
	participants := make(pricing.Participants, 0, len(r.Participants))
	for i, p := range r.Participants {
		if i >= r.PartySize {
			break
		}
		b, err := pricing.ParseAgeBracket(p.Bracket)
		if err != nil {
			return queries.QuoteInput{}, err
		}
		participants = append(participants, pricing.Participant{Name: p.Name, AgeBracket: b})
	}
	return queries.QuoteInput{
		PartySize:    r.PartySize,
		Participants: participants,
		Discount:     r.Discount,
	}, nil
}
