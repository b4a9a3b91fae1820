package converter

import (
	"encoding/json"
	"fmt"
	"math"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/reservation"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"
)

// participantRecord is the stored JSON shape; "child" is null for adults
type participantRecord struct {
	Name  string  `json:"name"`
	Child *string `json:"child"`
}

func ReservationToInfra(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	if res.Adults() > math.MaxInt32 {
		return sqlc.CreateReservationParams{}, fmt.Errorf("adults out of int32 range: %d", res.Adults())
	}

	participants, err := ParticipantsToJSON(res.Participants())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}

	return sqlc.CreateReservationParams{
		ID:           res.ID(),
		Adults:       int32(res.Adults()),
		Participants: participants,
		Phone:        res.Phone().String(),
		Coupon:       res.Coupon(),
		Discount:     pgconv.DecimalToNumeric(res.Discount()),
		Receipt:      pgconv.StringPtrToPgtype(res.Receipt()),
		Subtotal:     pgconv.DecimalToNumeric(res.Subtotal()),
		Total:        pgconv.DecimalToNumeric(res.Total()),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
	}, nil
}

func ParticipantsToJSON(ps pricing.Participants) ([]byte, error) {
	records := make([]participantRecord, len(ps))
	for i, p := range ps {
		records[i].Name = p.Name
		if p.AgeBracket.IsChild() {
			b := p.AgeBracket.String()
			records[i].Child = &b
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode participants: %w", err)
	}
	return data, nil
}

func ParticipantsFromJSON(data []byte) (pricing.Participants, error) {
	var records []participantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	ps := make(pricing.Participants, len(records))
	for i, r := range records {
		ps[i].Name = r.Name
		if r.Child == nil {
			continue
		}
		b, err := pricing.ParseAgeBracket(*r.Child)
		if err != nil {
			return nil, fmt.Errorf("participant %d: %w", i, err)
		}
		ps[i].AgeBracket = b
	}
	return ps, nil
}
