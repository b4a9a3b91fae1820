package queries

import (
	"context"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/pkg/errs"
)

var ErrInvalidQuote = errs.New("invalid quote request")

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing_mock.go -package=queriesmock

// PricingQueries prices a party against the stored schedule without a draft
type PricingQueries interface {
	Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error)
}

type pricingQueriesImpl struct {
	settings   SettingsQueries
	calculator pricing.Calculator
}

func NewPricingQueries(settings SettingsQueries, calculator pricing.Calculator) PricingQueries {
	return &pricingQueriesImpl{settings: settings, calculator: calculator}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	participants, err := pricing.NewParticipants().Resize(in.PartySize)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuote)
	}
	copy(participants, in.Participants)

	schedule := q.settings.GetPrices(ctx).Schedule
	totals, err := q.calculator.Compute(in.PartySize, participants.Normalize(), schedule, in.Discount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuote)
	}

	return &QuoteResult{Prices: schedule, Totals: totals}, nil
}
