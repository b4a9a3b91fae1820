package response

import (
	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/usecase/queries"
)

type QuoteResponse struct {
	Prices FormattedPrices `json:"prices"`
	Totals TotalsResponse  `json:"totals"`
}

func FromQuoteResult(r *queries.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		Prices: formatSchedule(r.Prices),
		Totals: FromTotals(r.Totals),
	}
}

func formatSchedule(s pricing.PriceSchedule) FormattedPrices {
	return FormattedPrices{
		Adult:      pricing.FormatPrice(s.Adult),
		Child0to5:  pricing.FormatPrice(s.Child0to5),
		Child6to10: pricing.FormatPrice(s.Child6to10),
	}
}
