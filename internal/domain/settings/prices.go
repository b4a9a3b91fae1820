package settings

import (
	"rodizio-reservas/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// PriceSettings is the single prices row: the schedule plus page titles
type PriceSettings struct {
	Schedule         pricing.PriceSchedule
	LocationTitle    string
	ReservationTitle string
}

func DefaultPriceSettings() PriceSettings {
	return PriceSettings{Schedule: pricing.DefaultPriceSchedule()}
}

func NewPriceSettings(adult, child0to5, child6to10 decimal.Decimal, locationTitle, reservationTitle string) (PriceSettings, error) {
	schedule, err := pricing.NewPriceSchedule(adult, child0to5, child6to10)
	if err != nil {
		return PriceSettings{}, err
	}
	return PriceSettings{
		Schedule:         schedule,
		LocationTitle:    locationTitle,
		ReservationTitle: reservationTitle,
	}, nil
}

// PriceSettingsFromNullable fills absent columns with the default schedule
func PriceSettingsFromNullable(adult, child0to5, child6to10 decimal.NullDecimal, locationTitle, reservationTitle string) PriceSettings {
	def := pricing.DefaultPriceSchedule()
	return PriceSettings{
		Schedule: pricing.PriceSchedule{
			Adult:      pick(adult, def.Adult),
			Child0to5:  pick(child0to5, def.Child0to5),
			Child6to10: pick(child6to10, def.Child6to10),
		},
		LocationTitle:    locationTitle,
		ReservationTitle: reservationTitle,
	}
}

func pick(v decimal.NullDecimal, fallback decimal.Decimal) decimal.Decimal {
	if v.Valid {
		return v.Decimal
	}
	return fallback
}
