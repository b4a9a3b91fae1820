//go:build unit || e2e

package builder

import (
	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/settings"
	reqdto "rodizio-reservas/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type SettingsBuilder struct {
	Adult            decimal.Decimal
	Child0to5        decimal.Decimal
	Child6to10       decimal.Decimal
	LocationTitle    string
	ReservationTitle string
	Address          string
	PopupTitle       string
	PopupDescription string
	PopupShow        bool
	PixKey           string
	PixType          settings.PixKeyType
}

func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		Adult:            pricing.DefaultAdultPrice,
		Child0to5:        pricing.DefaultChild0to5Price,
		Child6to10:       pricing.DefaultChild6to10Price,
		LocationTitle:    "Unidade Centro",
		ReservationTitle: "Reserva de Rodízio",
		Address:          "Rua das Flores, 123 - Centro",
		PopupTitle:       "Bem-vindo!",
		PopupDescription: "Reservas para sábado e domingo.",
		PopupShow:        true,
		PixKey:           "12345678900",
		PixType:          settings.PixKeyCPF,
	}
}

func (b *SettingsBuilder) With(mutate func(*SettingsBuilder)) *SettingsBuilder {
	mutate(b)
	return b
}

func (b *SettingsBuilder) Build() settings.Settings {
	return settings.Settings{
		Prices:  b.BuildPrices(),
		Address: settings.NewAddress(b.Address),
		Popup: settings.PopupSettings{
			Title:       b.PopupTitle,
			Description: b.PopupDescription,
			Show:        b.PopupShow,
		},
		Payment: settings.PaymentSettings{PixKey: b.PixKey, PixType: b.PixType},
	}
}

func (b *SettingsBuilder) BuildPrices() settings.PriceSettings {
	return settings.PriceSettings{
		Schedule: pricing.PriceSchedule{
			Adult:      b.Adult,
			Child0to5:  b.Child0to5,
			Child6to10: b.Child6to10,
		},
		LocationTitle:    b.LocationTitle,
		ReservationTitle: b.ReservationTitle,
	}
}

func (b *SettingsBuilder) BuildPricesRequestDTO() reqdto.UpdatePricesRequest {
	return reqdto.UpdatePricesRequest{
		Adult:            &b.Adult,
		Child0to5:        &b.Child0to5,
		Child6to10:       &b.Child6to10,
		LocationTitle:    &b.LocationTitle,
		ReservationTitle: &b.ReservationTitle,
	}
}

func (b *SettingsBuilder) BuildPaymentRequestDTO() reqdto.UpdatePaymentRequest {
	pixType := b.PixType.String()
	return reqdto.UpdatePaymentRequest{PixKey: &b.PixKey, PixType: &pixType}
}
