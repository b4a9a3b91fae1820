package request

import (
	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// Omitted fields keep their stored value

type UpdatePricesRequest struct {
	Adult            *decimal.Decimal `json:"adult" swaggertype:"string" example:"69.90"`
	Child0to5        *decimal.Decimal `json:"child0to5" swaggertype:"string" example:"0"`
	Child6to10       *decimal.Decimal `json:"child6to10" swaggertype:"string" example:"45"`
	LocationTitle    *string          `json:"locationTitle" binding:"omitempty,max=200"`
	ReservationTitle *string          `json:"reservationTitle" binding:"omitempty,max=200"`
}

func (r *UpdatePricesRequest) ToDomain(existing settings.PriceSettings) (settings.PriceSettings, error) {
	return settings.NewPriceSettings(
		patch.Coalesce(r.Adult, existing.Schedule.Adult),
		patch.Coalesce(r.Child0to5, existing.Schedule.Child0to5),
		patch.Coalesce(r.Child6to10, existing.Schedule.Child6to10),
		patch.Coalesce(r.LocationTitle, existing.LocationTitle),
		patch.Coalesce(r.ReservationTitle, existing.ReservationTitle),
	)
}

type UpdateAddressRequest struct {
	Address string `json:"address" binding:"max=500"`
}

func (r *UpdateAddressRequest) ToDomain() settings.Address {
	return settings.NewAddress(r.Address)
}

type UpdatePopupRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Show        *bool   `json:"show"`
}

func (r *UpdatePopupRequest) ToDomain(existing settings.PopupSettings) settings.PopupSettings {
	return settings.PopupSettings{
		Title:       patch.Coalesce(r.Title, existing.Title),
		Description: patch.Coalesce(r.Description, existing.Description),
		Show:        patch.Coalesce(r.Show, existing.Show),
	}
}

type UpdatePaymentRequest struct {
	PixKey  *string `json:"pixKey" binding:"omitempty,max=140"`
	PixType *string `json:"pixType" binding:"omitempty,oneof=CPF CNPJ Email Telefone Aleatória"`
}

func (r *UpdatePaymentRequest) ToDomain(existing settings.PaymentSettings) (settings.PaymentSettings, error) {
	return settings.NewPaymentSettings(
		patch.Coalesce(r.PixKey, existing.PixKey),
		patch.Coalesce(r.PixType, existing.PixType.String()),
	)
}

type UpsertCouponRequest struct {
	Code     string          `json:"code" binding:"required,max=64"`
	Discount decimal.Decimal `json:"discount" swaggertype:"string" example:"10.00"`
}
