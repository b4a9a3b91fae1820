package response

import (
	"rodizio-reservas/internal/domain/settings"
)

// Prices are sent raw for editing and formatted for display
type PricesResponse struct {
	Adult            string          `json:"adult"`
	Child0to5        string          `json:"child0to5"`
	Child6to10       string          `json:"child6to10"`
	Formatted        FormattedPrices `json:"formatted"`
	LocationTitle    string          `json:"locationTitle"`
	ReservationTitle string          `json:"reservationTitle"`
}

type FormattedPrices struct {
	Adult      string `json:"adult"`
	Child0to5  string `json:"child0to5"`
	Child6to10 string `json:"child6to10"`
}

type AddressResponse struct {
	Address string `json:"address"`
	MapsURL string `json:"mapsUrl"`
}

type PopupResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Show        bool   `json:"show"`
}

type PaymentResponse struct {
	PixKey  string `json:"pixKey"`
	PixType string `json:"pixType"`
}

type SettingsResponse struct {
	Prices  PricesResponse  `json:"prices"`
	Address AddressResponse `json:"address"`
	Popup   PopupResponse   `json:"popup"`
	Payment PaymentResponse `json:"payment"`
}

// SavedResponse carries the admin panel's confirmation message with the saved section
type SavedResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func FromSettings(s settings.Settings) *SettingsResponse {
	return &SettingsResponse{
		Prices:  FromPriceSettings(s.Prices),
		Address: FromAddress(s.Address),
		Popup:   FromPopupSettings(s.Popup),
		Payment: FromPaymentSettings(s.Payment),
	}
}

func FromPriceSettings(p settings.PriceSettings) PricesResponse {
	return PricesResponse{
		Adult:            p.Schedule.Adult.String(),
		Child0to5:        p.Schedule.Child0to5.String(),
		Child6to10:       p.Schedule.Child6to10.String(),
		Formatted:        formatSchedule(p.Schedule),
		LocationTitle:    p.LocationTitle,
		ReservationTitle: p.ReservationTitle,
	}
}

func FromAddress(a settings.Address) AddressResponse {
	resp := AddressResponse{Address: a.Value}
	if !a.IsEmpty() {
		resp.MapsURL = a.MapsURL()
	}
	return resp
}

func FromPopupSettings(p settings.PopupSettings) PopupResponse {
	return PopupResponse{
		Title:       p.Title,
		Description: p.Description,
		Show:        p.Show,
	}
}

func FromPaymentSettings(p settings.PaymentSettings) PaymentResponse {
	return PaymentResponse{
		PixKey:  p.PixKey,
		PixType: p.PixType.String(),
	}
}
