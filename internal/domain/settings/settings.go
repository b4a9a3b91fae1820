// Package settings holds the admin-managed configuration rows shown on the
// reservation form. Every row has a default used when the store has none.
package settings

type Settings struct {
	Prices  PriceSettings
	Address Address
	Popup   PopupSettings
	Payment PaymentSettings
}

func Defaults() Settings {
	return Settings{
		Prices:  DefaultPriceSettings(),
		Address: DefaultAddress(),
		Popup:   DefaultPopupSettings(),
		Payment: DefaultPaymentSettings(),
	}
}
