package queries

import (
	"context"
	"log/slog"

	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/infra"
	"rodizio-reservas/internal/pkg/errs"
)

var ErrAddressNotFound = errs.New("address not found")

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/queries/settings_mock.go -package=queriesmock

// SettingsReadStore returns a NOT_FOUND repository error when a row is missing
type SettingsReadStore interface {
	FindPrices(ctx context.Context) (*settings.PriceSettings, error)
	FindAddress(ctx context.Context) (*settings.Address, error)
	FindPopup(ctx context.Context) (*settings.PopupSettings, error)
	FindPayment(ctx context.Context) (*settings.PaymentSettings, error)
}

// SettingsQueries never fails a settings read: a missing row or a store
// failure yields the defaults. Only the address reports the miss, since the
// form surfaces it to the user.
type SettingsQueries interface {
	GetPrices(ctx context.Context) settings.PriceSettings
	GetAddress(ctx context.Context) (settings.Address, error)
	GetPopup(ctx context.Context) settings.PopupSettings
	GetPayment(ctx context.Context) settings.PaymentSettings
	GetAll(ctx context.Context) (settings.Settings, error)
}

type settingsQueriesImpl struct {
	store SettingsReadStore
}

func NewSettingsQueries(store SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{store: store}
}

func (q *settingsQueriesImpl) GetPrices(ctx context.Context) settings.PriceSettings {
	p, err := q.store.FindPrices(ctx)
	if err != nil {
		logFallback("prices", err)
		return settings.DefaultPriceSettings()
	}
	return *p
}

func (q *settingsQueriesImpl) GetAddress(ctx context.Context) (settings.Address, error) {
	a, err := q.store.FindAddress(ctx)
	if err != nil {
		logFallback("address", err)
		return settings.DefaultAddress(), errs.Mark(err, ErrAddressNotFound)
	}
	return *a, nil
}

func (q *settingsQueriesImpl) GetPopup(ctx context.Context) settings.PopupSettings {
	p, err := q.store.FindPopup(ctx)
	if err != nil {
		logFallback("popup_settings", err)
		return settings.DefaultPopupSettings()
	}
	return *p
}

func (q *settingsQueriesImpl) GetPayment(ctx context.Context) settings.PaymentSettings {
	p, err := q.store.FindPayment(ctx)
	if err != nil {
		logFallback("payment_settings", err)
		return settings.DefaultPaymentSettings()
	}
	return *p
}

// GetAll always returns a complete Settings; the error only reports a
// missing address.
func (q *settingsQueriesImpl) GetAll(ctx context.Context) (settings.Settings, error) {
	address, err := q.GetAddress(ctx)
	return settings.Settings{
		Prices:  q.GetPrices(ctx),
		Address: address,
		Popup:   q.GetPopup(ctx),
		Payment: q.GetPayment(ctx),
	}, err
}

func logFallback(section string, err error) {
	if infra.IsKind(err, infra.KindNotFound) {
		slog.Debug("settings row missing, using defaults", "section", section)
		return
	}
	slog.Warn("settings read failed, using defaults", "section", section, "error", err.Error())
}
