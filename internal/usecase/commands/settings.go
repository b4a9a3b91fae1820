package commands

import (
	"context"
	"log/slog"

	"rodizio-reservas/internal/domain/settings"
	reqdto "rodizio-reservas/internal/handler/dto/request"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/queries"
	"rodizio-reservas/internal/usecase/shared"
)

var (
	ErrSettingsValidation = errs.New("settings validation error")
	ErrSettingsSaveFailed = errs.New("settings save failed")
)

// Admin panel messages
const (
	MsgPricesSaved      = "Preços salvos com sucesso!"
	MsgPricesSaveFailed = "Erro ao salvar preços"
	MsgSettingsSaved    = "Configurações salvas com sucesso!"
	MsgSettingsFailed   = "Erro ao salvar configurações"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/commands/settings_mock.go -package=commandsmock

type SettingsCommands interface {
	SavePrices(ctx context.Context, req reqdto.UpdatePricesRequest) (*settings.PriceSettings, error)
	SaveAddress(ctx context.Context, req reqdto.UpdateAddressRequest) (*settings.Address, error)
	SavePopup(ctx context.Context, req reqdto.UpdatePopupRequest) (*settings.PopupSettings, error)
	SavePayment(ctx context.Context, req reqdto.UpdatePaymentRequest) (*settings.PaymentSettings, error)
}

type settingsCommandsImpl struct {
	uow      shared.UnitOfWork
	settings queries.SettingsQueries
	cache    shared.SettingsCache
}

func NewSettingsCommands(uow shared.UnitOfWork, settingsQueries queries.SettingsQueries, cache shared.SettingsCache) SettingsCommands {
	return &settingsCommandsImpl{
		uow:      uow,
		settings: settingsQueries,
		cache:    cache,
	}
}

func (s *settingsCommandsImpl) SavePrices(ctx context.Context, req reqdto.UpdatePricesRequest) (*settings.PriceSettings, error) {
	prices, err := req.ToDomain(s.settings.GetPrices(ctx))
	if err != nil {
		return nil, errs.Mark(err, ErrSettingsValidation)
	}

	err = s.save(ctx, shared.SectionPrices, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().SavePrices(ctx, tx.DB(), prices)
	})
	if err != nil {
		return nil, err
	}
	return &prices, nil
}

func (s *settingsCommandsImpl) SaveAddress(ctx context.Context, req reqdto.UpdateAddressRequest) (*settings.Address, error) {
	address := req.ToDomain()

	err := s.save(ctx, shared.SectionAddress, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().SaveAddress(ctx, tx.DB(), address)
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *settingsCommandsImpl) SavePopup(ctx context.Context, req reqdto.UpdatePopupRequest) (*settings.PopupSettings, error) {
	popup := req.ToDomain(s.settings.GetPopup(ctx))

	err := s.save(ctx, shared.SectionPopup, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().SavePopup(ctx, tx.DB(), popup)
	})
	if err != nil {
		return nil, err
	}
	return &popup, nil
}

func (s *settingsCommandsImpl) SavePayment(ctx context.Context, req reqdto.UpdatePaymentRequest) (*settings.PaymentSettings, error) {
	payment, err := req.ToDomain(s.settings.GetPayment(ctx))
	if err != nil {
		return nil, errs.Mark(err, ErrSettingsValidation)
	}

	err = s.save(ctx, shared.SectionPayment, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().SavePayment(ctx, tx.DB(), payment)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// save commits fn and then drops the cached section. A failed invalidation is
// logged only; the entry expires with its TTL.
func (s *settingsCommandsImpl) save(ctx context.Context, section string, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := s.uow.Within(ctx, fn); err != nil {
		return errs.Mark(err, ErrSettingsSaveFailed)
	}

	if err := s.cache.Invalidate(ctx, section); err != nil {
		slog.Warn("settings cache not invalidated", "section", section, "error", err.Error())
	}
	slog.Info("settings saved", "section", section)
	return nil
}

// NoopSettingsCache is used when redis is not configured
type NoopSettingsCache struct{}

func (NoopSettingsCache) Invalidate(context.Context, ...string) error { return nil }
