package repository

import (
	"context"

	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/infra"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"
)

type SettingsWriteQueries interface {
	UpsertPrices(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPricesParams) error
	UpsertAddress(ctx context.Context, db sqlc.DBTX, address string) error
	UpsertPopupSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPopupSettingsParams) error
	UpsertPaymentSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPaymentSettingsParams) error
}

// SettingsRepository upserts the single row (id = 1) of each settings table
type SettingsRepository struct {
	queries SettingsWriteQueries
}

func NewSettingsRepository(queries SettingsWriteQueries) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
	}
}

func (r *SettingsRepository) SavePrices(ctx context.Context, tx sqlc.DBTX, p settings.PriceSettings) error {
	err := r.queries.UpsertPrices(ctx, tx, sqlc.UpsertPricesParams{
		Adult:            pgconv.DecimalToNumeric(p.Schedule.Adult),
		Child05:          pgconv.DecimalToNumeric(p.Schedule.Child0to5),
		Child610:         pgconv.DecimalToNumeric(p.Schedule.Child6to10),
		LocationTitle:    p.LocationTitle,
		ReservationTitle: p.ReservationTitle,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert prices", err)
	}
	return nil
}

func (r *SettingsRepository) SaveAddress(ctx context.Context, tx sqlc.DBTX, a settings.Address) error {
	if err := r.queries.UpsertAddress(ctx, tx, a.Value); err != nil {
		return infra.WrapRepoErr("failed to upsert address", err)
	}
	return nil
}

func (r *SettingsRepository) SavePopup(ctx context.Context, tx sqlc.DBTX, p settings.PopupSettings) error {
	err := r.queries.UpsertPopupSettings(ctx, tx, sqlc.UpsertPopupSettingsParams{
		Title:       p.Title,
		Description: p.Description,
		Show:        p.Show,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert popup settings", err)
	}
	return nil
}

func (r *SettingsRepository) SavePayment(ctx context.Context, tx sqlc.DBTX, p settings.PaymentSettings) error {
	err := r.queries.UpsertPaymentSettings(ctx, tx, sqlc.UpsertPaymentSettingsParams{
		PixKey:  p.PixKey,
		PixType: p.PixType.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert payment settings", err)
	}
	return nil
}
