package readstore

import (
	"context"

	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/infra"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"
)

type SettingsReadQueries interface {
	GetPrices(ctx context.Context, db sqlc.DBTX) (sqlc.Prices, error)
	GetAddress(ctx context.Context, db sqlc.DBTX) (sqlc.Addresses, error)
	GetPopupSettings(ctx context.Context, db sqlc.DBTX) (sqlc.PopupSettings, error)
	GetPaymentSettings(ctx context.Context, db sqlc.DBTX) (sqlc.PaymentSettings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) FindPrices(ctx context.Context) (*settings.PriceSettings, error) {
	row, err := r.queries.GetPrices(ctx, r.db)
	if err != nil {
		return nil, wrapFindErr("prices", err)
	}

	adult, err := pgconv.NullDecimalFromNumeric(row.Adult)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid adult price", err)
	}
	child0to5, err := pgconv.NullDecimalFromNumeric(row.Child05)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid 0-5 price", err)
	}
	child6to10, err := pgconv.NullDecimalFromNumeric(row.Child610)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid 6-10 price", err)
	}

	p := settings.PriceSettingsFromNullable(adult, child0to5, child6to10, row.LocationTitle, row.ReservationTitle)
	return &p, nil
}

func (r *SettingsReadStore) FindAddress(ctx context.Context) (*settings.Address, error) {
	row, err := r.queries.GetAddress(ctx, r.db)
	if err != nil {
		return nil, wrapFindErr("address", err)
	}
	a := settings.NewAddress(row.Address)
	return &a, nil
}

func (r *SettingsReadStore) FindPopup(ctx context.Context) (*settings.PopupSettings, error) {
	row, err := r.queries.GetPopupSettings(ctx, r.db)
	if err != nil {
		return nil, wrapFindErr("popup settings", err)
	}
	return &settings.PopupSettings{
		Title:       row.Title,
		Description: row.Description,
		Show:        row.Show,
	}, nil
}

func (r *SettingsReadStore) FindPayment(ctx context.Context) (*settings.PaymentSettings, error) {
	row, err := r.queries.GetPaymentSettings(ctx, r.db)
	if err != nil {
		return nil, wrapFindErr("payment settings", err)
	}
	p, err := settings.NewPaymentSettings(row.PixKey, row.PixType)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored pix type", err)
	}
	return &p, nil
}

func wrapFindErr(section string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(section+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get "+section, err)
}
