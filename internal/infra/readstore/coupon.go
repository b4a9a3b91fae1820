package readstore

import (
	"context"

	"rodizio-reservas/internal/infra"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"
	"rodizio-reservas/internal/usecase/shared"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode matches the code exactly
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	discount, err := pgconv.DecimalFromNumeric(row.Discount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon discount", err)
	}

	return &shared.CouponSnapshot{
		Code:     row.Code,
		Discount: discount,
	}, nil
}
