package repository

import (
	"context"

	"rodizio-reservas/internal/domain/coupon"
	"rodizio-reservas/internal/infra"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"
)

type CouponWriteQueries interface {
	UpsertCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCouponParams) error
}

type CouponRepository struct {
	queries CouponWriteQueries
}

func NewCouponRepository(queries CouponWriteQueries) *CouponRepository {
	return &CouponRepository{
		queries: queries,
	}
}

func (r *CouponRepository) Upsert(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	err := r.queries.UpsertCoupon(ctx, tx, sqlc.UpsertCouponParams{
		Code:     c.Code().String(),
		Discount: pgconv.DecimalToNumeric(c.Discount()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert coupon", err)
	}
	return nil
}
