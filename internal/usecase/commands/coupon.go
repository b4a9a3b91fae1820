package commands

import (
	"context"
	"log/slog"

	"rodizio-reservas/internal/domain/coupon"
	reqdto "rodizio-reservas/internal/handler/dto/request"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/shared"
)

var (
	ErrCouponValidation = errs.New("coupon validation error")
	ErrCouponSaveFailed = errs.New("coupon save failed")
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon_mock.go -package=commandsmock

type CouponCommands interface {
	Upsert(ctx context.Context, req reqdto.UpsertCouponRequest) (*coupon.Coupon, error)
}

type couponCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCouponCommands(uow shared.UnitOfWork) CouponCommands {
	return &couponCommandsImpl{uow: uow}
}

func (c *couponCommandsImpl) Upsert(ctx context.Context, req reqdto.UpsertCouponRequest) (*coupon.Coupon, error) {
	entity, err := coupon.NewCoupon(req.Code, req.Discount)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Upsert(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCouponSaveFailed)
	}

	slog.Info("coupon saved", "code", entity.Code().String())
	return entity, nil
}
