package shared

import (
	"context"

	"rodizio-reservas/internal/domain/coupon"
	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/domain/settings"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one transaction, committed when fn returns nil. Never retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Settings() SettingsRepository
	Coupons() CouponRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
}

type SettingsRepository interface {
	SavePrices(ctx context.Context, tx sqlc.DBTX, p settings.PriceSettings) error
	SaveAddress(ctx context.Context, tx sqlc.DBTX, a settings.Address) error
	SavePopup(ctx context.Context, tx sqlc.DBTX, p settings.PopupSettings) error
	SavePayment(ctx context.Context, tx sqlc.DBTX, p settings.PaymentSettings) error
}

type CouponRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
}
