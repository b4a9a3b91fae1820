//go:build unit

package commands_test

import (
	"context"
	"io"

	"rodizio-reservas/internal/domain/coupon"
	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/infra"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW records writes in memory; the *Err fields make the next call fail
type fakeUoW struct {
	coupons      map[string]*shared.CouponSnapshot
	lookupErr    error
	createErr    error
	saveErr      error
	reservations []*reservation.Reservation
	prices       []settings.PriceSettings
	addresses    []settings.Address
	popups       []settings.PopupSettings
	payments     []settings.PaymentSettings
	savedCoupons []*coupon.Coupon
	withinCalls  int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{coupons: map[string]*shared.CouponSnapshot{}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withinCalls++
	return fn(ctx, fakeTx{u: u})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return fakeReads{u: u}
}

type fakeTx struct{ u *fakeUoW }

func (t fakeTx) Reservations() shared.ReservationRepository { return fakeRepo(t) }
func (t fakeTx) Settings() shared.SettingsRepository        { return fakeRepo(t) }
func (t fakeTx) Coupons() shared.CouponRepository           { return fakeRepo(t) }
func (t fakeTx) DB() sqlc.DBTX                              { return nil }

type fakeRepo struct{ u *fakeUoW }

func (r fakeRepo) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.u.createErr != nil {
		return uuid.Nil, r.u.createErr
	}
	r.u.reservations = append(r.u.reservations, res)
	return res.ID(), nil
}

func (r fakeRepo) SavePrices(ctx context.Context, tx sqlc.DBTX, p settings.PriceSettings) error {
	if r.u.saveErr != nil {
		return r.u.saveErr
	}
	r.u.prices = append(r.u.prices, p)
	return nil
}

func (r fakeRepo) SaveAddress(ctx context.Context, tx sqlc.DBTX, a settings.Address) error {
	if r.u.saveErr != nil {
		return r.u.saveErr
	}
	r.u.addresses = append(r.u.addresses, a)
	return nil
}

func (r fakeRepo) SavePopup(ctx context.Context, tx sqlc.DBTX, p settings.PopupSettings) error {
	if r.u.saveErr != nil {
		return r.u.saveErr
	}
	r.u.popups = append(r.u.popups, p)
	return nil
}

func (r fakeRepo) SavePayment(ctx context.Context, tx sqlc.DBTX, p settings.PaymentSettings) error {
	if r.u.saveErr != nil {
		return r.u.saveErr
	}
	r.u.payments = append(r.u.payments, p)
	return nil
}

func (r fakeRepo) Upsert(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	if r.u.saveErr != nil {
		return r.u.saveErr
	}
	r.u.savedCoupons = append(r.u.savedCoupons, c)
	return nil
}

type fakeReads struct{ u *fakeUoW }

func (r fakeReads) CouponByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	if r.u.lookupErr != nil {
		return nil, r.u.lookupErr
	}
	c, ok := r.u.coupons[code]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return c, nil
}

type mockSettingsQueries struct {
	mock.Mock
}

func (m *mockSettingsQueries) GetPrices(ctx context.Context) settings.PriceSettings {
	return m.Called(ctx).Get(0).(settings.PriceSettings)
}

func (m *mockSettingsQueries) GetAddress(ctx context.Context) (settings.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Address), args.Error(1)
}

func (m *mockSettingsQueries) GetPopup(ctx context.Context) settings.PopupSettings {
	return m.Called(ctx).Get(0).(settings.PopupSettings)
}

func (m *mockSettingsQueries) GetPayment(ctx context.Context) settings.PaymentSettings {
	return m.Called(ctx).Get(0).(settings.PaymentSettings)
}

func (m *mockSettingsQueries) GetAll(ctx context.Context) (settings.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Settings), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadReceipt(ctx context.Context, filename string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, filename, size, contentType)
	return args.String(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishReservationCreated(ctx context.Context, event shared.ReservationCreated) error {
	return m.Called(ctx, event).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Invalidate(ctx context.Context, sections ...string) error {
	return m.Called(ctx, sections).Error(0)
}
