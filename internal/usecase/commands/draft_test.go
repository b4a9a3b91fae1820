//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/infra/session"
	"rodizio-reservas/internal/pkg/clock"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/pkg/notice"
	"rodizio-reservas/internal/usecase/commands"
	"rodizio-reservas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type draftFixture struct {
	cmds      commands.DraftCommands
	clock     *clock.MockClock
	uow       *fakeUoW
	settings  *mockSettingsQueries
	storage   *mockStorage
	publisher *mockPublisher
}

func newDraftFixture(t *testing.T) *draftFixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC))
	f := &draftFixture{
		clock:     clk,
		uow:       newFakeUoW(),
		settings:  new(mockSettingsQueries),
		storage:   new(mockStorage),
		publisher: new(mockPublisher),
	}
	store := session.NewDraftStore(clk, time.Hour)
	factory := reservation.NewFactory(clk, pricing.NewDefaultCalculator())
	f.cmds = commands.NewDraftCommands(store, f.settings, f.uow, f.storage, f.publisher, factory, clk, notice.DefaultTTL)
	return f
}

func (f *draftFixture) start(t *testing.T) *commands.DraftState {
	t.Helper()
	all := settings.Defaults()
	all.Address = settings.NewAddress("Rua A, 1")
	f.settings.On("GetAll", mock.Anything).Return(all, nil).Once()

	state, err := f.cmds.Start(context.Background())
	require.NoError(t, err)
	return state
}

func TestDraftCommands_Start(t *testing.T) {
	t.Run("loads settings without notice", func(t *testing.T) {
		f := newDraftFixture(t)
		state := f.start(t)

		assert.Len(t, state.Participants, 1)
		assert.Nil(t, state.Notice)
		assert.Equal(t, "Rua A, 1", state.Settings.Address.Value)
		assert.True(t, state.Totals.Total.Equal(decimal.RequireFromString("69.90")))
	})

	t.Run("missing address shows error notice", func(t *testing.T) {
		f := newDraftFixture(t)
		f.settings.On("GetAll", mock.Anything).Return(settings.Defaults(), assert.AnError)

		state, err := f.cmds.Start(context.Background())

		require.NoError(t, err)
		require.NotNil(t, state.Notice)
		assert.Equal(t, commands.MsgAddressLoadFailed, state.Notice.Message)
		assert.Equal(t, notice.KindError, state.Notice.Kind)
	})
}

func TestDraftCommands_PartyAndBrackets(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()
	id := f.start(t).ID

	state, err := f.cmds.SetPartySize(ctx, id, 3)
	require.NoError(t, err)
	assert.Len(t, state.Participants, 3)

	_, err = f.cmds.ToggleBracket(ctx, id, 1, "0-5")
	require.NoError(t, err)
	state, err = f.cmds.ToggleBracket(ctx, id, 2, "6-10")
	require.NoError(t, err)

	// 3 x 69.90 - 69.90 + 0 - 69.90 + 45
	assert.Equal(t, "114.90", pricing.FormatPrice(state.Totals.Subtotal))

	state, err = f.cmds.ToggleBracket(ctx, id, 1, "0-5")
	require.NoError(t, err)
	assert.Equal(t, pricing.BracketNone, state.Participants[1].AgeBracket)

	_, err = f.cmds.SetPartySize(ctx, id, 0)
	assert.True(t, errs.Is(err, commands.ErrDraftValidation))

	_, err = f.cmds.ToggleBracket(ctx, id, 1, "11-15")
	assert.True(t, errs.Is(err, commands.ErrDraftValidation))

	_, err = f.cmds.SetParticipantName(ctx, id, 7, "Ana")
	assert.True(t, errs.Is(err, commands.ErrDraftValidation))

	_, err = f.cmds.SetPhone(ctx, uuid.New(), "11 9999")
	assert.True(t, errs.Is(err, commands.ErrDraftNotFound))
}

func TestDraftCommands_ApplyCoupon(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()
	id := f.start(t).ID
	f.uow.coupons["PROMO10"] = &shared.CouponSnapshot{Code: "PROMO10", Discount: decimal.NewFromInt(10)}

	t.Run("unknown code keeps discount", func(t *testing.T) {
		state, err := f.cmds.ApplyCoupon(ctx, id, "NOPE")

		assert.True(t, errs.Is(err, commands.ErrCouponNotFound))
		require.NotNil(t, state)
		assert.True(t, state.Discount.IsZero())
		assert.Equal(t, "", state.CouponCode)
		assert.Equal(t, commands.MsgCouponInvalid, state.Notice.Message)
	})

	t.Run("known code replaces discount", func(t *testing.T) {
		state, err := f.cmds.ApplyCoupon(ctx, id, "PROMO10")

		require.NoError(t, err)
		assert.Equal(t, "PROMO10", state.CouponCode)
		assert.Equal(t, "59.90", pricing.FormatPrice(state.Totals.Total))
		assert.Equal(t, commands.MsgCouponApplied, state.Notice.Message)
	})

	t.Run("later miss leaves the applied coupon", func(t *testing.T) {
		state, err := f.cmds.ApplyCoupon(ctx, id, "promo10")

		assert.True(t, errs.Is(err, commands.ErrCouponNotFound))
		assert.Equal(t, "PROMO10", state.CouponCode)
		assert.True(t, state.Discount.Equal(decimal.NewFromInt(10)))
	})

	t.Run("lookup failure is reported as invalid coupon", func(t *testing.T) {
		f.uow.lookupErr = assert.AnError
		defer func() { f.uow.lookupErr = nil }()

		state, err := f.cmds.ApplyCoupon(ctx, id, "PROMO10")

		assert.True(t, errs.Is(err, commands.ErrCouponLookupFailed))
		assert.Equal(t, commands.MsgCouponInvalid, state.Notice.Message)
	})
}

func TestDraftCommands_UploadReceipt(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()
	id := f.start(t).ID
	file := commands.ReceiptFile{Filename: "pix.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")}

	f.storage.On("UploadReceipt", mock.Anything, "pix.png", int64(3), "image/png").Return("receipts/1_pix.png", nil).Once()
	state, err := f.cmds.UploadReceipt(ctx, id, file)
	require.NoError(t, err)
	assert.Equal(t, "receipts/1_pix.png", state.Receipt)
	assert.Equal(t, commands.MsgReceiptUploaded, state.Notice.Message)

	f.storage.On("UploadReceipt", mock.Anything, "pix.png", int64(3), "image/png").Return("", assert.AnError).Once()
	state, err = f.cmds.UploadReceipt(ctx, id, file)
	assert.True(t, errs.Is(err, commands.ErrReceiptUploadFailed))
	assert.Equal(t, "receipts/1_pix.png", state.Receipt)
	assert.Equal(t, commands.MsgReceiptFailed, state.Notice.Message)
}

func TestDraftCommands_RefreshPrices(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()
	id := f.start(t).ID
	_, err := f.cmds.SetPartySize(ctx, id, 2)
	require.NoError(t, err)

	updated, err := settings.NewPriceSettings(decimal.NewFromInt(80), decimal.Zero, decimal.NewFromInt(40), "", "")
	require.NoError(t, err)
	f.settings.On("GetPrices", mock.Anything).Return(updated)

	state, err := f.cmds.RefreshPrices(ctx, id)

	require.NoError(t, err)
	assert.Len(t, state.Participants, 2)
	assert.Equal(t, "160.00", pricing.FormatPrice(state.Totals.Total))
}

func TestDraftCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores, marks submitted and publishes", func(t *testing.T) {
		f := newDraftFixture(t)
		id := f.start(t).ID
		_, err := f.cmds.SetPartySize(ctx, id, 2)
		require.NoError(t, err)
		_, err = f.cmds.SetPhone(ctx, id, "11 98888-7777")
		require.NoError(t, err)

		f.publisher.On("PublishReservationCreated", mock.Anything, mock.MatchedBy(func(e shared.ReservationCreated) bool {
			return e.PartySize == 2 && e.Total == "139.80" && e.Phone == "11 98888-7777"
		})).Return(nil).Once()

		state, err := f.cmds.Submit(ctx, id, nil)

		require.NoError(t, err)
		require.Len(t, f.uow.reservations, 1)
		require.NotNil(t, state.SubmittedID)
		assert.Equal(t, f.uow.reservations[0].ID(), *state.SubmittedID)
		assert.Equal(t, commands.MsgReservationCreated, state.Notice.Message)
		f.publisher.AssertExpectations(t)

		_, err = f.cmds.Submit(ctx, id, nil)
		assert.True(t, errs.Is(err, commands.ErrDraftSubmitted))
		_, err = f.cmds.SetPartySize(ctx, id, 4)
		assert.True(t, errs.Is(err, commands.ErrDraftSubmitted))
	})

	t.Run("publish failure does not fail the submission", func(t *testing.T) {
		f := newDraftFixture(t)
		id := f.start(t).ID
		f.publisher.On("PublishReservationCreated", mock.Anything, mock.Anything).Return(assert.AnError)

		state, err := f.cmds.Submit(ctx, id, nil)

		require.NoError(t, err)
		assert.NotNil(t, state.SubmittedID)
	})

	t.Run("insert failure keeps draft open", func(t *testing.T) {
		f := newDraftFixture(t)
		id := f.start(t).ID
		f.uow.createErr = assert.AnError

		state, err := f.cmds.Submit(ctx, id, nil)

		assert.True(t, errs.Is(err, commands.ErrReservationNotStored))
		assert.Nil(t, state.SubmittedID)
		assert.Equal(t, commands.MsgReservationFailed, state.Notice.Message)

		f.uow.createErr = nil
		f.publisher.On("PublishReservationCreated", mock.Anything, mock.Anything).Return(nil)
		state, err = f.cmds.Submit(ctx, id, nil)
		require.NoError(t, err)
		assert.NotNil(t, state.SubmittedID)
	})

	t.Run("upload failure aborts before insert", func(t *testing.T) {
		f := newDraftFixture(t)
		id := f.start(t).ID
		f.storage.On("UploadReceipt", mock.Anything, "pix.pdf", int64(0), "").Return("", assert.AnError)

		state, err := f.cmds.Submit(ctx, id, &commands.ReceiptFile{Filename: "pix.pdf", Body: strings.NewReader("")})

		assert.True(t, errs.Is(err, commands.ErrReceiptUploadFailed))
		assert.Equal(t, 0, f.uow.withinCalls)
		assert.Empty(t, f.uow.reservations)
		assert.Equal(t, commands.MsgReceiptFailed, state.Notice.Message)
		f.publisher.AssertNotCalled(t, "PublishReservationCreated", mock.Anything, mock.Anything)
	})

	t.Run("attached receipt is stored with the reservation", func(t *testing.T) {
		f := newDraftFixture(t)
		id := f.start(t).ID
		f.storage.On("UploadReceipt", mock.Anything, "pix.pdf", int64(4), "application/pdf").Return("receipts/9_pix.pdf", nil)
		f.publisher.On("PublishReservationCreated", mock.Anything, mock.Anything).Return(nil)

		_, err := f.cmds.Submit(ctx, id, &commands.ReceiptFile{
			Filename: "pix.pdf", ContentType: "application/pdf", Size: 4, Body: strings.NewReader("%PDF"),
		})

		require.NoError(t, err)
		require.Len(t, f.uow.reservations, 1)
		require.NotNil(t, f.uow.reservations[0].Receipt())
		assert.Equal(t, "receipts/9_pix.pdf", *f.uow.reservations[0].Receipt())
	})
}

func TestDraftCommands_NoticeExpires(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()
	id := f.start(t).ID

	state, err := f.cmds.ApplyCoupon(ctx, id, "NOPE")
	require.Error(t, err)
	require.NotNil(t, state.Notice)

	f.clock.Add(notice.DefaultTTL)
	state, err = f.cmds.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, state.Notice)
}
