package commands

import (
	"context"
	"log/slog"
	"time"

	"rodizio-reservas/internal/domain/coupon"
	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/infra"
	"rodizio-reservas/internal/pkg/clock"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/pkg/notice"
	"rodizio-reservas/internal/usecase/queries"
	"rodizio-reservas/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound        = shared.ErrDraftNotFound
	ErrDraftSubmitted       = errs.New("draft already submitted")
	ErrDraftValidation      = errs.New("draft validation error")
	ErrCouponNotFound       = errs.New("coupon not found")
	ErrCouponLookupFailed   = errs.New("coupon lookup failed")
	ErrReceiptUploadFailed  = errs.New("receipt upload failed")
	ErrReservationNotStored = errs.New("reservation insert failed")
)

// Messages shown in the form's notification area
const (
	MsgAddressLoadFailed  = "Erro ao carregar endereço"
	MsgCouponInvalid      = "Cupom inválido"
	MsgCouponApplied      = "Cupom aplicado com sucesso!"
	MsgReceiptUploaded    = "Comprovante enviado com sucesso!"
	MsgReceiptFailed      = "Erro ao enviar comprovante"
	MsgReservationFailed  = "Erro ao finalizar reserva"
	MsgReservationCreated = "Reserva realizada com sucesso!"
)

//go:generate mockgen -source=draft.go -destination=../../../tests/mock/commands/draft_mock.go -package=commandsmock

type DraftCommands interface {
	Start(ctx context.Context) (*DraftState, error)
	Get(ctx context.Context, id uuid.UUID) (*DraftState, error)
	SetPartySize(ctx context.Context, id uuid.UUID, count int) (*DraftState, error)
	SetParticipantName(ctx context.Context, id uuid.UUID, index int, name string) (*DraftState, error)
	ToggleBracket(ctx context.Context, id uuid.UUID, index int, bracket string) (*DraftState, error)
	SetPhone(ctx context.Context, id uuid.UUID, phone string) (*DraftState, error)
	ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*DraftState, error)
	UploadReceipt(ctx context.Context, id uuid.UUID, file ReceiptFile) (*DraftState, error)
	RefreshPrices(ctx context.Context, id uuid.UUID) (*DraftState, error)
	Submit(ctx context.Context, id uuid.UUID, file *ReceiptFile) (*DraftState, error)
}

type draftCommandsImpl struct {
	store     shared.DraftStore
	settings  queries.SettingsQueries
	uow       shared.UnitOfWork
	storage   shared.ReceiptStorage
	publisher shared.EventPublisher
	factory   *reservation.Factory
	clock     clock.Clock
	noticeTTL time.Duration
}

func NewDraftCommands(
	store shared.DraftStore,
	settingsQueries queries.SettingsQueries,
	uow shared.UnitOfWork,
	storage shared.ReceiptStorage,
	publisher shared.EventPublisher,
	factory *reservation.Factory,
	clock clock.Clock,
	noticeTTL time.Duration,
) DraftCommands {
	return &draftCommandsImpl{
		store:     store,
		settings:  settingsQueries,
		uow:       uow,
		storage:   storage,
		publisher: publisher,
		factory:   factory,
		clock:     clock,
		noticeTTL: noticeTTL,
	}
}

func (c *draftCommandsImpl) Start(ctx context.Context) (*DraftState, error) {
	all, err := c.settings.GetAll(ctx)

	notifier := notice.NewNotifier(c.clock, c.noticeTTL)
	if err != nil {
		notifier.Error(MsgAddressLoadFailed)
	}

	d := reservation.NewDraft(uuid.New(), all, notifier, c.clock.Now())
	c.store.Put(d)

	slog.Info("draft started", "draft_id", d.ID().String())
	return snapshot(d), nil
}

func (c *draftCommandsImpl) Get(ctx context.Context, id uuid.UUID) (*DraftState, error) {
	return c.mutate(id, func(*reservation.Draft) error { return nil })
}

func (c *draftCommandsImpl) SetPartySize(ctx context.Context, id uuid.UUID, count int) (*DraftState, error) {
	return c.mutate(id, func(d *reservation.Draft) error {
		return d.SetPartySize(count)
	})
}

func (c *draftCommandsImpl) SetParticipantName(ctx context.Context, id uuid.UUID, index int, name string) (*DraftState, error) {
	return c.mutate(id, func(d *reservation.Draft) error {
		return d.SetParticipantName(index, name)
	})
}

func (c *draftCommandsImpl) ToggleBracket(ctx context.Context, id uuid.UUID, index int, bracket string) (*DraftState, error) {
	b, err := pricing.ParseAgeBracket(bracket)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftValidation)
	}
	return c.mutate(id, func(d *reservation.Draft) error {
		return d.ToggleBracket(index, b)
	})
}

func (c *draftCommandsImpl) SetPhone(ctx context.Context, id uuid.UUID, phone string) (*DraftState, error) {
	return c.mutate(id, func(d *reservation.Draft) error {
		return d.SetPhone(phone)
	})
}

// ApplyCoupon looks the code up exactly as typed (trimmed). A miss keeps the
// previous coupon and discount and returns the state with ErrCouponNotFound.
func (c *draftCommandsImpl) ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*DraftState, error) {
	var lookupErr error
	state, err := c.mutate(id, func(d *reservation.Draft) error {
		if d.IsSubmitted() {
			return reservation.ErrDraftSubmitted
		}

		found, err := c.lookupCoupon(ctx, code)
		if err != nil {
			d.Notifier().Error(MsgCouponInvalid)
			lookupErr = err
			return nil
		}
		if err := d.ApplyCoupon(found); err != nil {
			return err
		}
		d.Notifier().Success(MsgCouponApplied)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, lookupErr
}

func (c *draftCommandsImpl) lookupCoupon(ctx context.Context, code string) (*coupon.Coupon, error) {
	couponCode, err := coupon.NewCouponCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponNotFound)
	}

	snap, err := c.uow.CommandReads().CouponByCode(ctx, couponCode.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrCouponLookupFailed)
	}

	found, err := coupon.NewCoupon(snap.Code, snap.Discount)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponLookupFailed)
	}
	return found, nil
}

// UploadReceipt replaces the draft's receipt reference only when the upload
// succeeds.
func (c *draftCommandsImpl) UploadReceipt(ctx context.Context, id uuid.UUID, file ReceiptFile) (*DraftState, error) {
	var uploadErr error
	state, err := c.mutate(id, func(d *reservation.Draft) error {
		if d.IsSubmitted() {
			return reservation.ErrDraftSubmitted
		}
		uploadErr = c.upload(ctx, d, file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, uploadErr
}

func (c *draftCommandsImpl) upload(ctx context.Context, d *reservation.Draft, file ReceiptFile) error {
	key, err := c.storage.UploadReceipt(ctx, file.Filename, file.Body, file.Size, file.ContentType)
	if err != nil {
		d.Notifier().Error(MsgReceiptFailed)
		return errs.Mark(err, ErrReceiptUploadFailed)
	}
	if err := d.SetReceipt(key); err != nil {
		return err
	}
	d.Notifier().Success(MsgReceiptUploaded)
	return nil
}

func (c *draftCommandsImpl) RefreshPrices(ctx context.Context, id uuid.UUID) (*DraftState, error) {
	prices := c.settings.GetPrices(ctx)
	return c.mutate(id, func(d *reservation.Draft) error {
		d.RefreshPrices(prices)
		return nil
	})
}

// Submit uploads the attached receipt first, if any; a failed upload aborts
// the attempt before anything is inserted. A failed insert leaves the draft
// open for another try.
func (c *draftCommandsImpl) Submit(ctx context.Context, id uuid.UUID, file *ReceiptFile) (*DraftState, error) {
	var submitErr error
	var created *reservation.Reservation

	state, err := c.mutate(id, func(d *reservation.Draft) error {
		if d.IsSubmitted() {
			return reservation.ErrDraftSubmitted
		}

		if file != nil {
			if err := c.upload(ctx, d, *file); err != nil {
				submitErr = err
				return nil
			}
		}

		res, err := c.factory.CreateReservation(d)
		if err != nil {
			return err
		}

		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Reservations().Create(ctx, tx.DB(), res)
			return err
		})
		if err != nil {
			d.Notifier().Error(MsgReservationFailed)
			submitErr = errs.Mark(err, ErrReservationNotStored)
			return nil
		}

		if err := d.MarkSubmitted(res.ID()); err != nil {
			return err
		}
		d.Notifier().Success(MsgReservationCreated)
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	if submitErr != nil {
		return state, submitErr
	}

	slog.Info("reservation created", "draft_id", id.String(), "reservation_id", created.ID().String())
	c.publishCreated(ctx, created)
	return state, nil
}

func (c *draftCommandsImpl) publishCreated(ctx context.Context, res *reservation.Reservation) {
	event := shared.ReservationCreated{
		ID:        res.ID(),
		Adults:    res.Adults(),
		PartySize: len(res.Participants()),
		Phone:     res.Phone().String(),
		Coupon:    res.Coupon(),
		Subtotal:  pricing.FormatPrice(res.Subtotal()),
		Total:     pricing.FormatPrice(res.Total()),
		Receipt:   res.Receipt(),
		CreatedAt: res.CreatedAt(),
	}
	if err := c.publisher.PublishReservationCreated(ctx, event); err != nil {
		slog.Warn("failed to publish reservation.created", "reservation_id", res.ID().String(), "error", err.Error())
	}
}

// mutate runs fn under the draft lock and snapshots the result. Domain
// errors are mapped to the command sentinels.
func (c *draftCommandsImpl) mutate(id uuid.UUID, fn func(d *reservation.Draft) error) (*DraftState, error) {
	var state *DraftState
	err := c.store.With(id, func(d *reservation.Draft) error {
		if err := fn(d); err != nil {
			return err
		}
		state = snapshot(d)
		return nil
	})
	if err != nil {
		return nil, mapDraftErr(err)
	}
	return state, nil
}

func mapDraftErr(err error) error {
	switch {
	case errs.Is(err, shared.ErrDraftNotFound):
		return ErrDraftNotFound
	case errs.Is(err, reservation.ErrDraftSubmitted):
		return ErrDraftSubmitted
	case errs.Is(err, pricing.ErrInvalidPartySize),
		errs.Is(err, pricing.ErrParticipantIndex),
		errs.Is(err, pricing.ErrInvalidAgeBracket),
		errs.Is(err, reservation.ErrNameTooLong),
		errs.Is(err, reservation.ErrPhoneTooLong):
		return errs.Mark(err, ErrDraftValidation)
	default:
		return err
	}
}

func snapshot(d *reservation.Draft) *DraftState {
	// totals only fail for a negative discount, which a stored coupon cannot carry
	totals, err := d.Total()
	if err != nil {
		slog.Warn("draft total unavailable", "draft_id", d.ID().String(), "error", err.Error())
	}

	state := &DraftState{
		ID:           d.ID(),
		Participants: d.Participants(),
		Phone:        d.Phone().String(),
		CouponCode:   d.CouponCode().String(),
		Discount:     d.Discount(),
		Receipt:      d.Receipt(),
		Settings:     d.Settings(),
		Totals:       totals,
		SubmittedID:  d.SubmittedID(),
		CreatedAt:    d.CreatedAt(),
	}
	if n, ok := d.Notifier().Current(); ok {
		state.Notice = &n
	}
	return state
}
