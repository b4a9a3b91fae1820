package reservation

import (
	"errors"
	"time"

	"rodizio-reservas/internal/domain/coupon"
	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/pkg/notice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDraftSubmitted = errors.New("draft has already been submitted")

// Draft is the in-progress reservation form. The participant sequence length
// is the party size; every mutation keeps that invariant.
type Draft struct {
	id           uuid.UUID
	participants pricing.Participants
	phone        Phone
	couponCode   coupon.Code
	discount     decimal.Decimal
	receipt      string
	settings     settings.Settings
	notifier     *notice.Notifier
	submittedID  *uuid.UUID
	createdAt    time.Time
	touchedAt    time.Time
}

func NewDraft(id uuid.UUID, s settings.Settings, notifier *notice.Notifier, now time.Time) *Draft {
	return &Draft{
		id:           id,
		participants: pricing.NewParticipants(),
		discount:     decimal.Zero,
		settings:     s,
		notifier:     notifier,
		createdAt:    now,
		touchedAt:    now,
	}
}

func (d *Draft) SetPartySize(count int) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	resized, err := d.participants.Resize(count)
	if err != nil {
		return err
	}
	d.participants = resized
	return nil
}

func (d *Draft) SetParticipantName(index int, name string) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	updated, err := d.participants.WithName(index, name)
	if err != nil {
		return err
	}
	d.participants = updated
	return nil
}

func (d *Draft) ToggleBracket(index int, b pricing.AgeBracket) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	updated, err := d.participants.ToggleBracket(index, b)
	if err != nil {
		return err
	}
	d.participants = updated
	return nil
}

func (d *Draft) SetPhone(phone string) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	d.phone = p
	return nil
}

// ApplyCoupon replaces any previously applied coupon
func (d *Draft) ApplyCoupon(c *coupon.Coupon) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	d.couponCode = c.Code()
	d.discount = c.Discount()
	return nil
}

func (d *Draft) SetReceipt(path string) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	d.receipt = path
	return nil
}

// RefreshPrices swaps the schedule; participants and coupon are kept
func (d *Draft) RefreshPrices(p settings.PriceSettings) {
	d.settings.Prices = p
}

func (d *Draft) Total() (pricing.ReservationTotal, error) {
	return pricing.ComputeTotal(d.PartySize(), d.participants, d.settings.Prices.Schedule, d.discount)
}

func (d *Draft) MarkSubmitted(reservationID uuid.UUID) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	d.submittedID = &reservationID
	return nil
}

func (d *Draft) Touch(now time.Time) {
	d.touchedAt = now
}

func (d *Draft) IsIdleSince(cutoff time.Time) bool {
	return d.touchedAt.Before(cutoff)
}

func (d *Draft) ensureOpen() error {
	if d.submittedID != nil {
		return ErrDraftSubmitted
	}
	return nil
}

func (d *Draft) ID() uuid.UUID                      { return d.id }
func (d *Draft) PartySize() int                     { return len(d.participants) }
func (d *Draft) Participants() pricing.Participants { return append(pricing.Participants(nil), d.participants...) }
func (d *Draft) Phone() Phone                       { return d.phone }
func (d *Draft) CouponCode() coupon.Code            { return d.couponCode }
func (d *Draft) Discount() decimal.Decimal          { return d.discount }
func (d *Draft) Receipt() string                    { return d.receipt }
func (d *Draft) Settings() settings.Settings        { return d.settings }
func (d *Draft) Prices() settings.PriceSettings     { return d.settings.Prices }
func (d *Draft) Notifier() *notice.Notifier         { return d.notifier }
func (d *Draft) SubmittedID() *uuid.UUID            { return d.submittedID }
func (d *Draft) IsSubmitted() bool                  { return d.submittedID != nil }
func (d *Draft) CreatedAt() time.Time               { return d.createdAt }
func (d *Draft) TouchedAt() time.Time               { return d.touchedAt }
