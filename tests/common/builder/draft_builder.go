//go:build unit || e2e

package builder

import (
	"time"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/pkg/notice"
	"rodizio-reservas/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DraftBuilder struct {
	ID           uuid.UUID
	Participants pricing.Participants
	Phone        string
	CouponCode   string
	Discount     decimal.Decimal
	Receipt      string
	Settings     settings.Settings
	Notice       *notice.Notice
	SubmittedID  *uuid.UUID
	CreatedAt    time.Time
}

// NewDraftBuilder starts from the example party: an adult, a 0-5 child and a
// 6-10 child at the default prices
func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		ID: uuid.New(),
		Participants: pricing.Participants{
			{Name: "Ana"},
			{Name: "Bia", AgeBracket: pricing.Bracket0to5},
			{Name: "Caio", AgeBracket: pricing.Bracket6to10},
		},
		Phone:     "11999990000",
		Discount:  decimal.Zero,
		Settings:  NewSettingsBuilder().Build(),
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) WithNotice(message string, kind notice.Kind) *DraftBuilder {
	b.Notice = &notice.Notice{
		Message:   message,
		Kind:      kind,
		ShownAt:   b.CreatedAt,
		ExpiresAt: b.CreatedAt.Add(notice.DefaultTTL),
	}
	return b
}

// BuildState computes totals the same way the draft does
func (b *DraftBuilder) BuildState() *commands.DraftState {
	totals, _ := pricing.ComputeTotal(len(b.Participants), b.Participants, b.Settings.Prices.Schedule, b.Discount)
	return &commands.DraftState{
		ID:           b.ID,
		Participants: b.Participants,
		Phone:        b.Phone,
		CouponCode:   b.CouponCode,
		Discount:     b.Discount,
		Receipt:      b.Receipt,
		Settings:     b.Settings,
		Totals:       totals,
		Notice:       b.Notice,
		SubmittedID:  b.SubmittedID,
		CreatedAt:    b.CreatedAt,
	}
}
