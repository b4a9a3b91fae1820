package commands

import (
	"io"
	"time"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/pkg/notice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftState is a copy of a draft taken under its lock, safe to render after
// the lock is released.
type DraftState struct {
	ID           uuid.UUID
	Participants pricing.Participants
	Phone        string
	CouponCode   string
	Discount     decimal.Decimal
	Receipt      string
	Settings     settings.Settings
	Totals       pricing.ReservationTotal
	Notice       *notice.Notice
	SubmittedID  *uuid.UUID
	CreatedAt    time.Time
}

// ReceiptFile is an uploaded receipt; Body is read once
type ReceiptFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
