package shared

import (
	"context"
	"io"

	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReceiptStorage stores an uploaded payment receipt and returns its object key
type ReceiptStorage interface {
	UploadReceipt(ctx context.Context, filename string, body io.Reader, size int64, contentType string) (string, error)
}

// EventPublisher delivers domain events. Callers treat failures as non-fatal.
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event ReservationCreated) error
}

// SettingsCache drops cached settings sections after an admin save
type SettingsCache interface {
	Invalidate(ctx context.Context, sections ...string) error
}

const (
	SectionPrices  = "prices"
	SectionAddress = "address"
	SectionPopup   = "popup"
	SectionPayment = "payment"
)

var ErrDraftNotFound = errs.New("draft not found")

// DraftStore holds in-progress forms. With runs fn under the draft's lock and
// marks the draft as active afterwards.
type DraftStore interface {
	Put(d *reservation.Draft)
	With(id uuid.UUID, fn func(d *reservation.Draft) error) error
}
