package readstore

import (
	"context"
	"time"

	"rodizio-reservas/internal/infra"
	"rodizio-reservas/internal/infra/repository/converter"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"
	"rodizio-reservas/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservationsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Reservations, error)
	ListReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsKeysetParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	view, err := toReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationViews(rows)
}

func (r *ReservationReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsKeyset(ctx, r.db, sqlc.ListReservationsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by keyset", err)
	}
	return toReservationViews(rows)
}

func toReservationViews(rows []sqlc.Reservations) ([]*queries.ReservationView, error) {
	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		v, err := toReservationView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", err)
		}
		views = append(views, v)
	}
	return views, nil
}

func toReservationView(row sqlc.Reservations) (*queries.ReservationView, error) {
	participants, err := converter.ParticipantsFromJSON(row.Participants)
	if err != nil {
		return nil, err
	}
	discount, err := pgconv.DecimalFromNumeric(row.Discount)
	if err != nil {
		return nil, err
	}
	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, err
	}

	pv := make([]queries.ParticipantView, len(participants))
	for i, p := range participants {
		pv[i] = queries.ParticipantView{Name: p.Name, AgeBracket: p.AgeBracket.String()}
	}

	return &queries.ReservationView{
		ID:           row.ID,
		Adults:       row.Adults,
		Participants: pv,
		Phone:        row.Phone,
		Coupon:       row.Coupon,
		Discount:     discount,
		Receipt:      pgconv.StringPtrFromPgtype(row.Receipt),
		Subtotal:     subtotal,
		Total:        total,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
