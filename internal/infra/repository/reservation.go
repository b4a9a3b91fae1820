package repository

import (
	"context"

	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/infra"
	"rodizio-reservas/internal/infra/repository/converter"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

// Create inserts the reservation; reservations are never updated afterwards
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params, err := converter.ReservationToInfra(res)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert reservation", err)
	}

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}
