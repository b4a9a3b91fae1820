//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/infra"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReservation() *reservation.Reservation {
	receipt := "receipts/1700000000000_pix.png"
	return reservation.ReconstructReservation(
		uuid.New(),
		1,
		pricing.Participants{
			{Name: "Ana"},
			{Name: "Bia", AgeBracket: pricing.Bracket6to10},
		},
		"11 99999-0000",
		"PROMO10",
		decimal.NewFromInt(10),
		&receipt,
		decimal.RequireFromString("114.90"),
		decimal.RequireFromString("104.90"),
		time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC),
	)
}

func TestCreateReservation(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantError bool
	}{
		{
			name: "success",
		},
		{
			name:      "duplicate id",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
			wantError: true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestReservation()
			mockQueries := new(MockWriteQueries)

			returnedID := res.ID()
			if tt.mockError != nil {
				returnedID = uuid.Nil
			}
			mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
				return p.ID == res.ID() &&
					p.Adults == 1 &&
					p.Phone == "11 99999-0000" &&
					p.Coupon == "PROMO10" &&
					p.Receipt.Valid &&
					p.Receipt.String == "receipts/1700000000000_pix.png"
			})).Return(returnedID, tt.mockError)

			repo := NewReservationRepository(mockQueries)
			id, err := repo.Create(context.Background(), mockQueries, res)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, res.ID(), id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
