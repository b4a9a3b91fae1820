//go:build unit

package repository

import (
	"context"
	"testing"

	"rodizio-reservas/internal/domain/coupon"
	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/infra"
	sqlc "rodizio-reservas/internal/infra/sqlc/generated"
	"rodizio-reservas/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavePrices(t *testing.T) {
	prices, err := settings.NewPriceSettings(
		decimal.RequireFromString("79.90"),
		decimal.Zero,
		decimal.RequireFromString("39.90"),
		"Unidade Centro",
		"Faça sua reserva",
	)
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockWriteQueries)
			mockQueries.On("UpsertPrices", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpsertPricesParams) bool {
				adult, err := pgconv.DecimalFromNumeric(p.Adult)
				if err != nil {
					return false
				}
				child, err := pgconv.DecimalFromNumeric(p.Child610)
				if err != nil {
					return false
				}
				return adult.Equal(decimal.RequireFromString("79.90")) &&
					child.Equal(decimal.RequireFromString("39.90")) &&
					p.LocationTitle == "Unidade Centro" &&
					p.ReservationTitle == "Faça sua reserva"
			})).Return(tt.mockError)

			repo := NewSettingsRepository(mockQueries)
			err := repo.SavePrices(context.Background(), mockQueries, prices)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSaveAddressPopupPayment(t *testing.T) {
	payment, err := settings.NewPaymentSettings("12.345.678/0001-90", "CNPJ")
	require.NoError(t, err)

	mockQueries := new(MockWriteQueries)
	mockQueries.On("UpsertAddress", mock.Anything, mock.Anything, "Rua das Flores, 10").Return(nil)
	mockQueries.On("UpsertPopupSettings", mock.Anything, mock.Anything, sqlc.UpsertPopupSettingsParams{
		Title:       "Bem-vindo",
		Description: "Rodízio completo",
		Show:        false,
	}).Return(nil)
	mockQueries.On("UpsertPaymentSettings", mock.Anything, mock.Anything, sqlc.UpsertPaymentSettingsParams{
		PixKey:  "12.345.678/0001-90",
		PixType: "CNPJ",
	}).Return(assert.AnError)

	repo := NewSettingsRepository(mockQueries)
	ctx := context.Background()

	assert.NoError(t, repo.SaveAddress(ctx, mockQueries, settings.NewAddress("  Rua das Flores, 10 ")))
	assert.NoError(t, repo.SavePopup(ctx, mockQueries, settings.PopupSettings{
		Title:       "Bem-vindo",
		Description: "Rodízio completo",
		Show:        false,
	}))

	err = repo.SavePayment(ctx, mockQueries, payment)
	assert.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	mockQueries.AssertExpectations(t)
}

func TestUpsertCoupon(t *testing.T) {
	c, err := coupon.NewCoupon(" PROMO10 ", decimal.NewFromInt(10))
	require.NoError(t, err)

	mockQueries := new(MockWriteQueries)
	mockQueries.On("UpsertCoupon", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpsertCouponParams) bool {
		d, err := pgconv.DecimalFromNumeric(p.Discount)
		return err == nil && p.Code == "PROMO10" && d.Equal(decimal.NewFromInt(10))
	})).Return(nil)

	repo := NewCouponRepository(mockQueries)
	assert.NoError(t, repo.Upsert(context.Background(), mockQueries, c))
	mockQueries.AssertExpectations(t)
}
