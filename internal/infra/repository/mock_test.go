//go:build unit

package repository

import (
	"context"

	sqlc "rodizio-reservas/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockWriteQueries covers every write query plus sqlc.DBTX so one mock can
// stand in for both the queries and the transaction.
type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockWriteQueries) UpsertPrices(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPricesParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) UpsertAddress(ctx context.Context, db sqlc.DBTX, address string) error {
	args := m.Called(ctx, db, address)
	return args.Error(0)
}

func (m *MockWriteQueries) UpsertPopupSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPopupSettingsParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) UpsertPaymentSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPaymentSettingsParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) UpsertCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCouponParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// sqlc.DBTX implementation for MockWriteQueries
func (m *MockWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}
