//go:build unit

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	a := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return a.Get(0).(amqp.Queue), a.Error(1)
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublishReservationCreated(t *testing.T) {
	event := shared.ReservationCreated{
		ID:        uuid.New(),
		Adults:    2,
		PartySize: 3,
		Total:     "139.80",
		CreatedAt: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
	}

	ch := new(mockChannel)
	ch.On("QueueDeclare", "reservation.created", true, false, false, false, amqp.Table(nil)).Return(amqp.Queue{Name: "reservation.created"}, nil)
	ch.On("PublishWithContext", mock.Anything, "", "reservation.created", false, false, mock.MatchedBy(func(msg amqp.Publishing) bool {
		var got shared.ReservationCreated
		if err := json.Unmarshal(msg.Body, &got); err != nil {
			return false
		}
		return msg.DeliveryMode == amqp.Persistent &&
			msg.ContentType == "application/json" &&
			got.ID == event.ID &&
			got.Total == "139.80"
	})).Return(nil).Once()
	ch.On("Close").Return(nil).Once()

	p, err := newPublisher(ch, "reservation.created")
	require.NoError(t, err)

	require.NoError(t, p.PublishReservationCreated(context.Background(), event))
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	err = p.PublishReservationCreated(context.Background(), event)
	assert.True(t, errs.Is(err, ErrPublisherClosed))
	ch.AssertExpectations(t)
}

func TestNewPublisher_DeclareFailure(t *testing.T) {
	ch := new(mockChannel)
	ch.On("QueueDeclare", "reservation.created", true, false, false, false, amqp.Table(nil)).Return(amqp.Queue{}, assert.AnError)

	_, err := newPublisher(ch, "reservation.created")
	assert.Error(t, err)
}
