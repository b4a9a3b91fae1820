package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errs.New("event publisher closed")

type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes to a durable queue on the default exchange.
// One channel is shared and guarded by a mutex; amqp channels are not safe
// for concurrent publishing.
type AMQPPublisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     amqpChannel
	queue  string
	closed bool
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "amqp dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp channel open")
	}

	p, err := newPublisher(ch, cfg.Queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn

	slog.Info("amqp publisher ready", "queue", cfg.Queue)
	return p, nil
}

func newPublisher(ch amqpChannel, queue string) (*AMQPPublisher, error) {
	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, errs.Wrap(err, "amqp queue declare")
	}
	return &AMQPPublisher{ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) PublishReservationCreated(ctx context.Context, event shared.ReservationCreated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal reservation.created")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    time.Now().UTC(),
		Type:         "reservation.created",
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errs.Wrap(err, "amqp publish")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	chErr := p.ch.Close()
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return err
		}
	}
	return chErr
}

// NoopPublisher is used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationCreated(ctx context.Context, event shared.ReservationCreated) error {
	slog.Debug("event publishing disabled", "event", "reservation.created", "reservation_id", event.ID.String())
	return nil
}
