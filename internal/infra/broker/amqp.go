// Package broker publishes domain events to RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/usecase/shared"
)

var ErrPublisherClosed = errs.New("publisher closed")

// AMQPPublisher keeps one connection and redials lazily after it drops. Each publish
// opens its own channel since channels are not safe for concurrent use.
type AMQPPublisher struct {
	url   string
	queue string
	clock clock.Clock

	mu     sync.Mutex
	conn   *amqp.Connection
	closed bool
}

func NewAMQPPublisher(cfg config.BrokerConfig, clk clock.Clock) *AMQPPublisher {
	return &AMQPPublisher{
		url:   cfg.URL,
		queue: cfg.QuizQueue,
		clock: clk,
	}
}

func (p *AMQPPublisher) PublishQuizEvaluated(ctx context.Context, event shared.QuizEvaluatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal quiz event")
	}
	return p.publish(ctx, p.queue, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, body []byte) error {
	conn, err := p.connection()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return errs.Wrapf(err, "declare queue %s", queue)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.clock.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return errs.Wrapf(err, "publish to %s", queue)
	}
	return nil
}

func (p *AMQPPublisher) connection() (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPublisherClosed
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		return nil, errs.Wrap(err, "dial amqp")
	}
	p.conn = conn
	return conn, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	slog.Info("amqp publisher closed")
	return err
}
