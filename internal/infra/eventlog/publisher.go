// Package eventlog publishes product analytics events.
package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 2 * time.Second

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPPublisher sends events as persistent JSON messages to a durable queue.
// Failures are logged, never returned.
type AMQPPublisher struct {
	mu     sync.Mutex
	ch     Channel
	queue  string
	logger *slog.Logger
}

func NewAMQPPublisher(ch Channel, queue string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, queue: queue, logger: logger}
}

// Dial opens a connection and channel and declares the queue. The returned
// func closes both.
func Dial(url, queue string) (*amqp.Channel, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open broker channel")
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrapf(err, "failed to declare queue %s", queue)
	}
	closeFn := func() {
		_ = ch.Close()
		_ = conn.Close()
	}
	return ch, closeFn, nil
}

func (p *AMQPPublisher) Log(ctx context.Context, e shared.Event) {
	body, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("failed to encode event", slog.String("event", e.Name), slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt.UTC(),
		Type:         e.Name,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn("failed to publish event",
			slog.String("event", e.Name),
			slog.Int64("offer_id", e.OfferID),
			slog.Any("error", err))
	}
}

// LogPublisher writes events to the application log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Log(ctx context.Context, e shared.Event) {
	p.logger.InfoContext(ctx, "analytics event",
		slog.String("event", e.Name),
		slog.Int64("offer_id", e.OfferID),
		slog.String("user_id", e.UserID.String()),
		slog.Any("properties", e.Properties))
}

var (
	_ shared.EventLogger = (*AMQPPublisher)(nil)
	_ shared.EventLogger = (*LogPublisher)(nil)
)
