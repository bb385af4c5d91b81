// Package events carries domain events between the api and worker binaries
// over a PostgreSQL-backed Watermill transport. No separate broker is
// deployed: the same database that stores products also queues their events,
// which lets a repository publish inside its own transaction (outbox).
//
// Subscribers in the same ConsumerGroup split the stream, so running more
// workers scales consumption instead of duplicating it. Handlers must be
// idempotent: a failed handler is retried up to 3 times with exponential
// backoff and the message is redelivered after a crash.
//
// Trace context rides in message metadata, so a product.created span in the
// api shows up as the parent of the worker's cache-warm span.
package events

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/produtos-api/pkg/config"
	"github.com/ghuser/produtos-api/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	shutdownTimeout = 30 * time.Second
	// forwarderTopic is the internal outbox queue the Forwarder daemon drains.
	forwarderTopic = "_forwarder_queue"
)

// EventBus publishes and consumes domain events through Postgres.
// Delivery uses FOR UPDATE SKIP LOCKED, so concurrent consumers never
// double-process a row.
type EventBus struct {
	publisher    message.Publisher // direct SQL publisher, or forwarder-decorated
	subscriber   *watermillsql.Subscriber
	fwd          *forwarder.Forwarder // set once StartForwarder succeeds
	db           *sql.DB
	log          logger.Logger
	wg           sync.WaitGroup
	useForwarder bool
}

// NewEventBus connects to cfg.DatabaseURL and prepares a publisher and a
// subscriber. Watermill's schema tables are created on first use. Instances
// sharing cfg.ServiceName form one ConsumerGroup.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, false)
}

// NewEventBusWithForwarder returns a bus whose Publish goes through a durable
// outbox queue instead of straight to the target topic. The Forwarder daemon
// (StartForwarder) moves queued messages to their real topics, so an event
// survives a crash that happens after Publish returns. The api binary uses
// this mode; the worker consumes with the plain constructor.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, true)
}

func newEventBus(cfg *config.Config, log logger.Logger, useForwarder bool) (*EventBus, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	wlog := &slogAdapter{log: log}

	pub, err := newSQLPublisher(db, wlog, true)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}

	var publisher message.Publisher = pub
	if useForwarder {
		publisher = forwarder.NewPublisher(pub, forwarder.PublisherConfig{
			ForwarderTopic: forwarderTopic,
		})
	}

	sub, err := newSQLSubscriber(db, wlog, cfg.ServiceName+"-consumer")
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}

	return &EventBus{
		publisher:    publisher,
		subscriber:   sub,
		db:           db,
		log:          log,
		useForwarder: useForwarder,
	}, nil
}

// newSQLPublisher builds a Watermill SQL publisher over conn, which may be a
// *sql.DB or a *sql.Tx (transactional publishing).
func newSQLPublisher(conn watermillsql.ContextExecutor, wlog watermill.LoggerAdapter, initSchema bool) (*watermillsql.Publisher, error) {
	return watermillsql.NewPublisher(
		conn,
		watermillsql.PublisherConfig{
			SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
			AutoInitializeSchema: initSchema,
		},
		wlog,
	)
}

func newSQLSubscriber(db *sql.DB, wlog watermill.LoggerAdapter, group string) (*watermillsql.Subscriber, error) {
	return watermillsql.NewSubscriber(
		db,
		watermillsql.SubscriberConfig{
			SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
			OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
			InitializeSchema: true,
			ConsumerGroup:    group,
		},
		wlog,
	)
}

// StartForwarder launches the daemon that drains the outbox queue into the
// target topics. Valid only once, and only on a bus built with
// NewEventBusWithForwarder. Returns after the forwarder's router is running.
func (b *EventBus) StartForwarder(ctx context.Context) error {
	if !b.useForwarder {
		return fmt.Errorf("events: StartForwarder called on non-forwarder EventBus")
	}
	if b.fwd != nil {
		return fmt.Errorf("events: forwarder already started")
	}

	wlog := &slogAdapter{log: b.log}

	// The forwarder needs its own subscriber (draining the outbox) and its
	// own publisher (final delivery).
	fwdSub, err := newSQLSubscriber(b.db, wlog, "forwarder-consumer")
	if err != nil {
		return fmt.Errorf("events: new forwarder subscriber: %w", err)
	}

	targetPub, err := newSQLPublisher(b.db, wlog, true)
	if err != nil {
		_ = fwdSub.Close()
		return fmt.Errorf("events: new forwarder target publisher: %w", err)
	}

	fwd, err := forwarder.NewForwarder(fwdSub, targetPub, wlog, forwarder.Config{
		ForwarderTopic: forwarderTopic,
	})
	if err != nil {
		_ = targetPub.Close()
		_ = fwdSub.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}

	b.fwd = fwd

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.log.InfoContext(ctx, "events: forwarder started")
		if err := fwd.Run(ctx); err != nil {
			b.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
		} else {
			b.log.InfoContext(ctx, "events: forwarder stopped")
		}
	}()

	select {
	case <-fwd.Running():
	case <-ctx.Done():
		return fmt.Errorf("events: context cancelled waiting for forwarder: %w", ctx.Err())
	}

	return nil
}

// DB exposes the bus's connection for callers that need to open a transaction
// spanning both their own writes and a publish (see NewTxPublisher).
func (b *EventBus) DB() *sql.DB {
	return b.db
}

// NewTxPublisher returns a publisher whose Publish executes inside tx. The
// product repository uses this to make "insert row + queue event" a single
// atomic commit. Schema init is off: the tables already exist after bus
// startup, and DDL inside a data transaction would be wrong anyway.
func (b *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := newSQLPublisher(tx, &slogAdapter{log: b.log}, false)
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	if b.useForwarder {
		return forwarder.NewPublisher(pub, forwarder.PublisherConfig{
			ForwarderTopic: forwarderTopic,
		}), nil
	}
	return pub, nil
}

// Publish sends msgs to topic, stamping each with the trace context from ctx
// so subscribers can continue the span tree.
func (b *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
	if err := b.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe consumes topic in a background goroutine, calling handler per
// message with the publisher's trace context restored.
//
// Ack/Nack is the bus's job, keyed off the handler's return:
// nil acks; an error is retried (1s, 2s, 4s); exhausted retries nack and
// push the error onto the returned channel. The channel is buffered at 100
// and must be drained by the caller. Close waits for in-flight handlers.
func (b *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := b.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	propagator := otel.GetTextMapPropagator()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer close(errCh)

		for msg := range ch {
			carrier := propagation.MapCarrier{}
			for k, v := range msg.Metadata {
				carrier[k] = v
			}
			msgCtx := propagator.Extract(ctx, carrier)

			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, retryBaseDelay, b.log); err != nil {
				msg.Nack()
				select {
				case errCh <- err:
				default:
					b.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
			} else {
				msg.Ack()
			}
		}
	}()

	return errCh, nil
}

// retryWithBackoff runs handler up to maxRetries times, doubling the delay
// between attempts. Returns nil on the first success, the context error if
// cancelled mid-wait, or the last handler error once attempts are exhausted.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler func(context.Context, *message.Message) error,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt < maxRetries {
			log.WarnContext(ctx, "events: handler failed, retrying",
				"attempt", attempt,
				"max_retries", maxRetries,
				"next_delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping reports whether the bus's database connection is healthy.
func (b *EventBus) Ping(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close shuts the bus down in dependency order: subscriber first (no new
// messages), then the forwarder, then a bounded wait for in-flight handlers,
// then publisher and database.
func (b *EventBus) Close() error {
	if err := b.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}

	if b.fwd != nil {
		if err := b.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	select {
	case <-done:
	case <-ctx.Done():
		b.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	if err := b.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return b.db.Close()
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
