// Package bus is the asynchronous, at-least-once transport between services.
//
// Each logical queue is consumed independently by every service that
// subscribes to it. Delivery order is FIFO per queue per subscriber; nothing
// is guaranteed across queues.
package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/metrics"
)

// ErrPoison marks a handler error as terminal for the message: it is dropped
// without requeue.
var ErrPoison = errors.New("poison message")

// Poison wraps err so the bus drops the message instead of requeueing it.
func Poison(err error) error {
	return fmt.Errorf("%w: %w", ErrPoison, err)
}

type Message struct {
	ID          string
	Queue       string
	ContentType string
	Body        []byte
	PublishedAt time.Time
	// Redelivered is set when the message has already been handed to this
	// subscriber once.
	Redelivered bool
}

// Handler processes one message. A nil return acknowledges it.
type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

type Subscriber interface {
	// Subscribe starts a background listener on queue. It returns once the
	// listener is registered; consumption stops when ctx is cancelled.
	Subscribe(ctx context.Context, queue string, h Handler) error
}

type Bus interface {
	Publisher
	Subscriber
	Close() error
}

// Watcher is implemented by transports that can fail after startup. Failed
// yields an error once the bus can no longer deliver.
type Watcher interface {
	Failed() <-chan error
}

// DropFunc is told about every message the bus drops.
type DropFunc func(ctx context.Context, msg Message, err error)

type options struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	onDrop  DropFunc
	buffer  int
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithDropFunc(fn DropFunc) Option {
	return func(o *options) { o.onDrop = fn }
}

// WithBuffer sets the per-subscriber in-flight buffer (in-memory bus) or the
// prefetch count (RabbitMQ).
func WithBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buffer = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop(), buffer: 64}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewJSONMessage encodes v as a message for queue with a fresh id.
func NewJSONMessage(queue string, v any) (Message, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s message: %w", queue, err)
	}
	return Message{
		ID:          uuid.NewString(),
		Queue:       queue,
		ContentType: "application/json",
		Body:        body,
		PublishedAt: time.Now().UTC(),
	}, nil
}

// PublishJSON encodes v and publishes it on queue.
func PublishJSON(ctx context.Context, p Publisher, queue string, v any) error {
	msg, err := NewJSONMessage(queue, v)
	if err != nil {
		return err
	}
	return p.Publish(ctx, msg)
}

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRequeue
	outcomeDrop
)

// dispatch runs h and decides what happens to msg. A failure that is not
// poison is retried once; a second failure drops the message so nothing loops.
func (o *options) dispatch(ctx context.Context, h Handler, msg Message) outcome {
	err := invoke(ctx, h, msg)
	log := o.logger.With(zap.String("queue", msg.Queue), zap.String("message_id", msg.ID))

	switch {
	case err == nil:
		o.metrics.ObserveConsume(msg.Queue, metrics.OutcomeOK)
		return outcomeAck
	case errors.Is(err, ErrPoison):
		log.Warn("dropping poison message", zap.Error(err))
		o.metrics.ObserveConsume(msg.Queue, metrics.OutcomePoison)
		o.drop(ctx, msg, err)
		return outcomeDrop
	case !msg.Redelivered:
		log.Warn("message handling failed, requeueing once", zap.Error(err))
		o.metrics.ObserveConsume(msg.Queue, metrics.OutcomeRequeue)
		return outcomeRequeue
	default:
		log.Error("message handling failed after redelivery, dropping", zap.Error(err))
		o.metrics.ObserveConsume(msg.Queue, metrics.OutcomeError)
		o.drop(ctx, msg, err)
		return outcomeDrop
	}
}

func (o *options) drop(ctx context.Context, msg Message, err error) {
	if o.onDrop != nil {
		o.onDrop(ctx, msg, err)
	}
}

// invoke calls h, turning a panic into a poison error so a bad message can
// never take the listener down.
func invoke(ctx context.Context, h Handler, msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Poison(fmt.Errorf("handler panic: %v", r))
		}
	}()
	return h(ctx, msg)
}
