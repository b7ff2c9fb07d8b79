package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RetryHeader counts how many times this service has already retried a
// message. The broker's own redelivered flag is also set after a consumer
// crash, so it cannot tell a first failure from a second one.
const RetryHeader = "x-capstone-retry"

// ErrConnectionLost is reported on Failed when the broker goes away.
var ErrConnectionLost = errors.New("rabbitmq connection lost")

var (
	_ Bus     = (*RabbitMQ)(nil)
	_ Watcher = (*RabbitMQ)(nil)
)

// RabbitMQ maps each logical queue to a fanout exchange of the same name.
// Every consuming service binds its own durable queue "<queue>.<service>" so
// all services see every message, each at its own pace.
type RabbitMQ struct {
	opts    *options
	service string
	conn    *amqp.Connection

	pubMu    sync.Mutex
	pub      *amqp.Channel
	declared map[string]bool

	// republish puts a retried message back on a consumer queue.
	republish func(ctx context.Context, queueName string, p amqp.Publishing) error

	failed    chan error
	closing   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// DialRabbitMQ connects to the broker. service names this process's queues.
func DialRabbitMQ(url, service string, opts ...Option) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}
	b := newRabbitMQ(service, opts)
	b.conn = conn
	b.pub = ch
	b.republish = b.publishToQueue

	go b.watch(conn.NotifyClose(make(chan *amqp.Error, 1)), "connection")
	go b.watch(ch.NotifyClose(make(chan *amqp.Error, 1)), "publish channel")
	return b, nil
}

func newRabbitMQ(service string, opts []Option) *RabbitMQ {
	return &RabbitMQ{
		opts:     newOptions(opts),
		service:  service,
		declared: make(map[string]bool),
		failed:   make(chan error, 1),
		closing:  make(chan struct{}),
	}
}

// Failed yields one error when the connection or a consumer dies while the
// bus is still open. Messages stop flowing from then on; the process should
// exit so it is restarted against a healthy broker.
func (b *RabbitMQ) Failed() <-chan error {
	return b.failed
}

// watch reports an unexpected close. A close we asked for arrives as a
// closed channel with no error.
func (b *RabbitMQ) watch(notify <-chan *amqp.Error, what string) {
	amqpErr, ok := <-notify
	if !ok || amqpErr == nil {
		return
	}
	b.fail(fmt.Errorf("%w: %s closed: %s (code %d)", ErrConnectionLost, what, amqpErr.Reason, amqpErr.Code))
}

func (b *RabbitMQ) fail(err error) {
	select {
	case <-b.closing:
		return
	default:
	}
	b.opts.logger.Error("bus failed", zap.Error(err))
	select {
	case b.failed <- err:
	default:
	}
}

func declareExchange(ch *amqp.Channel, queue string) error {
	return ch.ExchangeDeclare(queue, amqp.ExchangeFanout, true, false, false, false, nil)
}

func (b *RabbitMQ) Publish(ctx context.Context, msg Message) error {
	err := b.publish(ctx, msg)
	b.opts.metrics.ObservePublish(msg.Queue, err)
	return err
}

func (b *RabbitMQ) publish(ctx context.Context, msg Message) error {
	b.pubMu.Lock()
	defer b.pubMu.Unlock()

	if !b.declared[msg.Queue] {
		if err := declareExchange(b.pub, msg.Queue); err != nil {
			return fmt.Errorf("declare exchange %s: %w", msg.Queue, err)
		}
		b.declared[msg.Queue] = true
	}

	err := b.pub.PublishWithContext(ctx, msg.Queue, "", false, false, amqp.Publishing{
		MessageId:    msg.ID,
		ContentType:  msg.ContentType,
		Timestamp:    msg.PublishedAt,
		DeliveryMode: amqp.Persistent,
		Body:         msg.Body,
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", msg.Queue, err)
	}
	return nil
}

// publishToQueue sends p straight to one durable queue through the default
// exchange, so only this service sees the retry.
func (b *RabbitMQ) publishToQueue(ctx context.Context, queueName string, p amqp.Publishing) error {
	b.pubMu.Lock()
	defer b.pubMu.Unlock()
	return b.pub.PublishWithContext(ctx, "", queueName, false, false, p)
}

// QueueName is the durable queue service binds to the exchange for queue.
func QueueName(queue, service string) string {
	return queue + "." + service
}

func (b *RabbitMQ) Subscribe(ctx context.Context, queue string, h Handler) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consume channel: %w", err)
	}
	if err := ch.Qos(b.opts.buffer, 0, false); err != nil {
		ch.Close()
		return fmt.Errorf("set prefetch: %w", err)
	}
	if err := declareExchange(ch, queue); err != nil {
		ch.Close()
		return fmt.Errorf("declare exchange %s: %w", queue, err)
	}

	name := QueueName(queue, b.service)
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		ch.Close()
		return fmt.Errorf("declare queue %s: %w", name, err)
	}
	if err := ch.QueueBind(name, "", queue, false, nil); err != nil {
		ch.Close()
		return fmt.Errorf("bind queue %s: %w", name, err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, name, b.service, false, false, false, false, nil)
	if err != nil {
		ch.Close()
		return fmt.Errorf("consume %s: %w", name, err)
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer ch.Close()
		b.listen(ctx, queue, deliveries, h)
	}()
	b.opts.logger.Info("subscribed", zap.String("queue", queue), zap.String("binding", name))
	return nil
}

func (b *RabbitMQ) listen(ctx context.Context, queue string, deliveries <-chan amqp.Delivery, h Handler) {
	for d := range deliveries {
		b.settle(ctx, queue, d, h)
	}
	if ctx.Err() == nil {
		b.fail(fmt.Errorf("%w: deliveries for %s stopped", ErrConnectionLost, queue))
	}
}

func (b *RabbitMQ) settle(ctx context.Context, queue string, d amqp.Delivery, h Handler) {
	retries := retryCount(d.Headers)
	msg := Message{
		ID:          d.MessageId,
		Queue:       queue,
		ContentType: d.ContentType,
		Body:        d.Body,
		PublishedAt: d.Timestamp,
		Redelivered: retries > 0,
	}

	var err error
	switch b.opts.dispatch(ctx, h, msg) {
	case outcomeAck:
		err = d.Ack(false)
	case outcomeRequeue:
		err = b.retry(ctx, queue, d, retries+1)
	case outcomeDrop:
		err = d.Nack(false, false)
	}
	if err != nil {
		b.opts.logger.Error("settle delivery", zap.String("queue", queue), zap.Error(err))
	}
}

// retry republishes d with its retry count bumped and acks the original. If
// the republish fails the broker requeues it unchanged instead.
func (b *RabbitMQ) retry(ctx context.Context, queue string, d amqp.Delivery, retries int32) error {
	headers := amqp.Table{}
	for k, v := range d.Headers {
		headers[k] = v
	}
	headers[RetryHeader] = retries

	err := b.republish(ctx, QueueName(queue, b.service), amqp.Publishing{
		Headers:      headers,
		MessageId:    d.MessageId,
		ContentType:  d.ContentType,
		Timestamp:    d.Timestamp,
		DeliveryMode: amqp.Persistent,
		Body:         d.Body,
	})
	if err != nil {
		b.opts.logger.Warn("republish for retry failed, requeueing", zap.String("queue", queue), zap.Error(err))
		return d.Nack(false, true)
	}
	return d.Ack(false)
}

func retryCount(h amqp.Table) int32 {
	switch v := h[RetryHeader].(type) {
	case int32:
		return v
	case int64:
		return int32(v)
	case int:
		return int32(v)
	case int16:
		return int32(v)
	case int8:
		return int32(v)
	}
	return 0
}

// Close shuts the connection down; listeners exit once their delivery
// channels drain.
func (b *RabbitMQ) Close() error {
	b.closeOnce.Do(func() { close(b.closing) })

	b.pubMu.Lock()
	if b.pub != nil {
		b.pub.Close()
	}
	b.pubMu.Unlock()

	err := b.conn.Close()
	b.wg.Wait()
	return err
}
