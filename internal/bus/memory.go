package bus

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("bus closed")

// Memory is an in-process Bus. Every subscription to a queue receives its own
// copy of each message, which mirrors one durable queue per consuming service.
// Messages published to a queue with no subscribers are discarded.
type Memory struct {
	opts *options

	mu     sync.RWMutex
	subs   map[string][]*memorySub
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

type memorySub struct {
	queue   string
	handler Handler
	ch      chan Message
	quit    chan struct{}
}

func NewMemory(opts ...Option) *Memory {
	return &Memory{
		opts: newOptions(opts),
		subs: make(map[string][]*memorySub),
		done: make(chan struct{}),
	}
}

func (b *Memory) Publish(ctx context.Context, msg Message) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		b.opts.metrics.ObservePublish(msg.Queue, ErrClosed)
		return ErrClosed
	}
	subs := b.subs[msg.Queue]
	b.mu.RUnlock()

	for _, s := range subs {
		m := msg
		m.Body = append([]byte(nil), msg.Body...)
		select {
		case s.ch <- m:
		case <-ctx.Done():
			b.opts.metrics.ObservePublish(msg.Queue, ctx.Err())
			return ctx.Err()
		case <-b.done:
			b.opts.metrics.ObservePublish(msg.Queue, ErrClosed)
			return ErrClosed
		case <-s.quit:
		}
	}
	b.opts.metrics.ObservePublish(msg.Queue, nil)
	return nil
}

func (b *Memory) Subscribe(ctx context.Context, queue string, h Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}

	s := &memorySub{queue: queue, handler: h, ch: make(chan Message, b.opts.buffer), quit: make(chan struct{})}
	b.subs[queue] = append(b.subs[queue], s)

	b.wg.Add(1)
	go b.listen(ctx, s)
	return nil
}

func (b *Memory) listen(ctx context.Context, s *memorySub) {
	defer b.wg.Done()
	defer b.unsubscribe(s)
	defer close(s.quit)

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.done:
			return
		case msg := <-s.ch:
			// A requeue goes straight back to this listener, which keeps the
			// queue FIFO for everything behind it.
			if b.opts.dispatch(ctx, s.handler, msg) == outcomeRequeue {
				msg.Redelivered = true
				b.opts.dispatch(ctx, s.handler, msg)
			}
		}
	}
}

func (b *Memory) unsubscribe(s *memorySub) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[s.queue]
	for i, cur := range subs {
		if cur == s {
			b.subs[s.queue] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// Close stops every listener and waits for in-flight handlers to return.
func (b *Memory) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
