package storage

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

const subscriberBuffer = 16

// broadcaster fans events out to in-process subscribers.
type broadcaster struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	done   chan struct{}
	closed bool
}

func (b *broadcaster) init() {
	if b.done == nil {
		b.done = make(chan struct{})
	}
}

func (b *broadcaster) subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	b.init()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch
	}
	if b.subs == nil {
		b.subs = make(map[chan Event]struct{})
	}
	b.subs[ch] = struct{}{}
	done := b.done
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		b.unsubscribe(ch)
	}()
	return ch
}

func (b *broadcaster) unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

func (b *broadcaster) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			log.WithField("key", ev.Key).Debug("broadcaster.publish(): subscriber buffer full, event dropped")
		}
	}
}

func (b *broadcaster) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.init()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
