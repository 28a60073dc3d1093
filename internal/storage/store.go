// Package storage is the persisted key-value medium behind the session slot
// and the report history. Drivers: memory, file, sqlite, redis.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrClosed = errors.New("storage: store is closed")

type Op string

const (
	OpSet    Op = "set"
	OpRemove Op = "remove"
)

// Event is emitted after every successful mutation.
type Event struct {
	Key string    `json:"key"`
	Op  Op        `json:"op"`
	At  time.Time `json:"at"`
}

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Subscribe delivers change events until ctx is done or the store is
	// closed, then closes the channel. Slow subscribers miss events.
	Subscribe(ctx context.Context) <-chan Event
	Close() error
}

// UpdateFunc receives the current value (ok is false when the key is unset)
// and returns the value to write.
type UpdateFunc func(current string, ok bool) (string, error)

// Updater is implemented by stores that can run a read-modify-write
// atomically with respect to other writers of the same store.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

func newEvent(key string, op Op) Event {
	return Event{Key: key, Op: op, At: time.Now().UTC()}
}
