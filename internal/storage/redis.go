package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const maxTxAttempts = 10

// RedisStore keeps keys under a namespace and publishes change events on a
// pub/sub channel, so every process sharing the namespace sees every write.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

func OpenRedis(ctx context.Context, url, namespace string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRedisStore(client, namespace), nil
}

func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{client: client, namespace: namespace}
}

func (r *RedisStore) key(key string) string {
	return r.namespace + ":" + key
}

func (r *RedisStore) channel() string {
	return r.namespace + ":events"
}

func (r *RedisStore) publish(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := r.client.Publish(ctx, r.channel(), payload).Err(); err != nil {
		log.WithField("key", ev.Key).Warnf("RedisStore.publish(): %v", err)
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return err
	}
	r.publish(ctx, newEvent(key, OpSet))
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return err
	}
	r.publish(ctx, newEvent(key, OpRemove))
	return nil
}

// Update runs fn under WATCH; a concurrent write to the key aborts the
// transaction and fn runs again on the fresh value.
func (r *RedisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	fullKey := r.key(key)
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, fullKey).Result()
		ok := true
		if errors.Is(err, redis.Nil) {
			ok = false
		} else if err != nil {
			return err
		}
		next, err := fn(current, ok)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, fullKey, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxAttempts; i++ {
		err := r.client.Watch(ctx, txf, fullKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return err
		}
		r.publish(ctx, newEvent(key, OpSet))
		return nil
	}
	return fmt.Errorf("RedisStore.Update(): %s still contended after %d attempts", key, maxTxAttempts)
}

func (r *RedisStore) Subscribe(ctx context.Context) <-chan Event {
	out := make(chan Event, subscriberBuffer)
	pubsub := r.client.Subscribe(ctx, r.channel())

	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue
				}
				select {
				case out <- ev:
				default:
				}
			}
		}
	}()
	return out
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
