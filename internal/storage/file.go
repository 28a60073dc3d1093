package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// FileStore keeps every key in one JSON document. The document is re-read on
// each operation so several processes sharing a profile see each other's
// writes; Update is atomic only within one process.
type FileStore struct {
	path   string
	mu     sync.Mutex
	closed bool
	events broadcaster
}

func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("NewFileStore(): failed to create directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) load() (map[string]string, error) {
	data := make(map[string]string)
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		log.WithField("path", f.path).Debugf("FileStore.load(): corrupt document treated as empty: %v", err)
		return make(map[string]string), nil
	}
	return data, nil
}

func (f *FileStore) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".mediexplain-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, ErrClosed
	}
	data, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	return f.Update(ctx, key, func(string, bool) (string, error) { return value, nil })
}

func (f *FileStore) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	data, err := f.load()
	if err == nil {
		delete(data, key)
		err = f.save(data)
	}
	f.mu.Unlock()
	if err != nil {
		return err
	}

	f.events.publish(newEvent(key, OpRemove))
	return nil
}

func (f *FileStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	data, err := f.load()
	if err != nil {
		f.mu.Unlock()
		return err
	}
	current, ok := data[key]
	next, err := fn(current, ok)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	data[key] = next
	err = f.save(data)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	f.events.publish(newEvent(key, OpSet))
	return nil
}

func (f *FileStore) Subscribe(ctx context.Context) <-chan Event {
	return f.events.subscribe(ctx)
}

func (f *FileStore) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.events.close()
	return nil
}
