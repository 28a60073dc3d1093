package storage

import (
	"context"
	"fmt"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

type Options struct {
	Driver    string
	Path      string
	RedisURL  string
	Namespace string
}

// Open returns the Store selected by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		store, err := NewFileStore(opts.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverSQLite, "":
		store, err := OpenSQLite(opts.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverRedis:
		store, err := OpenRedis(ctx, opts.RedisURL, opts.Namespace)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
