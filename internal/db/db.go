package db

import (
	"context"
	"time"
)

// Store is the document database facade combining all sub-interfaces.
type Store interface {
	Pinger
	JSONStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides JSON document operations over string keys.
type JSONStore interface {
	// JSONSet stores data as the whole document at key.
	JSONSet(ctx context.Context, key string, data []byte) error
	// JSONGet returns the document at key or ErrKeyNotFound.
	JSONGet(ctx context.Context, key string) ([]byte, error)
	// JSONMGet fetches many documents in one round trip.
	// The result is aligned with keys; missing keys yield nil entries.
	JSONMGet(ctx context.Context, keys []string) ([][]byte, error)
	// Del removes key and reports whether it existed.
	Del(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	// ScanPrefix returns all keys starting with prefix in ascending order.
	ScanPrefix(ctx context.Context, prefix string) ([]string, error)
}
