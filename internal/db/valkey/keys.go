package valkey

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/bonfire/internal/db"
)

// Del deletes a key and reports whether it existed.
func (s *Store) Del(ctx context.Context, key string) (bool, error) {
	cmd := s.b().Del().Key(key).Build()
	n, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpDel, Err: err}
	}
	return n > 0, nil
}

// Exists checks if a key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	cmd := s.b().Exists().Key(key).Build()
	count, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpExists, Err: err}
	}
	return count > 0, nil
}

// ScanPrefix iterates keys starting with prefix on every known node and
// returns them sorted. In cluster mode each shard holds a slice of the
// keyspace, so one node's SCAN is not enough.
func (s *Store) ScanPrefix(ctx context.Context, prefix string) ([]string, error) {
	nodes := s.client.Nodes()
	if len(nodes) == 0 {
		nodes = map[string]rueidis.Client{"": s.client}
	}

	var keys []string
	for addr, node := range nodes {
		got, err := scanNode(ctx, node, prefix)
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: fmt.Errorf("node %s: %w", addr, err)}
		}
		keys = append(keys, got...)
	}

	// SCAN may return a key more than once, and replicas repeat their master.
	sort.Strings(keys)
	return dedupSorted(keys), nil
}

func scanNode(ctx context.Context, node rueidis.Client, prefix string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		cmd := node.B().Scan().Cursor(cursor).Match(prefix + "*").Count(100).Build()
		res, err := node.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, err
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			return keys, nil
		}
	}
}

func dedupSorted(keys []string) []string {
	if len(keys) < 2 {
		return keys
	}
	out := keys[:1]
	for _, k := range keys[1:] {
		if k != out[len(out)-1] {
			out = append(out, k)
		}
	}
	return out
}
