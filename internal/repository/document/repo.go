package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/bonfire/internal/db"
	"github.com/kailas-cloud/bonfire/internal/domain"
)

// store is the consumer interface for JSON documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key string, data []byte) error
	JSONGet(ctx context.Context, key string) ([]byte, error)
	JSONMGet(ctx context.Context, keys []string) ([][]byte, error)
	Del(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	ScanPrefix(ctx context.Context, prefix string) ([]string, error)
}

// Record constrains PT to be *T implementing domain.Record.
type Record[T any] interface {
	*T
	domain.Record
}

// Repo is a typed repository over one collection.
// T is the stored entity, P its patch type.
type Repo[T any, P any, PT Record[T]] struct {
	store      store
	prefix     string
	collection domain.Collection
	now        func() time.Time
}

// New creates a repository for collection; keys are "<prefix><collection>:<id>".
func New[T any, P any, PT Record[T]](s store, prefix string, collection domain.Collection) *Repo[T, P, PT] {
	return &Repo[T, P, PT]{
		store:      s,
		prefix:     prefix,
		collection: collection,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Collection returns the collection name served by r.
func (r *Repo[T, P, PT]) Collection() domain.Collection { return r.collection }

// Create assigns a fresh identifier and creation time, then stores rec.
func (r *Repo[T, P, PT]) Create(ctx context.Context, rec *T) error {
	p := PT(rec)
	p.SetRecordID(domain.NewID())
	p.SetCreatedAt(r.now())
	return r.put(ctx, p.RecordID(), rec)
}

// Get returns the record with id.
func (r *Repo[T, P, PT]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := domain.ValidateID(id); err != nil {
		return zero, err
	}
	key := r.key(id)
	raw, err := r.store.JSONGet(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return zero, fmt.Errorf("%s %s: %w", r.collection, id, domain.ErrNotFound)
		}
		return zero, fmt.Errorf("json.get %s: %w: %w", key, domain.ErrUnavailable, err)
	}
	return r.decode(key, raw)
}

// Exists reports whether a record with id is stored.
func (r *Repo[T, P, PT]) Exists(ctx context.Context, id string) (bool, error) {
	if err := domain.ValidateID(id); err != nil {
		return false, err
	}
	key := r.key(id)
	ok, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w: %w", key, domain.ErrUnavailable, err)
	}
	return ok, nil
}

// List returns one page of records in creation order and the collection size.
func (r *Repo[T, P, PT]) List(ctx context.Context, limit, offset int) ([]T, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		return nil, 0, domain.InvalidArgument("offset must not be negative")
	}

	keys, err := r.scan(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := len(keys)
	if offset >= total {
		return []T{}, total, nil
	}
	end := min(offset+limit, total)

	out, err := r.fetch(ctx, keys[offset:end])
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// All returns every record of the collection in creation order.
func (r *Repo[T, P, PT]) All(ctx context.Context) ([]T, error) {
	keys, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	return r.fetch(ctx, keys)
}

// IDs returns every identifier of the collection in creation order.
func (r *Repo[T, P, PT]) IDs(ctx context.Context) ([]string, error) {
	keys, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	base := r.basePrefix()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = strings.TrimPrefix(k, base)
	}
	return ids, nil
}

// GetMany fetches records for ids in one round trip.
// Missing ids are omitted; the result follows the order of ids.
func (r *Repo[T, P, PT]) GetMany(ctx context.Context, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if err := domain.ValidateIDs(ids); err != nil {
		return nil, err
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	return r.fetch(ctx, keys)
}

// Update applies the non-nil fields of patch and stamps updated_at.
// An empty patch returns the current record unchanged.
func (r *Repo[T, P, PT]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	current, err := r.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return zero, fmt.Errorf("marshal patch: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patchJSON, &fields); err != nil {
		return zero, fmt.Errorf("decode patch: %w", err)
	}
	if len(fields) == 0 {
		return current, nil
	}

	merged, err := mergeJSON(current, fields)
	if err != nil {
		return zero, err
	}
	var updated T
	if err := json.Unmarshal(merged, &updated); err != nil {
		return zero, fmt.Errorf("apply patch: %w", err)
	}
	p := PT(&updated)
	p.SetRecordID(id)
	p.SetUpdatedAt(r.now())

	if err := r.put(ctx, id, &updated); err != nil {
		return zero, err
	}
	return updated, nil
}

// Delete removes the record and reports whether it existed.
func (r *Repo[T, P, PT]) Delete(ctx context.Context, id string) (bool, error) {
	if err := domain.ValidateID(id); err != nil {
		return false, err
	}
	key := r.key(id)
	removed, err := r.store.Del(ctx, key)
	if err != nil {
		return false, fmt.Errorf("del %s: %w: %w", key, domain.ErrUnavailable, err)
	}
	return removed, nil
}

func (r *Repo[T, P, PT]) put(ctx context.Context, id string, rec *T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.collection, err)
	}
	key := r.key(id)
	if err := r.store.JSONSet(ctx, key, data); err != nil {
		return fmt.Errorf("json.set %s: %w: %w", key, domain.ErrUnavailable, err)
	}
	return nil
}

func (r *Repo[T, P, PT]) scan(ctx context.Context) ([]string, error) {
	keys, err := r.store.ScanPrefix(ctx, r.basePrefix())
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w: %w", r.collection, domain.ErrUnavailable, err)
	}
	return keys, nil
}

func (r *Repo[T, P, PT]) fetch(ctx context.Context, keys []string) ([]T, error) {
	if len(keys) == 0 {
		return []T{}, nil
	}
	raws, err := r.store.JSONMGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("json.mget %s: %w: %w", r.collection, domain.ErrUnavailable, err)
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		rec, err := r.decode(keys[i], raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *Repo[T, P, PT]) decode(key string, raw []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("decode %s: %w", key, err)
	}
	return rec, nil
}

func (r *Repo[T, P, PT]) key(id string) string {
	return r.basePrefix() + id
}

func (r *Repo[T, P, PT]) basePrefix() string {
	return r.prefix + string(r.collection) + ":"
}

func mergeJSON(current any, fields map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("marshal current: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, fmt.Errorf("decode current: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}
	return json.Marshal(doc)
}
