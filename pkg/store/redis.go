package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces board keys.
const DefaultRedisPrefix = "whiteboard:"

type redisBackend struct {
	client redis.UniversalClient
	prefix string
	owned  bool
}

// NewRedisStore stores boards in client under prefix. Each board is a JSON
// string at <prefix>board:<id>; <prefix>boards is a sorted set of ids scored
// by update time. Close leaves a caller-provided client open.
func NewRedisStore(client redis.UniversalClient, prefix string) Store {
	return newRecordStore("redis", newRedisBackend(client, prefix, false))
}

func newRedisBackend(client redis.UniversalClient, prefix string, owned bool) *redisBackend {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &redisBackend{client: client, prefix: prefix, owned: owned}
}

func (r *redisBackend) boardKey(id string) string { return r.prefix + "board:" + id }
func (r *redisBackend) indexKey() string          { return r.prefix + "boards" }

func (r *redisBackend) load(ctx context.Context, id string) (Record, error) {
	data, err := r.client.Get(ctx, r.boardKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, NotFound(id)
	}
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode board %s: %w", id, err)
	}
	return rec, nil
}

func (r *redisBackend) put(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.boardKey(rec.ID), data, 0)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{Score: score(rec.Meta), Member: rec.ID})
		return nil
	})
	return err
}

func (r *redisBackend) remove(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.boardKey(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return NotFound(id)
	}
	return nil
}

// list walks the index newest first. Ids whose record has vanished or no
// longer decodes are skipped.
func (r *redisBackend) list(ctx context.Context) ([]Meta, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Meta{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.boardKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	return decodeMetas(values), nil
}

func decodeMetas(values []any) []Meta {
	metas := make([]Meta, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var m Meta
		if json.Unmarshal([]byte(s), &m) != nil || m.ID == "" {
			continue
		}
		metas = append(metas, m)
	}
	return metas
}

// score orders the index by update time in milliseconds.
func score(m Meta) float64 { return float64(m.UpdatedAt.UnixMilli()) }

func (r *redisBackend) close() error {
	if !r.owned {
		return nil
	}
	return r.client.Close()
}
