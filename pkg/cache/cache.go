// Package cache provides byte-level caching for derived whiteboard artifacts.
//
// Two things are worth caching in this system: rasterized icons (an icon id,
// a color and a pixel size always produce the same PNG data URI) and rendered
// exports (a stored board payload plus render options always produce the same
// SVG, PNG or PDF bytes). Both are pure functions of their inputs, so entries
// are keyed by a hash of those inputs and never need invalidation beyond TTL.
//
// # Backends
//
//   - [FileCache]: one file per entry under a directory, for the CLI.
//   - [MemoryCache]: process-local map, for tests and single-process servers.
//   - [RedisCache]: shared cache for several server replicas.
//   - [NullCache]: never stores anything; disables caching.
//
// # Keys
//
// A [Keyer] builds keys. [DefaultKeyer] hashes the key inputs with SHA-256;
// [ScopedKeyer] prefixes every key so several deployments can share one Redis.
//
//	keys := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "whiteboard:")
//	key := keys.IconKey("star", "#111827", 128)
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with an optional time-to-live.
//
// Get reports a miss with hit=false and a nil error. A zero ttl in Set means
// the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys for the cached artifact kinds.
type Keyer interface {
	// IconKey identifies a rasterized icon.
	IconKey(id, color string, size int) string

	// RenderKey identifies an export of a board payload.
	RenderKey(payloadHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts are the render options that change export output.
type RenderKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale"`
	Padding    float64 `json:"padding"`
	Background string  `json:"background"`
}

// DefaultKeyer hashes key inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the hashing keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// IconKey returns "icon:<sha256>".
func (DefaultKeyer) IconKey(id, color string, size int) string {
	return hashKey("icon", id, color, size)
}

// RenderKey returns "render:<sha256>".
func (DefaultKeyer) RenderKey(payloadHash string, opts RenderKeyOpts) string {
	return hashKey("render", payloadHash, opts)
}

var _ Keyer = DefaultKeyer{}
