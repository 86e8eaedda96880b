package icon

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/whiteboard/pkg/cache"
	"github.com/matzehuels/whiteboard/pkg/observability"
)

// CacheTTL bounds how long a rasterized icon stays cached.
const CacheTTL = 30 * 24 * time.Hour

// CachedResolver memoizes a Rasterizer in a cache. Cache failures degrade to
// rasterizing; they never fail a resolution.
type CachedResolver struct {
	raster *Rasterizer
	cache  cache.Cache
	keys   cache.Keyer
	logger *log.Logger
}

// NewCachedResolver wraps r. A nil keys uses the default keyer.
func NewCachedResolver(r *Rasterizer, c cache.Cache, keys cache.Keyer) *CachedResolver {
	if keys == nil {
		keys = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &CachedResolver{raster: r, cache: c, keys: keys, logger: log.Default()}
}

// WithLogger sets the logger used for cache failures.
func (r *CachedResolver) WithLogger(l *log.Logger) *CachedResolver {
	r.logger = l
	return r
}

func (r *CachedResolver) ResolveIcon(ctx context.Context, id, color string) (string, error) {
	key := r.keys.IconKey(id, color, r.raster.Size())
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("icon cache read failed", "icon", id, "err", err)
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, "icon")
		return string(data), nil
	}
	observability.Cache().OnCacheMiss(ctx, "icon")

	uri, err := r.raster.ResolveIcon(ctx, id, color)
	if err != nil {
		return "", err
	}
	if err := r.cache.Set(ctx, key, []byte(uri), CacheTTL); err != nil {
		r.logger.Warn("icon cache write failed", "icon", id, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "icon", len(uri))
	}
	return uri, nil
}
