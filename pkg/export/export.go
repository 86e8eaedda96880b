// Package export turns stored board documents into SVG, PNG or PDF files.
//
// An [Exporter] runs the whole path from payload bytes to output bytes:
// decode and build the elements, hydrate icon images that have no bitmap
// yet, describe the scene without selection chrome, and hand it to a sink.
// Results are cached by a hash of the payload and the render options, so an
// unchanged board is rendered once per format.
package export

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/whiteboard/pkg/board"
	"github.com/matzehuels/whiteboard/pkg/cache"
	"github.com/matzehuels/whiteboard/pkg/controller"
	pkgio "github.com/matzehuels/whiteboard/pkg/io"
	"github.com/matzehuels/whiteboard/pkg/observability"
	"github.com/matzehuels/whiteboard/pkg/render"
	"github.com/matzehuels/whiteboard/pkg/render/sink"
)

// HydrationTimeout bounds icon resolution during an export.
const HydrationTimeout = 10 * time.Second

// CacheTTL bounds how long a rendered export stays cached.
const CacheTTL = 24 * time.Hour

// Settings are the render options applied to every export.
type Settings struct {
	Scale      float64
	Padding    float64
	Background string
}

// DefaultSettings match the sink defaults.
func DefaultSettings() Settings {
	return Settings{Scale: sink.DefaultScale, Padding: sink.DefaultPadding, Background: sink.DefaultBackground}
}

func (s Settings) sinkOptions() []sink.Option {
	return []sink.Option{sink.WithScale(s.Scale), sink.WithPadding(s.Padding), sink.WithBackground(s.Background)}
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithCache caches rendered output in c under keys from k (nil for the
// default keyer).
func WithCache(c cache.Cache, k cache.Keyer) Option {
	return func(e *Exporter) {
		e.cache = c
		if k != nil {
			e.keys = k
		}
	}
}

// WithIconResolver hydrates icon images before rendering.
func WithIconResolver(r controller.IconResolver) Option {
	return func(e *Exporter) { e.icons = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option { return func(e *Exporter) { e.logger = l } }

// Exporter renders board payloads.
type Exporter struct {
	settings Settings
	cache    cache.Cache
	keys     cache.Keyer
	icons    controller.IconResolver
	logger   *log.Logger
}

// New returns an exporter using settings.
func New(settings Settings, opts ...Option) *Exporter {
	e := &Exporter{
		settings: settings,
		cache:    cache.NewNullCache(),
		keys:     cache.NewDefaultKeyer(),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders payload in format and returns the bytes and content type.
func (e *Exporter) Export(ctx context.Context, payload []byte, format string) ([]byte, string, error) {
	key := e.keys.RenderKey(cache.Hash(payload), cache.RenderKeyOpts{
		Format:     format,
		Scale:      e.settings.Scale,
		Padding:    e.settings.Padding,
		Background: e.settings.Background,
	})
	if data, hit, err := e.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "render")
		return data, sink.ContentType(format), nil
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	doc, err := pkgio.Unmarshal(payload)
	if err != nil {
		return nil, "", err
	}
	scene, err := e.Scene(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	data, contentType, err := sink.Render(ctx, format, scene, e.settings.sinkOptions()...)
	if err != nil {
		return nil, "", err
	}

	if err := e.cache.Set(ctx, key, data, CacheTTL); err != nil {
		e.logger.Warn("render cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}
	return data, contentType, nil
}

// Scene builds doc and hydrates its icons. Icons that fail to resolve are
// drawn as placeholders.
func (e *Exporter) Scene(ctx context.Context, doc pkgio.Document) (render.Scene, error) {
	elements, v, err := doc.Build()
	if err != nil {
		return render.Scene{}, err
	}
	b := board.New(elements...)
	if e.icons != nil {
		ctrl := controller.New(b, controller.WithViewport(v), controller.WithIconResolver(e.icons))
		hctx, cancel := context.WithTimeout(ctx, HydrationTimeout)
		n := ctrl.HydrateImages(hctx)
		if err := ctrl.WaitHydrations(hctx, n); err != nil {
			e.logger.Warn("icon hydration incomplete", "err", err)
		}
		cancel()
	}
	return render.NewScene(b.Elements(), render.WithoutSelection()), nil
}
