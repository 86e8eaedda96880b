package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event as a debug line.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("obs")}
}

func (h *LogHooks) OnLoad(_ context.Context, backend, id string, d time.Duration, err error) {
	h.logger.Debug("store load", "backend", backend, "id", id, "took", d, "err", err)
}

func (h *LogHooks) OnSave(_ context.Context, backend, id string, size int, d time.Duration, err error) {
	h.logger.Debug("store save", "backend", backend, "id", id, "bytes", size, "took", d, "err", err)
}

func (h *LogHooks) OnDelete(_ context.Context, backend, id string, err error) {
	h.logger.Debug("store delete", "backend", backend, "id", id, "err", err)
}

func (h *LogHooks) OnRender(_ context.Context, format string, primitives int, d time.Duration, err error) {
	h.logger.Debug("render", "format", format, "primitives", primitives, "took", d, "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, kind string)  { h.logger.Debug("cache hit", "kind", kind) }
func (h *LogHooks) OnCacheMiss(_ context.Context, kind string) { h.logger.Debug("cache miss", "kind", kind) }

func (h *LogHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "took", d)
}

var _ AllHooks = (*LogHooks)(nil)
