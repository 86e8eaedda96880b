package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type countingHooks struct {
	NoopStoreHooks
	NoopRenderHooks
	NoopHTTPHooks
	hits, misses, sets int
}

func (c *countingHooks) OnCacheHit(context.Context, string)      { c.hits++ }
func (c *countingHooks) OnCacheMiss(context.Context, string)     { c.misses++ }
func (c *countingHooks) OnCacheSet(context.Context, string, int) { c.sets++ }

func TestRegistryDefaults(t *testing.T) {
	Reset()
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() is not a no-op by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() is not a no-op by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() is not a no-op by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() is not a no-op by default")
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()
	ctx := context.Background()
	c := &countingHooks{}
	SetCacheHooks(c)
	SetCacheHooks(nil)

	Cache().OnCacheMiss(ctx, "icon")
	Cache().OnCacheSet(ctx, "icon", 10)
	Cache().OnCacheHit(ctx, "icon")
	if c.hits != 1 || c.misses != 1 || c.sets != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", c.hits, c.misses, c.sets)
	}
}

func TestLogHooks(t *testing.T) {
	defer Reset()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	SetAll(NewLogHooks(logger))

	ctx := context.Background()
	Store().OnSave(ctx, "memory", "b1", 42, time.Millisecond, nil)
	Render().OnRender(ctx, "svg", 3, time.Millisecond, nil)
	HTTP().OnResponse(ctx, "GET", "/api/boards", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"store save", "b1", "render", "svg", "/api/boards"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
