package controller

import (
	"context"

	"github.com/matzehuels/whiteboard/pkg/board"
	"github.com/matzehuels/whiteboard/pkg/element"
)

// IconResolver renders an icon in a color to an image data URI.
type IconResolver interface {
	ResolveIcon(ctx context.Context, id, color string) (string, error)
}

// HydrateImages starts one background resolution per icon image that still
// lacks its bitmap and returns how many were started. Images with a pending
// resolution are skipped. Results arrive on Hydrations and take effect only
// through ApplyHydration, so the board is never touched off the event loop.
//
// A result that cannot be delivered before ctx ends is abandoned and its
// image is re-armed by the next HydrateImages or ApplyHydration. Callers
// must drain Hydrations or pass a ctx that ends.
func (c *Controller) HydrateImages(ctx context.Context) int {
	if c.icons == nil {
		return 0
	}
	c.rearmDropped()
	started := 0
	for _, img := range c.board.PendingImages() {
		if !img.BeginHydration() {
			continue
		}
		started++
		id, iconID, color := img.ID(), img.IconID, img.IconColor
		go func() {
			dataURL, err := c.icons.ResolveIcon(ctx, iconID, color)
			select {
			case c.hydrations <- board.Hydration{ID: id, DataURL: dataURL, Err: err}:
			case <-ctx.Done():
				c.mu.Lock()
				c.dropped = append(c.dropped, id)
				c.mu.Unlock()
			}
		}()
	}
	if started > 0 {
		c.logger.Debug("hydrating icons", "count", started)
	}
	return started
}

// Hydrations delivers the outcome of each resolution started by
// HydrateImages.
func (c *Controller) Hydrations() <-chan board.Hydration { return c.hydrations }

// ApplyHydration stores a resolved bitmap on its image if the image is still
// on the board. A failed resolution re-arms the image for a later attempt.
func (c *Controller) ApplyHydration(h board.Hydration) bool {
	c.rearmDropped()
	ok := c.board.ApplyHydration(h)
	if h.Err != nil {
		c.logger.Debug("icon hydration failed", "id", h.ID, "err", h.Err)
	}
	return ok
}

// rearmDropped clears the pending flag of images whose result was abandoned.
func (c *Controller) rearmDropped() {
	c.mu.Lock()
	ids := c.dropped
	c.dropped = nil
	c.mu.Unlock()
	for _, id := range ids {
		e, ok := c.board.Get(id)
		if !ok {
			continue
		}
		if img, ok := e.(*element.Image); ok && img.Hydrating() {
			img.CompleteHydration("")
		}
	}
	if len(ids) > 0 {
		c.logger.Debug("re-armed abandoned icon hydrations", "count", len(ids))
	}
}

// WaitHydrations applies results until every started resolution is done or
// ctx ends. It is for batch callers such as exporters that have no event
// loop of their own.
func (c *Controller) WaitHydrations(ctx context.Context, n int) error {
	for ; n > 0; n-- {
		select {
		case h := <-c.hydrations:
			c.ApplyHydration(h)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
