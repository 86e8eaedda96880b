package viewport

import "sync"

// Cell holds the current viewport and notifies subscribers on change. It is
// safe for concurrent use; subscribers run on the goroutine that changed the
// value.
type Cell struct {
	mu     sync.Mutex
	value  Viewport
	nextID int
	subs   map[int]func(Viewport)
}

// NewCell returns a cell holding v.
func NewCell(v Viewport) *Cell {
	return &Cell{value: v.Normalize(), subs: make(map[int]func(Viewport))}
}

// Get returns the current viewport.
func (c *Cell) Get() Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores v and notifies subscribers if it differs from the current value.
func (c *Cell) Set(v Viewport) {
	c.Update(func(Viewport) Viewport { return v })
}

// Update applies fn to the current value.
func (c *Cell) Update(fn func(Viewport) Viewport) {
	c.mu.Lock()
	next := fn(c.value).Normalize()
	if next == c.value {
		c.mu.Unlock()
		return
	}
	c.value = next
	subs := make([]func(Viewport), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers fn, calls it once with the current value and returns
// a function that removes the subscription.
func (c *Cell) Subscribe(fn func(Viewport)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	v := c.value
	c.mu.Unlock()

	fn(v)
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
