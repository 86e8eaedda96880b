package controller

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/whiteboard/pkg/board"
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
	"github.com/matzehuels/whiteboard/pkg/viewport"
)

const (
	// SnapGrid is the world grid spacing used for snapping.
	SnapGrid = 40.0
	// SnapThreshold is the snap distance in screen pixels.
	SnapThreshold = 8.0
	// HandleRadius is the resize handle hit radius in screen pixels.
	HandleRadius = 10.0
)

// Mode is the interaction state.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModePanning   Mode = "panning"
	ModeMoving    Mode = "moving"
	ModeResizing  Mode = "resizing"
	ModeBoxSelect Mode = "box-select"
)

// Option configures a Controller.
type Option func(*Controller)

// WithIDGenerator replaces the UUID generator used for new and pasted
// elements.
func WithIDGenerator(fn func() string) Option { return func(c *Controller) { c.newID = fn } }

// WithLogger enables debug traces of state transitions.
func WithLogger(l *log.Logger) Option { return func(c *Controller) { c.logger = l } }

// WithSnapping sets whether snapping starts enabled. It is on by default.
func WithSnapping(enabled bool) Option { return func(c *Controller) { c.snapping = enabled } }

// WithViewport sets the initial viewport.
func WithViewport(v viewport.Viewport) Option {
	return func(c *Controller) { c.view.Set(v) }
}

// WithIconResolver sets the resolver used by HydrateImages.
func WithIconResolver(r IconResolver) Option { return func(c *Controller) { c.icons = r } }

type boundsSnapshot struct {
	id     string
	bounds geom.Rect
}

type activeResize struct {
	id      string
	handle  geom.Handle
	initial geom.Rect
}

// Controller is the interaction engine for one board.
type Controller struct {
	board    *board.Board
	view     *viewport.Cell
	selected map[string]bool

	mode           Mode
	dragging       bool
	dragStartWorld geom.Point
	lastScreen     geom.Point
	selectionRect  *geom.Rect
	resize         *activeResize
	movingInitial  []boundsSnapshot

	snapping bool
	newID    func() string
	logger   *log.Logger

	icons      IconResolver
	hydrations chan board.Hydration

	mu      sync.Mutex
	dropped []string // ids whose result was abandoned when ctx ended
}

// New returns a controller for b. A nil board starts empty. The selection
// set is initialized from the elements' Selected flags.
func New(b *board.Board, opts ...Option) *Controller {
	if b == nil {
		b = board.New()
	}
	c := &Controller{
		board:      b,
		view:       viewport.NewCell(viewport.Default()),
		selected:   b.SelectedIDs(),
		mode:       ModeIdle,
		snapping:   true,
		newID:      uuid.NewString,
		logger:     log.New(io.Discard),
		hydrations: make(chan board.Hydration, 16),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Board returns the controlled board. Its elements must not be mutated by
// other code while a drag is in progress.
func (c *Controller) Board() *board.Board { return c.board }

// Viewport returns the observable viewport.
func (c *Controller) Viewport() *viewport.Cell { return c.view }

// Mode returns the current interaction state.
func (c *Controller) Mode() Mode { return c.mode }

// SetSnappingEnabled turns grid and neighbor snapping on or off.
func (c *Controller) SetSnappingEnabled(enabled bool) { c.snapping = enabled }

// SnappingEnabled reports whether snapping is on.
func (c *Controller) SnappingEnabled() bool { return c.snapping }

// ToWorld converts a screen point with the current viewport.
func (c *Controller) ToWorld(screen geom.Point) geom.Point { return c.view.Get().ToWorld(screen) }

// ToScreen converts a world point with the current viewport.
func (c *Controller) ToScreen(world geom.Point) geom.Point { return c.view.Get().ToScreen(world) }

// Load replaces the board content and viewport, resets the interaction state
// and rebuilds the selection set from the elements' flags.
func (c *Controller) Load(elements []element.Element, v viewport.Viewport) {
	c.reset()
	c.board.SetElements(elements)
	c.selected = c.board.SelectedIDs()
	c.view.Set(v)
}

func (c *Controller) setMode(m Mode) {
	if c.mode != m {
		c.logger.Debug("mode", "from", c.mode, "to", m)
	}
	c.mode = m
}

func (c *Controller) reset() {
	c.setMode(ModeIdle)
	c.dragging = false
	c.dragStartWorld = geom.Point{}
	c.lastScreen = geom.Point{}
	c.selectionRect = nil
	c.resize = nil
	c.movingInitial = nil
}

func (c *Controller) snapper() geom.Snapper {
	return geom.Snapper{
		Grid:      SnapGrid,
		Threshold: c.view.Get().WorldLength(SnapThreshold),
	}
}
