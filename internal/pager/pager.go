package pager

import (
	"io"
	"log"
)

// Default tuning values
const (
	DefaultBufferSize      = 2
	DefaultEdgeTolerance   = 0.5
	DefaultPagingTolerance = 1.0
)

type settings struct {
	buffer          int
	edgeTolerance   float64
	pagingTolerance float64
	mirrored        bool
	scheduler       Scheduler
	logger          Logger
}

// Option configures a Pager
type Option func(*settings)

// WithBufferSize sets how many pages are kept on each side of the anchor
func WithBufferSize(n int) Option {
	return func(s *settings) { s.buffer = n }
}

// WithEdgeTolerance sets how far a page must reach into the viewport to count as visible
func WithEdgeTolerance(eps float64) Option {
	return func(s *settings) { s.edgeTolerance = eps }
}

// WithPagingTolerance sets how far the offset may drift from a page boundary before it is snapped
func WithPagingTolerance(tol float64) Option {
	return func(s *settings) { s.pagingTolerance = tol }
}

// WithMirrored lays the pages out right-to-left
func WithMirrored(mirrored bool) Option {
	return func(s *settings) { s.mirrored = mirrored }
}

// WithScheduler sets where selection notifications are delivered.
// Without one they are delivered synchronously.
func WithScheduler(sched Scheduler) Option {
	return func(s *settings) { s.scheduler = sched }
}

// WithLogger sets the logger
func WithLogger(l Logger) Option {
	return func(s *settings) { s.logger = l }
}

type immediate struct{}

func (immediate) Defer(fn func()) { fn() }

// Pager virtualizes an unbounded sequence of pages inside a single viewport.
// It is not safe for concurrent use; every method must be called from the
// event loop that owns the viewport.
type Pager[I Index] struct {
	vp       Viewport
	pool     *Pool[I]
	provider ContentProvider[I]
	sched    Scheduler
	log      Logger

	buffer          int
	edgeTolerance   float64
	pagingTolerance float64
	mirrored        bool

	selected   I
	pending    I
	hasPending bool
	center     I
	window     []I

	lastWidth     float64
	forceRelayout bool

	anim   Animation
	navSeq uint64

	onChange     func(I)
	lastNotified I
	notifySeq    uint64
	deliveredSeq uint64
	closed       bool
}

// New creates a pager showing selected
func New[I Index](vp Viewport, factory ViewFactory, provider ContentProvider[I], selected I, opts ...Option) (*Pager[I], error) {
	s := settings{
		buffer:          DefaultBufferSize,
		edgeTolerance:   DefaultEdgeTolerance,
		pagingTolerance: DefaultPagingTolerance,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if vp == nil {
		return nil, ErrNilViewport
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	if s.buffer < 1 {
		return nil, ErrInvalidBuffer
	}
	if s.scheduler == nil {
		s.scheduler = immediate{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if provider == nil {
		provider = ProviderFunc[I](func(View, I) {})
	}

	p := &Pager[I]{
		vp:              vp,
		pool:            NewPool[I](factory),
		provider:        provider,
		sched:           s.scheduler,
		log:             s.logger,
		buffer:          s.buffer,
		edgeTolerance:   s.edgeTolerance,
		pagingTolerance: s.pagingTolerance,
		mirrored:        s.mirrored,
		selected:        selected,
		center:          selected,
		lastNotified:    selected,
	}
	p.updateWindow()
	p.vp.SetOffset(p.OffsetFor(p.selected))
	p.reconcile()
	return p, nil
}

// OnChange registers the observer of the selected index.
// It is called once per actual change, always through the scheduler.
func (p *Pager[I]) OnChange(fn func(I)) {
	p.onChange = fn
}

// Selected returns the committed selection
func (p *Pager[I]) Selected() I { return p.selected }

// Pending returns the target of the in-flight navigation
func (p *Pager[I]) Pending() (I, bool) { return p.pending, p.hasPending }

// Center returns the anchor of the window
func (p *Pager[I]) Center() I { return p.center }

// BufferSize returns the window radius
func (p *Pager[I]) BufferSize() int { return p.buffer }

// Mirrored reports whether pages are laid out right-to-left
func (p *Pager[I]) Mirrored() bool { return p.mirrored }

// Window returns a copy of the current window
func (p *Pager[I]) Window() []I {
	out := make([]I, len(p.window))
	copy(out, p.window)
	return out
}

// Slots returns the live slots in window order
func (p *Pager[I]) Slots() []Slot[I] {
	return p.pool.Ordered(p.window)
}

// Snapshot returns a copy of the pager state
func (p *Pager[I]) Snapshot() Snapshot[I] {
	cells, placeholders := p.pool.Counts()
	return Snapshot[I]{
		Selected:     p.selected,
		Pending:      p.pending,
		HasPending:   p.hasPending,
		Center:       p.center,
		Window:       p.Window(),
		Cells:        cells,
		Placeholders: placeholders,
		Animating:    p.anim != nil,
	}
}

// OffsetFor returns the content offset of index in the current window.
// Indices outside the window map to 0.
func (p *Pager[I]) OffsetFor(index I) float64 {
	pos := positionOf(p.window, index)
	if pos < 0 {
		pos = 0
	}
	return p.vp.Width() * float64(pos)
}

// SetContentProvider replaces the provider and reconfigures every materialized cell
func (p *Pager[I]) SetContentProvider(provider ContentProvider[I]) {
	if provider == nil {
		return
	}
	p.provider = provider
	p.pool.EachCell(func(index I, v View) {
		p.provider.Configure(v, index)
	})
}

// SetMirrored switches between left-to-right and right-to-left layout
func (p *Pager[I]) SetMirrored(mirrored bool) {
	if p.mirrored == mirrored {
		return
	}
	p.mirrored = mirrored
	p.forceRelayout = true
}

// BeginDrag is called when the user starts dragging.
// A running navigation is abandoned; a deceleration in progress is re-anchored first.
func (p *Pager[I]) BeginDrag() {
	if p.closed {
		return
	}
	if p.vp.IsDecelerating() {
		p.recenter(true)
	}
	if p.anim != nil {
		p.cancelNavigation()
		p.log.Printf("Drag interrupted navigation to %d", p.pending)
	}
	if p.hasPending {
		p.hasPending = false
		p.notify(p.selected)
	}
}

// EndDrag is called when the user lifts the finger. If the viewport will not
// decelerate the gesture is settled immediately.
func (p *Pager[I]) EndDrag(decelerate bool) {
	if p.closed || decelerate {
		return
	}
	p.settle()
}

// EndDecelerating is called once the viewport has come to rest after a gesture
func (p *Pager[I]) EndDecelerating() {
	if p.closed {
		return
	}
	p.settle()
}

// Close stops any animation and removes every view
func (p *Pager[I]) Close() {
	if p.closed {
		return
	}
	p.cancelNavigation()
	p.pool.Clear()
	p.closed = true
}

// settle commits the selection under the resting offset and re-anchors the window
func (p *Pager[I]) settle() {
	p.updateSelection(true)
	p.ensurePaging()
	p.recenter(true)
}

func (p *Pager[I]) setSelected(v I) {
	if v == p.selected {
		return
	}
	p.selected = v
	p.notify(v)
}

// notify publishes v on a later turn unless observers have already been told about it.
// A notification that arrives after a newer one has been delivered is dropped.
func (p *Pager[I]) notify(v I) {
	if v == p.lastNotified {
		return
	}
	p.lastNotified = v
	p.notifySeq++
	seq := p.notifySeq
	p.sched.Defer(func() {
		if seq < p.deliveredSeq {
			return
		}
		p.deliveredSeq = seq
		if p.onChange != nil {
			p.onChange(v)
		}
	})
}

func (p *Pager[I]) updateWindow() {
	p.window = ComputeWindow(p.center, p.pending, p.hasPending, p.buffer)
}

func (p *Pager[I]) reconcile() {
	stats := p.pool.Reconcile(p.window, p.isVisible, p.provider.Configure)
	if stats.Created > 0 || stats.Removed > 0 || stats.Demoted > 0 {
		p.log.Printf("Reconciled window %v: kept=%d reused=%d created=%d demoted=%d removed=%d",
			p.window, stats.Kept, stats.Reused, stats.Created, stats.Demoted, stats.Removed)
	}
	p.forceRelayout = true
}
