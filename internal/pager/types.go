package pager

import "errors"

// Index is the page identifier type. Pages are ordered and have unit stride.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Construction errors
var (
	ErrInvalidBuffer = errors.New("buffer size must be at least 1")
	ErrNilViewport   = errors.New("viewport is nil")
	ErrNilFactory    = errors.New("view factory is nil")
)

// SlotKind tells whether a slot holds real content or a stand-in
type SlotKind int

const (
	KindPlaceholder SlotKind = iota
	KindCell
)

func (k SlotKind) String() string {
	if k == KindCell {
		return "cell"
	}
	return "placeholder"
}

// Frame is the horizontal geometry of a slot in content coordinates
type Frame struct {
	X     float64
	Width float64
}

// View is anything the pool can position inside the viewport
type View interface {
	SetFrame(f Frame)
}

// ViewFactory constructs and detaches views owned by the pool
type ViewFactory interface {
	NewCell() View
	NewPlaceholder() View
	// Remove detaches a view that the pool no longer uses
	Remove(v View)
}

// ContentProvider populates a materialized cell for a page
type ContentProvider[I Index] interface {
	Configure(cell View, index I)
}

// ProviderFunc adapts a plain function to ContentProvider
type ProviderFunc[I Index] func(cell View, index I)

// Configure calls f(cell, index)
func (f ProviderFunc[I]) Configure(cell View, index I) { f(cell, index) }

// Animation is an in-flight offset transition.
// Stop is synchronous and idempotent; once it returns the completion never runs.
type Animation interface {
	Stop()
}

// Viewport is the scrollable surface the pager drives
type Viewport interface {
	Width() float64
	Offset() float64
	SetOffset(x float64)
	SetContentWidth(w float64)
	IsDragging() bool
	IsDecelerating() bool
	// AnimateOffset moves the offset to `to` and calls done when it arrives
	AnimateOffset(to float64, done func()) Animation
}

// Mirrorer is implemented by viewports that can flip their content for right-to-left layouts
type Mirrorer interface {
	SetMirrored(mirrored bool)
}

// Scheduler runs functions on a later turn of the event loop
type Scheduler interface {
	Defer(fn func())
}

// Logger is the observability sink. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// Slot is the view backing one index of the window
type Slot[I Index] struct {
	Index I
	Kind  SlotKind
	View  View
	Frame Frame
}

// Snapshot is a read-only copy of the pager state for status displays and tests
type Snapshot[I Index] struct {
	Selected     I
	Pending      I
	HasPending   bool
	Center       I
	Window       []I
	Cells        int
	Placeholders int
	Animating    bool
}
