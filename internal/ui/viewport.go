package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"pagescroll/internal/pager"
)

const (
	// flickVelocity is the release speed, in columns per second, that turns a page
	flickVelocity = 30.0
	// a drag that paused this long before release has no momentum
	velocityWindow = 120 * time.Millisecond
	settleDistance = 0.05
	settleVelocity = 1.0
)

// FrameMsg advances running animations by one frame
type FrameMsg struct{}

// TermViewport is a horizontally scrolling strip measured in terminal columns.
// Offsets are fractional so springs can move smoothly; rendering rounds them.
type TermViewport struct {
	width        float64
	offset       float64
	contentWidth float64
	mirrored     bool

	spring harmonica.Spring
	frame  time.Duration

	anim *offsetAnimation

	dragging bool
	lastX    int
	lastMove time.Time
	velocity float64 // offset units per second

	decelerating  bool
	decelTarget   float64
	decelVelocity float64
	onDecelerated func()

	ticking bool
	now     func() time.Time
}

// offsetAnimation is a programmatic move to target
type offsetAnimation struct {
	vp       *TermViewport
	target   float64
	velocity float64
	done     func()
}

// Stop cancels the animation; its completion will not run
func (a *offsetAnimation) Stop() {
	if a.vp.anim == a {
		a.vp.anim = nil
	}
}

// NewTermViewport creates a viewport whose animations run at fps frames per second
func NewTermViewport(fps int, frequency, damping float64) *TermViewport {
	if fps < 1 {
		fps = 60
	}
	return &TermViewport{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		frame:  time.Second / time.Duration(fps),
		now:    time.Now,
	}
}

// SetSize sets the visible width in columns
func (v *TermViewport) SetSize(width int) {
	if width < 0 {
		width = 0
	}
	v.width = float64(width)
}

// OnDecelerated registers the callback run when a released drag comes to rest
func (v *TermViewport) OnDecelerated(fn func()) {
	v.onDecelerated = fn
}

func (v *TermViewport) Width() float64            { return v.width }
func (v *TermViewport) Offset() float64           { return v.offset }
func (v *TermViewport) SetOffset(x float64)       { v.offset = x }
func (v *TermViewport) ContentWidth() float64     { return v.contentWidth }
func (v *TermViewport) SetContentWidth(w float64) { v.contentWidth = w }
func (v *TermViewport) IsDragging() bool          { return v.dragging }
func (v *TermViewport) IsDecelerating() bool      { return v.decelerating }
func (v *TermViewport) SetMirrored(m bool)        { v.mirrored = m }
func (v *TermViewport) Mirrored() bool            { return v.mirrored }

// Animating reports whether a programmatic animation is running
func (v *TermViewport) Animating() bool { return v.anim != nil }

// AnimateOffset springs the offset to `to`. It replaces any running animation
// and stops a deceleration in progress.
func (v *TermViewport) AnimateOffset(to float64, done func()) pager.Animation {
	v.decelerating = false
	a := &offsetAnimation{vp: v, target: to, done: done}
	v.anim = a
	return a
}

// StartDrag begins a drag gesture at screen column x
func (v *TermViewport) StartDrag(x int) {
	v.anim = nil
	v.decelerating = false
	v.dragging = true
	v.lastX = x
	v.lastMove = v.now()
	v.velocity = 0
}

// DragTo follows the pointer to column x. It reports whether the offset moved.
func (v *TermViewport) DragTo(x int) bool {
	if !v.dragging || x == v.lastX {
		return false
	}
	delta := float64(x - v.lastX)
	if !v.mirrored {
		// content follows the pointer, so the offset moves the other way
		delta = -delta
	}
	now := v.now()
	if dt := now.Sub(v.lastMove).Seconds(); dt > 0 {
		v.velocity = delta / dt
	}
	v.lastX = x
	v.lastMove = now

	before := v.offset
	v.offset = v.clamp(v.offset + delta)
	return v.offset != before
}

// EndDrag releases the drag. The offset heads for the nearest page, or the next
// page in the direction of a flick. It reports whether the viewport will decelerate.
func (v *TermViewport) EndDrag() bool {
	if !v.dragging {
		return false
	}
	v.dragging = false
	if v.width <= 0 {
		return false
	}
	velocity := v.velocity
	if v.now().Sub(v.lastMove) > velocityWindow {
		velocity = 0
	}

	page := v.offset / v.width
	switch {
	case velocity > flickVelocity:
		page = math.Ceil(page)
	case velocity < -flickVelocity:
		page = math.Floor(page)
	default:
		page = math.Round(page)
	}
	target := v.clamp(page * v.width)
	if math.Abs(target-v.offset) < settleDistance {
		v.offset = target
		return false
	}

	v.decelerating = true
	v.decelTarget = target
	v.decelVelocity = velocity
	return true
}

// Tick schedules the next frame while something is moving
func (v *TermViewport) Tick() tea.Cmd {
	if v.ticking || (v.anim == nil && !v.decelerating) {
		return nil
	}
	v.ticking = true
	return tea.Tick(v.frame, func(time.Time) tea.Msg { return FrameMsg{} })
}

// Step advances one frame. It reports whether the offset changed.
func (v *TermViewport) Step() bool {
	v.ticking = false
	switch {
	case v.anim != nil:
		a := v.anim
		v.offset, a.velocity = v.spring.Update(v.offset, a.velocity, a.target)
		if settled(v.offset, a.velocity, a.target) {
			v.offset = a.target
			v.anim = nil
			if a.done != nil {
				a.done()
			}
		}
		return true

	case v.decelerating:
		v.offset, v.decelVelocity = v.spring.Update(v.offset, v.decelVelocity, v.decelTarget)
		if settled(v.offset, v.decelVelocity, v.decelTarget) {
			v.offset = v.decelTarget
			v.decelerating = false
			if v.onDecelerated != nil {
				v.onDecelerated()
			}
		}
		return true
	}
	return false
}

func (v *TermViewport) clamp(x float64) float64 {
	limit := math.Max(0, v.contentWidth-v.width)
	return math.Min(math.Max(x, 0), limit)
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settleDistance && math.Abs(vel) < settleVelocity
}
