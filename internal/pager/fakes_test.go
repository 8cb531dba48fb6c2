package pager

import "fmt"

// fakeViewport is an in-memory viewport whose animations finish only when told to
type fakeViewport struct {
	width        float64
	offset       float64
	contentWidth float64
	dragging     bool
	decelerating bool
	mirrored     bool
	anims        []*fakeAnimation
}

type fakeAnimation struct {
	vp      *fakeViewport
	to      float64
	done    func()
	stopped bool
	ended   bool
}

func (a *fakeAnimation) Stop() {
	a.stopped = true
}

// finish moves the offset to the target and fires the completion unless stopped
func (a *fakeAnimation) finish() {
	if a.stopped || a.ended {
		return
	}
	a.ended = true
	a.vp.offset = a.to
	a.done()
}

func (v *fakeViewport) Width() float64 { return v.width }
func (v *fakeViewport) Offset() float64 { return v.offset }
func (v *fakeViewport) SetOffset(x float64) { v.offset = x }
func (v *fakeViewport) SetContentWidth(w float64) { v.contentWidth = w }
func (v *fakeViewport) IsDragging() bool { return v.dragging }
func (v *fakeViewport) IsDecelerating() bool { return v.decelerating }
func (v *fakeViewport) SetMirrored(m bool) { v.mirrored = m }

func (v *fakeViewport) AnimateOffset(to float64, done func()) Animation {
	a := &fakeAnimation{vp: v, to: to, done: done}
	v.anims = append(v.anims, a)
	return a
}

func (v *fakeViewport) lastAnim() *fakeAnimation {
	if len(v.anims) == 0 {
		return nil
	}
	return v.anims[len(v.anims)-1]
}

// fakeView records what the pool did to it
type fakeView struct {
	id         int
	kind       SlotKind
	frame      Frame
	configured []int
	removed    bool
}

func (v *fakeView) SetFrame(f Frame) { v.frame = f }

func (v *fakeView) String() string {
	return fmt.Sprintf("%s#%d", v.kind, v.id)
}

type fakeFactory struct {
	nextID       int
	cells        int
	placeholders int
	removed      int
	live         map[*fakeView]bool
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{live: make(map[*fakeView]bool)}
}

func (f *fakeFactory) NewCell() View {
	f.nextID++
	f.cells++
	v := &fakeView{id: f.nextID, kind: KindCell}
	f.live[v] = true
	return v
}

func (f *fakeFactory) NewPlaceholder() View {
	f.nextID++
	f.placeholders++
	v := &fakeView{id: f.nextID, kind: KindPlaceholder}
	f.live[v] = true
	return v
}

func (f *fakeFactory) Remove(v View) {
	fv := v.(*fakeView)
	fv.removed = true
	delete(f.live, fv)
	f.removed++
}

func (f *fakeFactory) constructed() int {
	return f.cells + f.placeholders
}

// configureRecorder is a provider that remembers every page it configured
func configureRecorder(seen *[]int) ContentProvider[int] {
	return ProviderFunc[int](func(cell View, index int) {
		fv := cell.(*fakeView)
		fv.configured = append(fv.configured, index)
		*seen = append(*seen, index)
	})
}

// manualScheduler queues deferred work until flush is called
type manualScheduler struct {
	queue []func()
}

func (s *manualScheduler) Defer(fn func()) {
	s.queue = append(s.queue, fn)
}

// take removes the queued work without running it
func (s *manualScheduler) take() []func() {
	q := s.queue
	s.queue = nil
	return q
}

func (s *manualScheduler) flush() {
	for len(s.queue) > 0 {
		q := s.queue
		s.queue = nil
		for _, fn := range q {
			fn()
		}
	}
}

type harness struct {
	vp      *fakeViewport
	factory *fakeFactory
	sched   *manualScheduler
	pager   *Pager[int]
	changes []int
	seen    []int
}

func newHarness(width float64, selected int, opts ...Option) *harness {
	h := &harness{
		vp:      &fakeViewport{width: width},
		factory: newFakeFactory(),
		sched:   &manualScheduler{},
	}
	opts = append([]Option{WithScheduler(h.sched)}, opts...)
	p, err := New[int](h.vp, h.factory, configureRecorder(&h.seen), selected, opts...)
	if err != nil {
		panic(err)
	}
	p.OnChange(func(v int) { h.changes = append(h.changes, v) })
	h.pager = p
	p.Layout()
	return h
}
