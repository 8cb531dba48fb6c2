package pager

import "math"

// recenter re-anchors the window on the selection once it has drifted buffer
// pages away from the center, or whenever force is set and the two differ.
//
// The live offset is shifted by exactly the distance the selected page moves in
// the new window before any view is reconciled, so nothing on screen jumps.
func (p *Pager[I]) recenter(force bool) {
	width := p.vp.Width()
	if width <= 0 {
		return
	}
	centerOffset := p.OffsetFor(p.center)
	selectedOffset := p.OffsetFor(p.selected)
	drift := math.Abs(centerOffset-selectedOffset) / width
	overdue := !p.vp.IsDecelerating() && drift >= float64(p.buffer)
	if !overdue && !(force && p.center != p.selected) {
		return
	}

	p.log.Printf("Recentered from %d to %d", p.center, p.selected)
	p.center = p.selected
	p.updateWindow()
	newOffset := p.OffsetFor(p.selected)
	p.vp.SetOffset(p.vp.Offset() + (newOffset - selectedOffset))
	p.reconcile()
}
