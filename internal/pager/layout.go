package pager

// Layout runs a layout pass. Call it whenever the viewport bounds change and on
// every scroll position change.
func (p *Pager[I]) Layout() {
	if p.closed {
		return
	}
	width := p.vp.Width()
	if width != p.lastWidth || p.forceRelayout {
		p.log.Printf("Relayout (forced=%v, width=%.1f)", p.forceRelayout, width)
		p.forceRelayout = false
		oldOffset := p.vp.Offset()

		p.vp.SetContentWidth(width * float64(p.pool.Len()))
		p.pool.Place(p.window, width)

		if p.lastWidth <= 0 || !p.inMotion() {
			p.vp.SetOffset(p.OffsetFor(p.selected))
		} else {
			p.vp.SetOffset(oldOffset / p.lastWidth * width)
		}
		p.lastWidth = width
	}

	p.updateSelection(false)
	p.recenter(false)
	p.promoteVisible()

	if m, ok := p.vp.(Mirrorer); ok {
		m.SetMirrored(p.mirrored)
	}
}

// inMotion reports whether something other than the pager owns the offset right now
func (p *Pager[I]) inMotion() bool {
	return p.anim != nil || p.vp.IsDragging() || p.vp.IsDecelerating()
}
