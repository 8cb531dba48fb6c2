package pager

// isVisible decides whether index needs a real cell. The selection and the
// navigation target are always materialized so they never pop in mid-animation.
// Any other page must overlap the viewport by more than the edge tolerance.
func (p *Pager[I]) isVisible(index I) bool {
	if index == p.selected || (p.hasPending && index == p.pending) {
		return true
	}
	width := p.vp.Width()
	if width <= 0 {
		return false
	}
	pos := positionOf(p.window, index)
	if pos < 0 {
		return false
	}
	start := width * float64(pos)
	end := start + width
	offset := p.vp.Offset()
	lo := offset + p.edgeTolerance
	hi := offset + width - p.edgeTolerance
	return start < hi && end > lo
}

// promoteVisible swaps placeholders the viewport has scrolled over for real cells
func (p *Pager[I]) promoteVisible() {
	for _, index := range p.window {
		if !p.isVisible(index) {
			continue
		}
		if p.pool.Promote(index, p.provider.Configure) {
			p.log.Printf("Replacing placeholder for %d", index)
		}
	}
}
