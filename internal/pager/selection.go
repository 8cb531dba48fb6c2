package pager

import "math"

// updateSelection derives the selection from the current offset.
//
// Unless forced it only reacts once the offset is a full page away from the
// selected page. The page under the rounded offset is committed only if it is
// inside the window and agrees with any pending navigation target; otherwise the
// selection is left for a later pass.
func (p *Pager[I]) updateSelection(force bool) {
	width := p.vp.Width()
	if width <= 0 {
		return
	}
	offset := p.vp.Offset()
	selectedOffset := p.OffsetFor(p.selected)
	if !force && offset > selectedOffset-width && offset < selectedOffset+width {
		return
	}
	pos := int(math.Round(offset / width))
	if pos < 0 || pos >= len(p.window) {
		return
	}
	candidate := p.window[pos]
	if p.hasPending && p.pending != candidate {
		return
	}
	if candidate != p.selected {
		p.log.Printf("Changing page from %d to %d with offset=%.2f, pending=%v, force=%v",
			p.selected, candidate, offset/width, p.hasPending, force)
	}
	p.hasPending = false
	p.setSelected(candidate)
}

// ensurePaging snaps the offset back onto the selected page when an animation or
// gesture left it slightly off
func (p *Pager[I]) ensurePaging() {
	target := p.OffsetFor(p.selected)
	if math.Abs(p.vp.Offset()-target) > p.pagingTolerance {
		p.log.Printf("Fixed paging from %.2f to %.2f", p.vp.Offset(), target)
		p.vp.SetOffset(target)
	}
}
