package pager

// Select navigates to target with an animation.
//
// Observers learn about target right away. Any running navigation is stopped and
// its completion discarded, so the latest call always wins. Selecting the current
// page, or the page already being navigated to, does nothing.
func (p *Pager[I]) Select(target I) {
	if p.closed {
		return
	}
	if p.hasPending && target == p.pending {
		return
	}
	if !p.hasPending && target == p.selected {
		return
	}

	if p.vp.Width() <= 0 {
		p.cancelNavigation()
		p.hasPending = false
		p.center = target
		p.setSelected(target)
		// observers may still hold an abandoned pending target
		p.notify(target)
		p.updateWindow()
		p.reconcile()
		return
	}

	if !p.hasPending {
		// keep the current page where it is before the window turns asymmetric
		p.recenter(true)
	}

	p.pending = target
	p.hasPending = true
	p.notify(target)
	p.cancelNavigation()
	p.updateWindow()
	p.reconcile()
	p.log.Printf("Selected %d manually", target)

	p.navSeq++
	seq := p.navSeq
	finished := false
	anim := p.vp.AnimateOffset(p.OffsetFor(target), func() {
		if seq != p.navSeq || p.closed {
			return
		}
		finished = true
		p.anim = nil
		p.finishNavigation(target)
	})
	if !finished && seq == p.navSeq {
		p.anim = anim
	}
}

// cancelNavigation stops the running animation; its completion will never run
func (p *Pager[I]) cancelNavigation() {
	p.navSeq++
	if p.anim != nil {
		p.anim.Stop()
		p.anim = nil
	}
}

// finishNavigation reconciles the end of an animation to target
func (p *Pager[I]) finishNavigation(target I) {
	p.log.Printf("Scrolling animation ended next=%d", target)
	p.updateSelection(true)
	if p.hasPending {
		// the offset did not land on target; give up on it so observers converge
		p.log.Printf("Navigation to %d did not land, keeping %d", target, p.selected)
		p.hasPending = false
		p.notify(p.selected)
	}
	p.ensurePaging()
	p.recenter(true)
}
