package pager

// ReconcileStats counts what a reconcile pass did
type ReconcileStats struct {
	Kept    int
	Reused  int
	Created int
	Demoted int
	Removed int
}

// Pool owns every view of the pager, keyed by page index.
// There is never more than one view per index.
type Pool[I Index] struct {
	factory ViewFactory
	slots   map[I]*Slot[I]
}

// NewPool creates an empty pool
func NewPool[I Index](factory ViewFactory) *Pool[I] {
	return &Pool[I]{
		factory: factory,
		slots:   make(map[I]*Slot[I]),
	}
}

// Len returns the number of live slots
func (p *Pool[I]) Len() int {
	return len(p.slots)
}

// Get returns the slot for index
func (p *Pool[I]) Get(index I) (*Slot[I], bool) {
	s, ok := p.slots[index]
	return s, ok
}

// Counts returns the number of cells and placeholders
func (p *Pool[I]) Counts() (cells, placeholders int) {
	for _, s := range p.slots {
		if s.Kind == KindCell {
			cells++
		} else {
			placeholders++
		}
	}
	return cells, placeholders
}

// Reconcile maps the previous slots onto window.
//
// Slots whose index left the window become spares. Kept cells that are no longer
// visible are demoted to placeholders and their cell joins the spares. New indices
// take a spare of the right kind before anything is constructed, and cells are
// configured through configure. Spares that are left over are removed.
func (p *Pool[I]) Reconcile(window []I, visible func(I) bool, configure func(View, I)) ReconcileStats {
	var stats ReconcileStats

	inWindow := make(map[I]struct{}, len(window))
	for _, index := range window {
		inWindow[index] = struct{}{}
	}

	var spareCells, sparePlaceholders []View
	for index, s := range p.slots {
		if _, ok := inWindow[index]; ok {
			continue
		}
		if s.Kind == KindCell {
			spareCells = append(spareCells, s.View)
		} else {
			sparePlaceholders = append(sparePlaceholders, s.View)
		}
	}

	updated := make(map[I]*Slot[I], len(window))
	for _, index := range window {
		if existing, ok := p.slots[index]; ok {
			if existing.Kind == KindCell && !visible(index) {
				var v View
				if n := len(sparePlaceholders); n > 0 {
					v = sparePlaceholders[n-1]
					sparePlaceholders = sparePlaceholders[:n-1]
					stats.Reused++
				} else {
					v = p.factory.NewPlaceholder()
					stats.Created++
				}
				spareCells = append(spareCells, existing.View)
				v.SetFrame(existing.Frame)
				updated[index] = &Slot[I]{Index: index, Kind: KindPlaceholder, View: v, Frame: existing.Frame}
				stats.Demoted++
			} else {
				updated[index] = existing
				stats.Kept++
			}
			continue
		}

		if visible(index) {
			var v View
			if n := len(spareCells); n > 0 {
				v = spareCells[n-1]
				spareCells = spareCells[:n-1]
				stats.Reused++
			} else {
				v = p.factory.NewCell()
				stats.Created++
			}
			configure(v, index)
			updated[index] = &Slot[I]{Index: index, Kind: KindCell, View: v}
		} else {
			var v View
			if n := len(sparePlaceholders); n > 0 {
				v = sparePlaceholders[n-1]
				sparePlaceholders = sparePlaceholders[:n-1]
				stats.Reused++
			} else {
				v = p.factory.NewPlaceholder()
				stats.Created++
			}
			updated[index] = &Slot[I]{Index: index, Kind: KindPlaceholder, View: v}
		}
	}

	for _, v := range spareCells {
		p.factory.Remove(v)
		stats.Removed++
	}
	for _, v := range sparePlaceholders {
		p.factory.Remove(v)
		stats.Removed++
	}

	p.slots = updated
	return stats
}

// Promote replaces the placeholder at index with a freshly configured cell.
// It reports false when there is no placeholder to replace.
func (p *Pool[I]) Promote(index I, configure func(View, I)) bool {
	s, ok := p.slots[index]
	if !ok || s.Kind != KindPlaceholder {
		return false
	}
	cell := p.factory.NewCell()
	cell.SetFrame(s.Frame)
	configure(cell, index)
	p.factory.Remove(s.View)
	p.slots[index] = &Slot[I]{Index: index, Kind: KindCell, View: cell, Frame: s.Frame}
	return true
}

// Place sets the frame of every slot from its position in window
func (p *Pool[I]) Place(window []I, width float64) {
	for pos, index := range window {
		s, ok := p.slots[index]
		if !ok {
			continue
		}
		s.Frame = Frame{X: width * float64(pos), Width: width}
		s.View.SetFrame(s.Frame)
	}
}

// EachCell calls fn for every materialized cell
func (p *Pool[I]) EachCell(fn func(index I, v View)) {
	for index, s := range p.slots {
		if s.Kind == KindCell {
			fn(index, s.View)
		}
	}
}

// Ordered returns copies of the slots in window order
func (p *Pool[I]) Ordered(window []I) []Slot[I] {
	out := make([]Slot[I], 0, len(window))
	for _, index := range window {
		if s, ok := p.slots[index]; ok {
			out = append(out, *s)
		}
	}
	return out
}

// Clear removes every view
func (p *Pool[I]) Clear() {
	for _, s := range p.slots {
		p.factory.Remove(s.View)
	}
	p.slots = make(map[I]*Slot[I])
}
