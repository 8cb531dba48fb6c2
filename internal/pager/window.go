package pager

// ComputeWindow returns the indices that should own a slot.
//
// Without a pending target the window is center-buffer ... center+buffer. With a
// pending target on either side, the block around center keeps buffer pages on the
// far side and the target gets buffer-1 pages beyond it, so both ends of a
// transition are materialized and the length stays 2*buffer+1.
func ComputeWindow[I Index](center I, pending I, hasPending bool, buffer int) []I {
	if buffer < 1 {
		return []I{center}
	}
	b := I(buffer)
	pages := make([]I, 0, 2*buffer+1)
	switch {
	case !hasPending || pending == center:
		pages = appendRange(pages, center-b, center+b)
	case pending < center:
		pages = appendRange(pages, pending-b+1, pending)
		pages = appendRange(pages, center, center+b)
	default:
		pages = appendRange(pages, center-b, center)
		pages = appendRange(pages, pending, pending+b-1)
	}
	return pages
}

// appendRange appends lo..hi inclusive
func appendRange[I Index](pages []I, lo, hi I) []I {
	for i := lo; i <= hi; i++ {
		pages = append(pages, i)
	}
	return pages
}

// positionOf returns the position of index in window, or -1
func positionOf[I Index](window []I, index I) int {
	for pos, v := range window {
		if v == index {
			return pos
		}
	}
	return -1
}
