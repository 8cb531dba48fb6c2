package ui

import (
	"strconv"

	"pagescroll/internal/pager"
	"pagescroll/internal/ui/views"
)

// PageCell is a materialized page
type PageCell struct {
	frame    pager.Frame
	Label    string
	Value    int
	detached bool
}

func (c *PageCell) SetFrame(f pager.Frame) { c.frame = f }

// Placeholder stands in for a page that is not on screen
type Placeholder struct {
	frame    pager.Frame
	detached bool
}

func (p *Placeholder) SetFrame(f pager.Frame) { p.frame = f }

// pageFactory builds the views the pager positions
type pageFactory struct {
	live    int
	created int
}

func (f *pageFactory) NewCell() pager.View {
	f.live++
	f.created++
	return &PageCell{}
}

func (f *pageFactory) NewPlaceholder() pager.View {
	f.live++
	f.created++
	return &Placeholder{}
}

func (f *pageFactory) Remove(v pager.View) {
	switch view := v.(type) {
	case *PageCell:
		view.detached = true
	case *Placeholder:
		view.detached = true
	}
	f.live--
}

// DemoContent numbers each page with its index plus Shift
type DemoContent struct {
	Shift int
}

// Configure implements pager.ContentProvider
func (d DemoContent) Configure(cell pager.View, index int) {
	c, ok := cell.(*PageCell)
	if !ok {
		return
	}
	c.Value = index + d.Shift
	c.Label = strconv.Itoa(c.Value)
}

// pageBlocks converts the pager's slots into render blocks
func pageBlocks(slots []pager.Slot[int]) []views.PageBlock {
	blocks := make([]views.PageBlock, 0, len(slots))
	for _, s := range slots {
		b := views.PageBlock{X: s.Frame.X, Width: s.Frame.Width, Placeholder: s.Kind == pager.KindPlaceholder}
		if c, ok := s.View.(*PageCell); ok {
			b.Label = c.Label
			b.Value = c.Value
		}
		blocks = append(blocks, b)
	}
	return blocks
}
