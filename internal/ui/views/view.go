package views

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
)

// PageBlock is one materialized slot in content coordinates
type PageBlock struct {
	X           float64
	Width       float64
	Placeholder bool
	Label       string
	Value       int // drives the colour
}

// StatusLine describes the pager for the status bar
type StatusLine struct {
	Selected     int
	Pending      int
	HasPending   bool
	Window       []int
	Cells        int
	Placeholders int
	Shift        int
	RightToLeft  bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Offset        float64
	ContentWidth  float64
	Mirrored      bool
	Pages         []PageBlock
	ShowStatus    bool
	Status        StatusLine
	StatusMessage string
	StatusIsError bool
	InputPrompt   string // non-empty while a text mode is active
	InputView     string
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Chrome is the number of rows used by everything except the pages
func Chrome(showStatus, inputActive bool) int {
	rows := 1 // help footer
	if showStatus {
		rows++
	}
	if inputActive {
		rows++
	}
	return rows
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return "Loading..."
	}

	inputActive := state.InputPrompt != ""
	pageHeight := state.Height - Chrome(state.ShowStatus, inputActive)
	if pageHeight < 1 {
		pageHeight = 1
	}

	rows := []string{r.RenderPages(state.Pages, state.Offset, state.ContentWidth, state.Width, pageHeight, state.Mirrored)}
	if state.ShowStatus {
		rows = append(rows, r.renderStatus(state))
	}
	if inputActive {
		rows = append(rows, r.styles.Prompt.Render(state.InputPrompt)+state.InputView)
	}
	if state.Keys != nil {
		rows = append(rows, state.HelpModel.View(state.Keys))
	} else {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

type screenBlock struct {
	x, w  int
	block PageBlock
}

// RenderPages draws the part of the content strip under the viewport.
//
// Blocks are placed at their content X relative to offset; partially visible blocks are
// cut on cell boundaries. When mirrored, both the blocks and the viewport are reflected
// inside the content width so the first page sits at the right edge.
func (r *Renderer) RenderPages(blocks []PageBlock, offset, contentWidth float64, width, height int, mirrored bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	viewLeft := offset
	if mirrored {
		viewLeft = contentWidth - offset - float64(width)
	}
	left := int(math.Round(viewLeft))

	placed := make([]screenBlock, 0, len(blocks))
	for _, b := range blocks {
		x := b.X
		if mirrored {
			x = contentWidth - b.X - b.Width
		}
		placed = append(placed, screenBlock{
			x:     int(math.Round(x)) - left,
			w:     int(math.Round(b.Width)),
			block: b,
		})
	}
	sort.Slice(placed, func(i, j int) bool { return placed[i].x < placed[j].x })

	lines := make([]strings.Builder, height)
	col := 0
	for _, p := range placed {
		lo := max(p.x, col)
		hi := min(p.x+p.w, width)
		if hi <= lo {
			continue
		}
		if lo > col {
			pad := strings.Repeat(" ", lo-col)
			for i := range lines {
				lines[i].WriteString(pad)
			}
		}
		rows := strings.Split(r.renderBlock(p.block, p.w, height), "\n")
		for i := range lines {
			row := ""
			if i < len(rows) {
				row = rows[i]
			}
			cut := ansi.Cut(row, lo-p.x, hi-p.x)
			lines[i].WriteString(cut)
			if missing := (hi - lo) - ansi.StringWidth(cut); missing > 0 {
				lines[i].WriteString(strings.Repeat(" ", missing))
			}
		}
		col = hi
	}
	if col < width {
		pad := strings.Repeat(" ", width-col)
		for i := range lines {
			lines[i].WriteString(pad)
		}
	}

	out := make([]string, height)
	for i := range lines {
		out[i] = lines[i].String()
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) renderBlock(b PageBlock, width, height int) string {
	if b.Placeholder {
		return r.styles.Placeholder.Width(width).Height(height).Render("")
	}
	return r.styles.Page.
		Width(width).
		Height(height).
		Background(r.styles.PageColor(b.Value)).
		Render(b.Label)
}

func (r *Renderer) renderStatus(state ViewState) string {
	s := state.Status
	parts := []string{
		r.styles.StatusKey.Render(fmt.Sprintf("page %d", s.Selected)),
	}
	if s.HasPending {
		parts = append(parts, r.styles.StatusPending.Render(fmt.Sprintf("→ %d", s.Pending)))
	}
	parts = append(parts,
		r.styles.Status.Render(fmt.Sprintf("window %v", s.Window)),
		r.styles.Status.Render(fmt.Sprintf("cells %d/%d", s.Cells, s.Cells+s.Placeholders)),
	)
	if s.Shift != 0 {
		parts = append(parts, r.styles.Status.Render(fmt.Sprintf("offset %+d", s.Shift)))
	}
	if s.RightToLeft {
		parts = append(parts, r.styles.Status.Render("rtl"))
	}
	if state.StatusMessage != "" {
		style := r.styles.StatusInfo
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		parts = append(parts, style.Render(state.StatusMessage))
	}
	line := strings.Join(parts, r.styles.Dim.Render("  │  "))
	return ansi.Truncate(line, state.Width, "…")
}
