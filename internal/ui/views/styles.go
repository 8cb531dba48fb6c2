package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusKey     lipgloss.Style
	StatusPending lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Page          lipgloss.Style
	Placeholder   lipgloss.Style
	PageColors    []lipgloss.Color
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		StatusPending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Page: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center),
		Placeholder: lipgloss.NewStyle().
			Background(lipgloss.Color("235")),
		PageColors: []lipgloss.Color{
			lipgloss.Color("160"), // red
			lipgloss.Color("26"),  // blue
			lipgloss.Color("34"),  // green
		},
	}
}

// PageColor returns the background for a displayed page value
func (s *Styles) PageColor(value int) lipgloss.Color {
	n := len(s.PageColors)
	i := value % n
	if i < 0 {
		i = -i
	}
	return s.PageColors[i]
}
