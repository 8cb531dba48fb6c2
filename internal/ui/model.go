package ui

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"pagescroll/internal/config"
	"pagescroll/internal/eventbus"
	"pagescroll/internal/pager"
	"pagescroll/internal/ui/input"
	inputtypes "pagescroll/internal/ui/input/types"
	"pagescroll/internal/ui/state"
	"pagescroll/internal/ui/views"
)

// ReadyMarker is printed once the first frame is laid out when end-to-end testing
const ReadyMarker = "__READY__"

const statusTTL = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	keys         inputtypes.KeyMap
	help         help.Model
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler

	vp      *TermViewport
	factory *pageFactory
	sched   *Scheduler
	pager   *pager.Pager[int]

	helpOps     *HelpOps
	program     *tea.Program
	inPagerMode bool
	readyMarker bool

	now    func() time.Time
	random func() int
}

// NewModel creates a new UI model showing cfg.UI.StartPage
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger pager.Logger) (*Model, error) {
	keys := inputtypes.DefaultKeyMap()
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(cfg.UI.StartPage),
		keys:         keys,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		inputHandler: input.New(keys),
		vp:           NewTermViewport(cfg.Animation.FPS, cfg.Animation.Frequency, cfg.Animation.Damping),
		factory:      &pageFactory{},
		sched:        &Scheduler{},
		helpOps:      NewHelpOps(nil),
		now:          time.Now,
		random:       func() int { return rand.IntN(201) - 100 },
	}
	m.state.RightToLeft = cfg.UI.RightToLeft
	m.state.ShowStatus = cfg.UI.ShowStatus

	p, err := pager.New[int](m.vp, m.factory, DemoContent{}, cfg.UI.StartPage,
		pager.WithBufferSize(cfg.Pager.BufferSize),
		pager.WithEdgeTolerance(cfg.Pager.EdgeTolerance),
		pager.WithPagingTolerance(cfg.Pager.PagingTolerance),
		pager.WithMirrored(cfg.UI.RightToLeft),
		pager.WithScheduler(m.sched),
		pager.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pager: %w", err)
	}
	m.pager = p
	p.OnChange(m.selectionChanged)
	m.vp.OnDecelerated(p.EndDecelerating)

	return m, nil
}

// SetProgram gives the model the program it runs in, for handing the terminal to the help pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetReadyMarker makes the view announce when the first frame is ready
func (m *Model) SetReadyMarker(on bool) {
	m.readyMarker = on
}

// Selected returns the page the application is bound to
func (m *Model) Selected() int {
	return m.state.Bound
}

// Close tears the pager down
func (m *Model) Close() {
	m.pager.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case FrameMsg:
		if m.vp.Step() {
			m.pager.Layout()
		}

	case deferredMsg:
		msg.run()

	case helpPagerMsg:
		if msg.err != nil {
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Help unavailable: %v", msg.err), true))
			m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		m.state.ExpireStatus(m.now())

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	cmds = append(cmds, m.sched.Cmd(), m.vp.Tick())
	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.state.Width = width
	m.state.Height = height
	m.help.Width = width
	m.vp.SetSize(width)
	m.pager.Layout()

	if !m.state.Ready && width > 0 {
		m.state.Ready = true
		m.bus.Publish(eventbus.AppReadyEvent{Width: width, Page: m.pager.Selected()})
	}
}

// pageRows is the height of the page strip
func (m *Model) pageRows() int {
	return m.state.PageHeight(views.Chrome(m.state.ShowStatus, m.inputHandler.TextInput() != nil))
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	forward := 1
	if m.state.RightToLeft {
		forward = -1
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.selectPage(m.state.Bound - 1)

	case msg.Button == tea.MouseButtonWheelDown:
		m.selectPage(m.state.Bound + 1)

	case msg.Button == tea.MouseButtonWheelLeft:
		m.selectPage(m.state.Bound - forward)

	case msg.Button == tea.MouseButtonWheelRight:
		m.selectPage(m.state.Bound + forward)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y >= m.pageRows() {
			return
		}
		// the pager must see the deceleration before the drag cancels it
		m.pager.BeginDrag()
		m.vp.StartDrag(msg.X)

	case msg.Action == tea.MouseActionMotion && m.vp.IsDragging():
		if m.vp.DragTo(msg.X) {
			m.pager.Layout()
		}

	case msg.Action == tea.MouseActionRelease && m.vp.IsDragging():
		decelerate := m.vp.EndDrag()
		m.pager.EndDrag(decelerate)
		m.pager.Layout()
	}
}

// selectPage writes the binding and asks the pager to follow it
func (m *Model) selectPage(target int) {
	from := m.state.Bound
	if target == from {
		return
	}
	m.state.Bound = target
	m.bus.Publish(eventbus.NavigationRequestedEvent{From: from, To: target})
	m.pager.Select(target)
	m.pager.Layout()
}

// selectionChanged receives the pager's deferred notifications
func (m *Model) selectionChanged(index int) {
	m.state.Bound = index
	m.bus.Publish(eventbus.SelectionChangedEvent{Index: index})
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.SetStatus(msg, isError, m.now(), statusTTL)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.StepAction:
		m.selectPage(m.state.Bound + a.Delta)

	case inputtypes.GoToAction:
		m.selectPage(a.Page)

	case inputtypes.RandomPageAction:
		m.selectPage(m.random())

	case inputtypes.ShiftContentAction:
		m.state.ContentShift += a.Delta
		m.pager.SetContentProvider(DemoContent{Shift: m.state.ContentShift})
		m.bus.Publish(eventbus.ContentShiftedEvent{Shift: m.state.ContentShift})

	case inputtypes.ToggleDirectionAction:
		m.state.RightToLeft = !m.state.RightToLeft
		m.pager.SetMirrored(m.state.RightToLeft)
		m.pager.Layout()
		m.bus.Publish(eventbus.DirectionChangedEvent{RightToLeft: m.state.RightToLeft})

	case inputtypes.ToggleStatusAction:
		m.state.ShowStatus = !m.state.ShowStatus

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeGoTo {
			return m.submitGoTo(a.Text)
		}

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) submitGoTo(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	page, err := strconv.Atoi(text)
	if err != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: "invalid page number", Err: err})
		return m.setStatus(fmt.Sprintf("Not a page number: %q", text), true)
	}
	m.selectPage(page)
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	ops := m.helpOps
	program := m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
			defer program.Send(resumeRenderingMsg{})
		}
		return helpPagerMsg{err: ops.ShowHelpInPager(helpContent)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	snap := m.pager.Snapshot()
	vs := views.ViewState{
		Width:        m.state.Width,
		Height:       m.state.Height,
		Offset:       m.vp.Offset(),
		ContentWidth: m.vp.ContentWidth(),
		Mirrored:     m.vp.Mirrored(),
		Pages:        pageBlocks(m.pager.Slots()),
		ShowStatus:   m.state.ShowStatus,
		Status: views.StatusLine{
			Selected:     snap.Selected,
			Pending:      snap.Pending,
			HasPending:   snap.HasPending,
			Window:       snap.Window,
			Cells:        snap.Cells,
			Placeholders: snap.Placeholders,
			Shift:        m.state.ContentShift,
			RightToLeft:  m.state.RightToLeft,
		},
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		HelpModel:     m.help,
		Keys:          m.keys,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.InputView = ti.View()
	}

	if m.readyMarker && m.state.Ready {
		// the marker takes the last row
		vs.Height--
		return m.renderer.Render(vs) + "\n" + ReadyMarker
	}
	return m.renderer.Render(vs)
}

// modelContext implements the input Context
type modelContext struct {
	m *Model
}

func (c modelContext) CurrentPage() int  { return c.m.state.Bound }
func (c modelContext) ContentShift() int { return c.m.state.ContentShift }
func (c modelContext) RightToLeft() bool { return c.m.state.RightToLeft }
