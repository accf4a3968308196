package ui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/book"
	"booklike/internal/domain"
	"booklike/internal/eventbus"
	"booklike/internal/slider"
	"booklike/internal/theme"
	"booklike/internal/ui/handlers"
	"booklike/internal/ui/input"
	"booklike/internal/ui/input/keys"
	inputtypes "booklike/internal/ui/input/types"
	"booklike/internal/ui/state"
	"booklike/internal/ui/views"
)

const (
	// mousePointer is the pointer id of the terminal mouse
	mousePointer = 1
	// redrawInterval paces repaints while pages turn or the pager pulses
	redrawInterval = time.Second / 30
	// pulsePeriod is one glow cycle of the back pager
	pulsePeriod = 1500 * time.Millisecond
)

// Options configure a Model
type Options struct {
	Bus    eventbus.EventBus
	Book   *book.Manager
	Title  string
	Frames views.FrameSource
	Theme  theme.Theme
	Keys   keys.KeyMap
	Logger *slog.Logger
}

// Model represents the UI state
type Model struct {
	bus   eventbus.EventBus
	book  *book.Manager
	state *state.AppState
	title string
	log   *slog.Logger

	layout views.Layout
	frames views.FrameSource
	help   help.Model
	pager  int // direction of the pager button under a press, 0 when none

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	helpRender   *HelpRenderer
	helpOps      *HelpOps

	redrawing bool
	start     time.Time
	now       func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appState := state.NewAppState(opts.Theme, opts.Book.Current())
	m := &Model{
		bus:          opts.Bus,
		book:         opts.Book,
		state:        appState,
		title:        opts.Title,
		log:          logger,
		frames:       opts.Frames,
		help:         help.New(),
		renderer:     views.NewRenderer(opts.Theme),
		eventHandler: handlers.NewEventHandler(appState, logger),
		inputHandler: input.New(opts.Keys),
		helpRender:   NewHelpRenderer(opts.Keys),
		helpOps:      NewHelpOps(nil),
		now:          time.Now,
	}
	m.start = m.now()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State returns the UI state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.book.Init(), m.ensureRedraw())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.layout = views.Compute(msg.Width, msg.Height)
		m.pager = 0
		m.book.PagerLeave()
		cmds = append(cmds, m.book.Resize(m.layout.Geometry()))

	case tea.BlurMsg:
		cmds = append(cmds, m.book.Cancel())

	case tea.KeyMsg:
		ctx := &input.ModelContext{Book: m.book}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case EventMsg:
		cmds = append(cmds, m.eventHandler.HandleEvent(msg.Event))

	case handlers.ClearStatusMsg:
		m.state.ClearStatus(msg.Seq)

	case redrawMsg:
		m.redrawing = false

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Error("help pager failed", "error", msg.err)
			cmds = append(cmds, m.eventHandler.Status("Help pager failed"))
		}

	case pauseRenderingMsg:
		m.state.InPagerMode = true

	case resumeRenderingMsg:
		m.state.InPagerMode = false

	default:
		cmds = append(cmds, m.inputHandler.Update(msg), m.book.Update(msg))
	}

	cmds = append(cmds, m.ensureRedraw())
	return m, tea.Batch(cmds...)
}

// ensureRedraw keeps a repaint tick running while pages turn or the
// back pager pulses.
func (m *Model) ensureRedraw() tea.Cmd {
	if m.redrawing || m.state.InPagerMode {
		return nil
	}
	if !m.book.Turning() && !m.book.Pulsing() {
		return nil
	}
	m.redrawing = true
	return tea.Tick(redrawInterval, func(time.Time) tea.Msg { return redrawMsg{} })
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "prev":
			return m.book.Change(-1)
		case "next":
			return m.book.Change(1)
		case "first":
			return m.book.First()
		case "last":
			return m.book.Last()
		}

	case inputtypes.GoToAction:
		return m.book.GoTo(a.Pair, false)

	case inputtypes.PlayPauseAction:
		return m.book.PlayPause()

	case inputtypes.SwitchAnimationAction:
		m.book.ToggleActive()

	case inputtypes.CycleThemeAction:
		return m.setTheme(m.state.Theme.Next())

	case inputtypes.ToggleDarkAction:
		dark, high := m.state.Theme.Mode.Toggles()
		return m.setTheme(m.state.Theme.WithToggles(!dark, high))

	case inputtypes.ToggleHighAction:
		dark, high := m.state.Theme.Mode.Toggles()
		return m.setTheme(m.state.Theme.WithToggles(dark, !high))

	case inputtypes.SetThemeAction:
		t, err := m.state.Theme.Change(a.Theme)
		if err != nil {
			return m.eventHandler.Status(err.Error())
		}
		return m.setTheme(t)

	case inputtypes.ToggleInfoAction:
		m.book.ToggleInfo()

	case inputtypes.HideAction:
		m.book.HideInfo()

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRender.RenderHelpContent(m.renderer.Styles(), m.title))

	case inputtypes.CancelTextAction:
		m.state.StatusMessage = ""

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) setTheme(t theme.Theme) tea.Cmd {
	if t == m.state.Theme {
		return nil
	}
	m.state.Theme = t
	m.renderer.SetTheme(t)
	if m.bus != nil {
		m.bus.Publish(eventbus.ThemeChangedEvent{Theme: t.String()})
	}
	return nil
}

// handleMouse routes a mouse event to the sliders first, then to the
// pager buttons and play glyphs.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := slider.Pointer{ID: mousePointer, X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if m.book.PointerDown(p) {
			return nil
		}
		switch {
		case m.layout.Back.Contains(msg.X, msg.Y):
			m.pager = -1
			return m.book.PagerPress(-1)
		case m.layout.Forward.Contains(msg.X, msg.Y):
			m.pager = 1
			return m.book.PagerPress(1)
		}
		for i, r := range m.layout.Play {
			if r.Contains(msg.X, msg.Y) {
				return m.book.PlaySlot(domain.Slot(i))
			}
		}

	case tea.MouseActionMotion:
		if m.book.Captured() {
			m.book.PointerMove(p)
			return nil
		}
		if m.pager != 0 && !m.pagerRect().Contains(msg.X, msg.Y) {
			m.pager = 0
			m.book.PagerLeave()
		}

	case tea.MouseActionRelease:
		if m.book.Captured() {
			m.book.PointerUp(p)
			return nil
		}
		if m.pager != 0 {
			m.pager = 0
			return m.book.PagerRelease()
		}
	}
	return nil
}

func (m *Model) pagerRect() views.Rect {
	if m.pager < 0 {
		return m.layout.Back
	}
	return m.layout.Forward
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// pulse is the glow of the back pager, cycling through [0,1]
func (m *Model) pulse() float64 {
	t := float64(m.now().Sub(m.start)) / float64(pulsePeriod)
	return 0.5 - 0.5*math.Cos(2*math.Pi*t)
}

// buildInfo renders the body of the info panel
func (m *Model) buildInfo() string {
	b := m.book
	var sb strings.Builder
	sb.WriteString(m.title)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Pair %d of %d\n", b.Current()+1, b.PairCount())
	fmt.Fprintf(&sb, "Theme: %s\n", m.state.Theme)

	var shown []string
	for _, id := range m.state.VisiblePages() {
		shown = append(shown, fmt.Sprint(int(id)+1))
	}
	if len(shown) > 0 {
		fmt.Fprintf(&sb, "Pages shown: %s\n", strings.Join(shown, ", "))
	}

	var animated []string
	for _, ap := range b.AnimatedPages() {
		animated = append(animated, fmt.Sprintf("%d (%s)", ap.Index+1, ap.Page.Title))
	}
	if len(animated) > 0 {
		fmt.Fprintf(&sb, "Animated pages: %s\n", strings.Join(animated, ", "))
	}
	fmt.Fprintf(&sb, "Turns this session: %d\n", m.state.Turns)
	sb.WriteString("\nHold a pager to scrub · ? for help · Esc to close")
	return sb.String()
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	var prompt string
	if ti := m.inputHandler.TextInput(); ti != nil {
		prompt = m.renderer.Styles().Prompt.Render(m.inputHandler.Prompt()) + ti.View()
	}

	vs := views.ViewState{
		Layout:        m.layout,
		Title:         m.title,
		Book:          m.book,
		Frames:        m.frames,
		Theme:         m.state.Theme,
		Pulse:         m.pulse(),
		StatusMessage: m.state.StatusMessage,
		Prompt:        prompt,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
	}
	if m.book.InfoVisible() {
		vs.InfoContent = m.buildInfo()
	}
	return m.renderer.Render(vs)
}
