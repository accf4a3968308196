// Package book is the navigation engine of the two-page book view.
//
// A Manager owns the page pairs, the current pair index and the page-turn
// state machine. The display is modelled as two slots, each holding the
// pages currently attached to it in stacking order; the per-page Classes
// are the rendering projection of the turn phase. Every blocking step of a
// turn (next-tick deferral, end of a page rotation) is a bubbletea message
// routed back through Update.
package book

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/actions"
	"booklike/internal/clock"
	"booklike/internal/domain"
	"booklike/internal/eventbus"
	"booklike/internal/slider"
)

// Phase is the state of the page-turn machine
type Phase int

const (
	PhaseIdle      Phase = iota
	PhaseEasingOut       // leading slot's old page rotating away
	PhaseMidturn         // leading old page removed, trailing new page attached
	PhaseEasingIn        // trailing new page rotating in
)

func (p Phase) String() string {
	switch p {
	case PhaseEasingOut:
		return "easing-out"
	case PhaseMidturn:
		return "midturn"
	case PhaseEasingIn:
		return "easing-in"
	default:
		return "idle"
	}
}

// Classes is the visual state of one page during a turn
type Classes uint8

const (
	EaseIn Classes = 1 << iota
	EaseOut
	MidTurn
)

// Has reports whether all of flags are set
func (c Classes) Has(flags Classes) bool {
	return c&flags == flags
}

// Live tells which display slots currently have a bound animation
type Live int

const (
	LiveNone Live = iota
	LiveEven
	LiveOdd
	LiveBoth
)

// Options configure a Manager
type Options struct {
	Transition    time.Duration // length of one page rotation
	NoTransitions bool          // always swap pages immediately
	LongPress     time.Duration // pager hold time before the scrubber appears
	Pulse         time.Duration // attention pulse on the back pager at pair 0
	FrameInterval time.Duration // animation frame period
	ScrubMargin   float64       // scrubber track margin in cells
	Bus           eventbus.EventBus
	Logger        *slog.Logger
}

// DefaultOptions returns the stock timings
func DefaultOptions() Options {
	return Options{
		Transition:    300 * time.Millisecond,
		LongPress:     1000 * time.Millisecond,
		Pulse:         7000 * time.Millisecond,
		FrameInterval: time.Second / 60,
		ScrubMargin:   1,
	}
}

type entry struct {
	hook     actions.Hook
	progress float64
}

type continuation struct {
	page domain.PageID
	turn int
	fn   func() tea.Cmd
}

type pagerHold struct {
	seq   int
	delta int
	armed bool
}

// Manager is the navigation engine
type Manager struct {
	opts Options
	log  *slog.Logger

	pages    []domain.Page
	pairs    []domain.PagePair
	entries  map[domain.PageID]*entry
	byAction map[string]domain.PageID

	current int
	target  int
	phase   Phase
	turn    int
	inert   bool

	display   [2][]domain.PageID
	classes   map[domain.PageID]Classes
	turnStart map[domain.PageID]time.Time

	pending  *continuation
	deferSeq int
	deferred func() tea.Cmd

	clocks [2]*clock.Clock
	live   Live
	active domain.Slot

	scrubber *slider.Slider
	captured *slider.Slider

	hold     *pagerHold
	holdSeq  int
	pressed  bool
	info     bool
	pulsing  bool
	pulseSeq int

	now func() time.Time
}

// New builds a manager over pages, starting at pair current.
// An out-of-range current is normalized to 0.
func New(pages []domain.Page, current int, opts Options) *Manager {
	def := DefaultOptions()
	if opts.Transition <= 0 {
		opts.Transition = def.Transition
	}
	if opts.LongPress <= 0 {
		opts.LongPress = def.LongPress
	}
	if opts.Pulse <= 0 {
		opts.Pulse = def.Pulse
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = def.FrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	all, pairs := Pair(pages)
	m := &Manager{
		opts:      opts,
		log:       opts.Logger,
		pages:     all,
		pairs:     pairs,
		entries:   make(map[domain.PageID]*entry, len(all)),
		byAction:  make(map[string]domain.PageID),
		target:    -1,
		classes:   make(map[domain.PageID]Classes),
		turnStart: make(map[domain.PageID]time.Time),
		now:       time.Now,
	}
	for _, p := range all {
		m.entries[p.ID] = &entry{}
		if p.ActionID != "" {
			m.byAction[p.ActionID] = p.ID
		}
	}
	for i := range m.clocks {
		m.clocks[i] = clock.New(opts.FrameInterval)
	}
	m.scrubber = slider.New(slider.Options{
		Margin:   opts.ScrubMargin,
		AutoHide: true,
		OnChange: m.onScrub,
	})

	if current < 0 || current >= len(pairs) {
		current = 0
	}
	m.current = current
	if len(pairs) > 0 {
		for i, pid := range pairs[current] {
			m.display[i] = []domain.PageID{pid}
		}
		m.setupActions(pairs[current])
	}
	m.pulsing = current == 0 && len(pairs) > 1
	return m
}

// Init starts the attention pulse when opening at the first pair
func (m *Manager) Init() tea.Cmd {
	if !m.pulsing {
		return nil
	}
	m.pulseSeq++
	seq := m.pulseSeq
	return tea.Tick(m.opts.Pulse, func(time.Time) tea.Msg { return pulseMsg{seq: seq} })
}

// Update routes engine, clock and timer messages
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case deferMsg:
		if msg.seq != m.deferSeq || m.deferred == nil {
			return nil
		}
		fn := m.deferred
		m.deferred = nil
		return fn()

	case TransitionEndMsg:
		return m.signal(msg)

	case holdMsg:
		m.onHold(msg)

	case pulseMsg:
		if msg.seq == m.pulseSeq {
			m.pulsing = false
		}

	case clock.FrameMsg:
		for _, c := range m.clocks {
			if c.ID() == msg.ID {
				return c.Update(msg)
			}
		}

	default:
		var cmds []tea.Cmd
		for _, c := range m.clocks {
			if cmd := c.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// Actions attaches hooks to pages by action id. Pages on display that
// received a hook are shown once the animations are bound.
func (m *Manager) Actions(hooks map[string]actions.Hook) {
	if len(m.pairs) == 0 {
		return
	}
	pair := m.pairs[m.current]
	var shown []domain.PageID
	for id, hook := range hooks {
		pid, ok := m.byAction[id]
		if !ok {
			m.log.Warn("no page for action", "action", id)
			continue
		}
		m.entries[pid].hook = hook
		if pid == pair[0] || pid == pair[1] {
			shown = append(shown, pid)
		}
	}
	m.setupActions(pair)
	for _, pid := range pair {
		for _, s := range shown {
			if s == pid {
				m.show(pid)
			}
		}
	}
}

// AnimatedPage is a page carrying an animation with its index in the book
type AnimatedPage struct {
	Index int
	Page  domain.Page
}

// AnimatedPages lists the animated pages in book order
func (m *Manager) AnimatedPages() []AnimatedPage {
	var out []AnimatedPage
	for i, p := range m.pages {
		_, anim := m.entries[p.ID].hook.(actions.Animator)
		if p.Animated || anim {
			out = append(out, AnimatedPage{Index: i, Page: p})
		}
	}
	return out
}

// Current returns the index of the pair on display
func (m *Manager) Current() int {
	return m.current
}

// Target returns the pair being turned to, or -1 when idle
func (m *Manager) Target() int {
	return m.target
}

// PairCount returns the number of pairs
func (m *Manager) PairCount() int {
	return len(m.pairs)
}

// Pairs returns the page pairs in order
func (m *Manager) Pairs() []domain.PagePair {
	return m.pairs
}

// Pages returns all pages, blank filler included
func (m *Manager) Pages() []domain.Page {
	return m.pages
}

// Page returns the page with the given id
func (m *Manager) Page(id domain.PageID) domain.Page {
	if id < 0 || int(id) >= len(m.pages) {
		return domain.Page{ID: domain.NoPage, Blank: true}
	}
	return m.pages[id]
}

// Phase returns the turn phase
func (m *Manager) Phase() Phase {
	return m.phase
}

// Inert reports whether navigation controls are disabled by a turn
func (m *Manager) Inert() bool {
	return m.inert
}

// Display returns the pages attached to a slot in stacking order
func (m *Manager) Display(slot domain.Slot) []domain.PageID {
	return m.display[slot]
}

// Classes returns the visual classes of a page
func (m *Manager) Classes(id domain.PageID) Classes {
	return m.classes[id]
}

// TurnProgress returns how far the rotation of a page has run, in [0,1].
// Pages that are not rotating report 0.
func (m *Manager) TurnProgress(id domain.PageID) float64 {
	start, ok := m.turnStart[id]
	if !ok {
		return 0
	}
	return slider.Clamp01(float64(m.now().Sub(start)) / float64(m.opts.Transition))
}

// Progress returns the remembered animation progress of a page
func (m *Manager) Progress(id domain.PageID) float64 {
	if e, ok := m.entries[id]; ok {
		return e.progress
	}
	return 0
}

// Clock returns the animation clock of a slot
func (m *Manager) Clock(slot domain.Slot) *clock.Clock {
	return m.clocks[slot]
}

// Scrubber returns the global position slider
func (m *Manager) Scrubber() *slider.Slider {
	return m.scrubber
}

func (m *Manager) publish(e eventbus.DomainEvent) {
	if m.opts.Bus != nil {
		m.opts.Bus.Publish(e)
	}
}
