package book

import (
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklike/internal/actions"
	"booklike/internal/domain"
	"booklike/internal/eventbus"
)

// fakeBus records published events synchronously
type fakeBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *fakeBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *fakeBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *fakeBus) Close()                                                     {}

func (b *fakeBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// journal records hook calls in order, shared by all hooks of a test
type journal struct {
	calls []string
}

type hook struct {
	j *journal
}

func (h hook) Show(p domain.Page)    { h.j.calls = append(h.j.calls, fmt.Sprintf("show %d", p.ID)) }
func (h hook) Hide(p domain.Page)    { h.j.calls = append(h.j.calls, fmt.Sprintf("hide %d", p.ID)) }
func (h hook) Standby(p domain.Page) { h.j.calls = append(h.j.calls, fmt.Sprintf("standby %d", p.ID)) }

type animHook struct {
	hook
	frames []float64
}

func (a *animHook) Duration() time.Duration { return time.Second }
func (a *animHook) DrawFrame(f float64)     { a.frames = append(a.frames, f) }

func pages(n int) []domain.Page {
	out := make([]domain.Page, n)
	for i := range out {
		out[i] = domain.Page{Title: fmt.Sprintf("page %d", i), ActionID: fmt.Sprintf("p%d", i)}
	}
	return out
}

func newManager(t *testing.T, n, current int) (*Manager, *fakeBus) {
	t.Helper()
	bus := &fakeBus{}
	opts := DefaultOptions()
	opts.Transition = time.Millisecond
	opts.Bus = bus
	return New(pages(n), current, opts), bus
}

// hookAll attaches a journaling hook to every page
func hookAll(m *Manager, j *journal) {
	hooks := make(map[string]actions.Hook)
	for _, p := range m.Pages() {
		if p.ActionID != "" {
			hooks[p.ActionID] = hook{j: j}
		}
	}
	m.Actions(hooks)
	j.calls = nil
}

// pump feeds command results back into the manager until the chain ends
func pump(t *testing.T, m *Manager, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 20, "command chain does not settle")
		cmd = m.Update(cmd())
	}
}

func TestPairAppendsBlankPage(t *testing.T) {
	all, pairs := Pair(pages(7))

	require.Len(t, all, 8)
	require.Len(t, pairs, 4)
	assert.True(t, all[7].Blank)
	assert.Equal(t, domain.PagePair{6, 7}, pairs[3])
	for i, p := range all {
		assert.Equal(t, domain.PageID(i), p.ID)
	}
}

func TestPairEvenCount(t *testing.T) {
	all, pairs := Pair(pages(4))

	assert.Len(t, all, 4)
	assert.Equal(t, []domain.PagePair{{0, 1}, {2, 3}}, pairs)
}

func TestNewNormalizesCurrent(t *testing.T) {
	for _, cur := range []int{-3, 4, 99} {
		m, _ := newManager(t, 7, cur)
		assert.Equal(t, 0, m.Current(), "current %d", cur)
	}
	m, _ := newManager(t, 7, 2)
	assert.Equal(t, 2, m.Current())
	assert.Equal(t, []domain.PageID{4}, m.Display(domain.SlotEven))
	assert.Equal(t, []domain.PageID{5}, m.Display(domain.SlotOdd))
}

func TestGoToCurrentIsNoop(t *testing.T) {
	m, bus := newManager(t, 7, 1)

	assert.Nil(t, m.GoTo(1, false))
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.Empty(t, bus.events)
}

func TestEdgeSignalAtLastPair(t *testing.T) {
	m, bus := newManager(t, 7, 0)
	m.GoTo(3, true)
	require.Equal(t, 3, m.Current())

	assert.Nil(t, m.GoTo(4, false))

	assert.Equal(t, 3, m.Current())
	assert.True(t, m.InfoVisible())
	edges := bus.ofType(eventbus.EventEdgeReached)
	require.Len(t, edges, 1)
	assert.Equal(t, eventbus.EdgeReachedEvent{Current: 3, Requested: 4}, edges[0])
}

func TestEdgeSignalAtFirstPair(t *testing.T) {
	m, bus := newManager(t, 7, 0)

	m.Change(-1)

	assert.Equal(t, 0, m.Current())
	assert.True(t, m.InfoVisible())
	assert.Len(t, bus.ofType(eventbus.EventEdgeReached), 1)
}

func TestOutOfRangeAwayFromEdgeIsIgnored(t *testing.T) {
	m, bus := newManager(t, 7, 1)

	m.GoTo(-1, false)
	m.GoTo(9, false)

	assert.Equal(t, 1, m.Current())
	assert.False(t, m.InfoVisible())
	assert.Empty(t, bus.ofType(eventbus.EventEdgeReached))
}

func TestSkipAnimationSwapsSynchronously(t *testing.T) {
	m, bus := newManager(t, 8, 0)
	j := &journal{}
	hookAll(m, j)

	cmd := m.GoTo(2, true)

	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.Current())
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.Equal(t, []domain.PageID{4}, m.Display(domain.SlotEven))
	assert.Equal(t, []domain.PageID{5}, m.Display(domain.SlotOdd))
	assert.Equal(t, []string{"hide 0", "show 4", "hide 1", "show 5"}, j.calls)

	settled := bus.ofType(eventbus.EventNavigationSettled)
	require.Len(t, settled, 1)
	assert.Equal(t, eventbus.NavigationSettledEvent{From: 0, To: 2, Animated: false}, settled[0])
}

func TestNoTransitionsOption(t *testing.T) {
	opts := DefaultOptions()
	opts.NoTransitions = true
	m := New(pages(8), 0, opts)

	assert.Nil(t, m.Change(1))
	assert.Equal(t, 1, m.Current())
	assert.Equal(t, PhaseIdle, m.Phase())
}

func TestForwardTurnPhases(t *testing.T) {
	m, bus := newManager(t, 8, 0)
	j := &journal{}
	hookAll(m, j)

	cmd := m.Change(1)
	require.NotNil(t, cmd)

	// phase A: odd slot leads, old page 1 eases over new page 3
	assert.Equal(t, PhaseEasingOut, m.Phase())
	assert.True(t, m.Inert())
	assert.Equal(t, 1, m.Target())
	assert.Equal(t, 0, m.Current())
	assert.Equal(t, []domain.PageID{3, 1}, m.Display(domain.SlotOdd))
	assert.Equal(t, EaseIn, m.Classes(1))
	assert.Equal(t, []string{"standby 1", "show 3"}, j.calls)

	rotate := m.Update(cmd())
	require.NotNil(t, rotate)
	assert.Equal(t, EaseIn|MidTurn, m.Classes(1))
	assert.True(t, m.Turning())

	// phase B: new page 2 rotates in over old page 0
	next := m.Update(rotate())
	require.NotNil(t, next)
	assert.Equal(t, PhaseMidturn, m.Phase())
	assert.Equal(t, []domain.PageID{3}, m.Display(domain.SlotOdd))
	assert.Equal(t, []domain.PageID{0, 2}, m.Display(domain.SlotEven))
	assert.Equal(t, EaseOut|MidTurn, m.Classes(2))
	assert.Zero(t, m.Classes(1))
	assert.Equal(t, []string{"standby 1", "show 3", "hide 1", "standby 0", "show 2"}, j.calls)

	rotate = m.Update(next())
	require.NotNil(t, rotate)
	assert.Equal(t, PhaseEasingIn, m.Phase())
	assert.Equal(t, EaseOut, m.Classes(2))

	assert.Nil(t, m.Update(rotate()))

	// settled
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.False(t, m.Inert())
	assert.False(t, m.Turning())
	assert.Equal(t, 1, m.Current())
	assert.Equal(t, -1, m.Target())
	assert.Equal(t, []domain.PageID{2}, m.Display(domain.SlotEven))
	assert.Equal(t, []domain.PageID{3}, m.Display(domain.SlotOdd))
	assert.Zero(t, m.Classes(2))
	assert.Equal(t, []string{"standby 1", "show 3", "hide 1", "standby 0", "show 2", "hide 0"}, j.calls)

	settled := bus.ofType(eventbus.EventNavigationSettled)
	require.Len(t, settled, 1)
	assert.Equal(t, eventbus.NavigationSettledEvent{From: 0, To: 1, Animated: true}, settled[0])
}

func TestBackwardTurnLeadsWithEvenSlot(t *testing.T) {
	m, _ := newManager(t, 8, 1)
	j := &journal{}
	hookAll(m, j)

	cmd := m.Change(-1)

	assert.Equal(t, []domain.PageID{0, 2}, m.Display(domain.SlotEven))
	assert.Equal(t, EaseIn, m.Classes(2))
	pump(t, m, cmd)

	assert.Equal(t, 0, m.Current())
	assert.Equal(t, []string{"standby 2", "show 0", "hide 2", "standby 3", "show 1", "hide 3"}, j.calls)
}

func TestRequestsDuringTurnAreIgnored(t *testing.T) {
	m, _ := newManager(t, 8, 0)

	cmd := m.Change(1)
	require.Equal(t, PhaseEasingOut, m.Phase())

	assert.Nil(t, m.GoTo(3, true))
	assert.Nil(t, m.Change(1))
	assert.Nil(t, m.PagerPress(1))
	assert.Nil(t, m.PlayPause())
	assert.Equal(t, 1, m.Target())

	pump(t, m, cmd)
	assert.Equal(t, 1, m.Current())
}

func TestCancelProceedsLikeEnd(t *testing.T) {
	m, bus := newManager(t, 8, 0)

	m.Update(m.Change(1)())
	require.NotNil(t, m.Cancel())
	assert.Equal(t, PhaseMidturn, m.Phase())

	assert.Nil(t, m.Cancel())
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.Equal(t, 1, m.Current())
	assert.Len(t, bus.ofType(eventbus.EventNavigationSettled), 1)

	// nothing awaited any more
	assert.Nil(t, m.Cancel())
}

func TestLateDeferralAfterCancelledTurn(t *testing.T) {
	m, _ := newManager(t, 8, 0)

	m.Update(m.Change(1)())
	phaseB := m.Cancel()
	require.NotNil(t, phaseB)
	assert.Nil(t, m.Cancel())
	require.Equal(t, PhaseIdle, m.Phase())

	// the phase B deferral arrives after the turn settled
	assert.Nil(t, m.Update(phaseB()))
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.False(t, m.Turning())
	assert.Zero(t, m.Classes(2))

	assert.Nil(t, m.GoTo(2, true))
	assert.Equal(t, 2, m.Current())
}

func TestCancelledTurnIgnoresInFlightMessages(t *testing.T) {
	for _, tc := range []struct {
		name    string
		rotateB bool
	}{
		{name: "cancelled before phase B rotates", rotateB: false},
		{name: "cancelled while phase B rotates", rotateB: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, bus := newManager(t, 8, 0)
			var inflight []tea.Cmd

			deferA := m.Change(1)
			rotateA := m.Update(deferA())
			deferB := m.Cancel()
			inflight = append(inflight, deferA, rotateA, deferB)
			if tc.rotateB {
				rotateB := m.Update(deferB())
				require.NotNil(t, rotateB)
				inflight = append(inflight, rotateB)
			}
			assert.Nil(t, m.Cancel())
			require.Equal(t, PhaseIdle, m.Phase())
			require.Equal(t, 1, m.Current())

			for _, cmd := range inflight {
				pump(t, m, cmd)
			}

			assert.Equal(t, PhaseIdle, m.Phase())
			assert.False(t, m.Turning())
			assert.False(t, m.Inert())
			assert.Len(t, bus.ofType(eventbus.EventNavigationSettled), 1)

			pump(t, m, m.Change(1))
			assert.Equal(t, 2, m.Current())
			assert.Equal(t, PhaseIdle, m.Phase())
			assert.Len(t, bus.ofType(eventbus.EventNavigationSettled), 2)
		})
	}
}

func TestStaleTransitionEndIsIgnored(t *testing.T) {
	m, _ := newManager(t, 8, 0)
	m.Change(1)

	assert.Nil(t, m.Update(TransitionEndMsg{Page: 0, Turn: 1}))
	assert.Nil(t, m.Update(TransitionEndMsg{Page: 1, Turn: 7}))
	assert.Equal(t, PhaseEasingOut, m.Phase())

	require.NotNil(t, m.Update(TransitionEndMsg{Page: 1, Turn: 1}))
	assert.Equal(t, PhaseMidturn, m.Phase())
	// a second end for the same page finds no continuation
	assert.Nil(t, m.Update(TransitionEndMsg{Page: 1, Turn: 1}))
}

func TestStaleDeferralIsIgnored(t *testing.T) {
	m, _ := newManager(t, 8, 0)
	first := m.Change(1)
	msg := first()

	m.Cancel()
	// the first deferral was superseded by the phase B one
	assert.Nil(t, m.Update(msg))
	assert.Equal(t, EaseOut|MidTurn, m.Classes(2))
}

func TestTurnProgress(t *testing.T) {
	m, _ := newManager(t, 8, 0)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	m.now = func() time.Time { return now }

	m.Update(m.Change(1)())
	assert.Zero(t, m.TurnProgress(1))

	now = base.Add(m.opts.Transition / 2)
	assert.InDelta(t, 0.5, m.TurnProgress(1), 1e-9)
	now = base.Add(time.Hour)
	assert.Equal(t, 1.0, m.TurnProgress(1))
	assert.Zero(t, m.TurnProgress(3))
}

func TestFullWalkThroughBook(t *testing.T) {
	m, bus := newManager(t, 7, 0)

	for i := 1; i < m.PairCount(); i++ {
		pump(t, m, m.Change(1))
		assert.Equal(t, i, m.Current())
	}
	m.Change(1)
	assert.True(t, m.InfoVisible())
	assert.Len(t, bus.ofType(eventbus.EventNavigationSettled), 3)
	assert.True(t, m.Page(m.Display(domain.SlotOdd)[0]).Blank)
}

func TestActionsShowDisplayedPages(t *testing.T) {
	m, bus := newManager(t, 8, 1)
	j := &journal{}

	m.Actions(map[string]actions.Hook{
		"p2":      hook{j: j},
		"p5":      hook{j: j},
		"missing": hook{j: j},
	})

	assert.Equal(t, []string{"show 2"}, j.calls)
	shown := bus.ofType(eventbus.EventPageShown)
	require.Len(t, shown, 1)
	assert.Equal(t, eventbus.PageShownEvent{Page: 2}, shown[0])
}

func TestAnimatedPages(t *testing.T) {
	ps := pages(5)
	ps[3].Animated = true
	m := New(ps, 0, DefaultOptions())
	m.Actions(map[string]actions.Hook{"p0": &animHook{hook: hook{j: &journal{}}}})

	got := m.AnimatedPages()
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 3, got[1].Index)
	assert.Equal(t, "page 3", got[1].Page.Title)
}

func TestPulseStopsOnNavigation(t *testing.T) {
	m, _ := newManager(t, 8, 0)
	require.NotNil(t, m.Init())
	assert.True(t, m.Pulsing())

	m.GoTo(2, true)
	assert.False(t, m.Pulsing())

	other, _ := newManager(t, 8, 1)
	assert.Nil(t, other.Init())
	assert.False(t, other.Pulsing())
}

func TestPulseEndsOnTimer(t *testing.T) {
	m, _ := newManager(t, 8, 0)
	m.Init()

	m.Update(pulseMsg{seq: m.pulseSeq - 1})
	assert.True(t, m.Pulsing())
	m.Update(pulseMsg{seq: m.pulseSeq})
	assert.False(t, m.Pulsing())
}
