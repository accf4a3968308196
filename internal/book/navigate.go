package book

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/domain"
	"booklike/internal/eventbus"
)

// Change steps delta pairs with a page-turn animation
func (m *Manager) Change(delta int) tea.Cmd {
	return m.GoTo(m.current+delta, false)
}

// First jumps to the first pair without animation
func (m *Manager) First() tea.Cmd {
	return m.GoTo(0, true)
}

// Last jumps to the last pair without animation
func (m *Manager) Last() tea.Cmd {
	return m.GoTo(len(m.pairs)-1, true)
}

// GoTo moves the display to pair target. Requests made while a turn is
// running are ignored. Pushing past either end of the book raises the edge
// signal instead.
func (m *Manager) GoTo(target int, skipAnimation bool) tea.Cmd {
	if m.phase != PhaseIdle {
		m.log.Debug("navigation busy, ignoring request", "target", target, "phase", m.phase)
		return nil
	}
	cur, last := m.current, len(m.pairs)-1
	if target == cur {
		return nil
	}
	if target < 0 || target > last {
		if (target < 0 && cur == 0) || (target > last && cur == last) {
			m.edge(target)
		}
		return nil
	}

	for _, c := range m.clocks {
		c.SetFaded(false)
	}
	m.stopPulse()

	if skipAnimation || m.opts.NoTransitions {
		m.swap(m.pairs[cur], m.pairs[target])
		m.settle(cur, target, false)
		return nil
	}
	return m.turnTo(cur, target)
}

func (m *Manager) edge(requested int) {
	m.log.Debug("edge of book", "current", m.current, "requested", requested)
	m.ToggleInfo()
	m.publish(eventbus.EdgeReachedEvent{Current: m.current, Requested: requested})
}

func (m *Manager) swap(from, to domain.PagePair) {
	for i := range from {
		slot := domain.Slot(i)
		oldp, newp := from[i], to[i]
		m.insertBefore(slot, newp, oldp)
		m.remove(slot, oldp)
		m.hide(oldp)
		m.show(newp)
		delete(m.classes, oldp)
		delete(m.classes, newp)
	}
	m.setupActions(to)
}

func (m *Manager) settle(from, to int, animated bool) {
	m.current = to
	m.target = -1
	m.phase = PhaseIdle
	// a deferral still in flight belongs to the finished turn
	m.deferred = nil
	m.deferSeq++
	m.log.Info("navigation settled", "from", from, "to", to, "animated", animated)
	m.publish(eventbus.NavigationSettledEvent{From: from, To: to, Animated: animated})
}

// turnTo runs the two-phase page turn. The leading slot is the one whose
// page flips away first: odd going forward, even going backward.
func (m *Manager) turnTo(cur, next int) tea.Cmd {
	lead := domain.SlotEven
	if next > cur {
		lead = domain.SlotOdd
	}
	trail := lead.Other()

	from, to := m.pairs[cur], m.pairs[next]
	oldLead, newLead := from[lead], to[lead]
	oldTrail, newTrail := from[trail], to[trail]

	m.turn++
	m.phase = PhaseEasingOut
	m.target = next
	m.inert = true
	m.scrubber.Hide()

	// phase A: the old leading page rotates away over the new one
	m.classes[oldLead] |= EaseIn
	m.insertBefore(lead, newLead, oldLead)
	m.standby(oldLead)
	m.show(newLead)

	m.await(oldLead, func() tea.Cmd {
		delete(m.classes, oldLead)
		delete(m.turnStart, oldLead)
		m.remove(lead, oldLead)
		m.hide(oldLead)

		// phase B: the new trailing page rotates in over the old one
		m.phase = PhaseMidturn
		m.classes[newTrail] |= EaseOut | MidTurn
		m.insertAfter(trail, newTrail, oldTrail)
		m.standby(oldTrail)
		m.show(newTrail)

		m.await(newTrail, func() tea.Cmd {
			delete(m.classes, newTrail)
			delete(m.turnStart, newTrail)
			m.remove(trail, oldTrail)
			m.hide(oldTrail)
			m.inert = false
			m.setupActions(to)
			m.settle(cur, next, true)
			return nil
		})
		return m.nextTick(func() tea.Cmd {
			m.classes[newTrail] &^= MidTurn
			m.phase = PhaseEasingIn
			return m.rotate(newTrail)
		})
	})
	return m.nextTick(func() tea.Cmd {
		m.classes[oldLead] |= MidTurn
		return m.rotate(oldLead)
	})
}

// rotate starts the timed rotation of a page and reports its end
func (m *Manager) rotate(page domain.PageID) tea.Cmd {
	m.turnStart[page] = m.now()
	turn := m.turn
	return tea.Tick(m.opts.Transition, func(time.Time) tea.Msg {
		return TransitionEndMsg{Page: page, Turn: turn}
	})
}

// await registers the single continuation run when page's rotation ends
func (m *Manager) await(page domain.PageID, fn func() tea.Cmd) {
	m.pending = &continuation{page: page, turn: m.turn, fn: fn}
}

// nextTick defers fn to the next pass through the update loop, after the
// current state has been rendered.
func (m *Manager) nextTick(fn func() tea.Cmd) tea.Cmd {
	m.deferSeq++
	m.deferred = fn
	seq := m.deferSeq
	return func() tea.Msg { return deferMsg{seq: seq} }
}

func (m *Manager) signal(msg TransitionEndMsg) tea.Cmd {
	c := m.pending
	if c == nil || c.page != msg.Page || c.turn != msg.Turn {
		return nil
	}
	if msg.Canceled {
		m.log.Debug("page rotation cancelled", "page", msg.Page)
	}
	m.pending = nil
	return c.fn()
}

// Cancel delivers the cancelled form of the awaited transition end, as the
// renderer does when it abandons a rotation.
func (m *Manager) Cancel() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	return m.signal(TransitionEndMsg{Page: m.pending.page, Turn: m.pending.turn, Canceled: true})
}

// Turning reports whether a page rotation is on screen
func (m *Manager) Turning() bool {
	return len(m.turnStart) > 0
}

func (m *Manager) show(id domain.PageID) {
	if e := m.entries[id]; e != nil && e.hook != nil {
		e.hook.Show(m.pages[id])
	}
	m.publish(eventbus.PageShownEvent{Page: id})
}

func (m *Manager) hide(id domain.PageID) {
	if e := m.entries[id]; e != nil && e.hook != nil {
		e.hook.Hide(m.pages[id])
	}
	m.publish(eventbus.PageHiddenEvent{Page: id})
}

func (m *Manager) standby(id domain.PageID) {
	if e := m.entries[id]; e != nil && e.hook != nil {
		e.hook.Standby(m.pages[id])
	}
}

func (m *Manager) insertBefore(slot domain.Slot, page, anchor domain.PageID) {
	list := m.display[slot]
	at := indexOf(list, anchor)
	if at < 0 {
		at = len(list)
	}
	m.display[slot] = insertAt(list, at, page)
}

func (m *Manager) insertAfter(slot domain.Slot, page, anchor domain.PageID) {
	list := m.display[slot]
	at := indexOf(list, anchor)
	if at < 0 {
		at = len(list) - 1
	}
	m.display[slot] = insertAt(list, at+1, page)
}

func (m *Manager) remove(slot domain.Slot, page domain.PageID) {
	list := m.display[slot]
	if at := indexOf(list, page); at >= 0 {
		m.display[slot] = append(list[:at:at], list[at+1:]...)
	}
}

func indexOf(list []domain.PageID, id domain.PageID) int {
	for i, p := range list {
		if p == id {
			return i
		}
	}
	return -1
}

func insertAt(list []domain.PageID, at int, id domain.PageID) []domain.PageID {
	out := make([]domain.PageID, 0, len(list)+1)
	out = append(out, list[:at]...)
	out = append(out, id)
	return append(out, list[at:]...)
}
