package book

import (
	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/actions"
	"booklike/internal/domain"
)

// setupActions binds each slot's clock to the animation of the page now
// shown there, or detaches it when the page has none.
func (m *Manager) setupActions(pair domain.PagePair) {
	live := LiveNone
	for i, pid := range pair {
		c := m.clocks[i]
		e := m.entries[pid]
		anim, ok := e.hook.(actions.Animator)
		if !ok {
			c.Detach()
			continue
		}
		c.Configure(anim.Duration(), e.progress, func(frac float64) {
			e.progress = frac
			anim.DrawFrame(frac)
		})
		live |= Live(1 << i)
	}
	m.live = live
	m.active = domain.SlotEven
}

// Live reports which slots have a bound animation
func (m *Manager) Live() Live {
	return m.live
}

// Active returns the slot Space acts on
func (m *Manager) Active() (domain.Slot, bool) {
	switch m.live {
	case LiveEven:
		return domain.SlotEven, true
	case LiveOdd:
		return domain.SlotOdd, true
	case LiveBoth:
		return m.active, true
	default:
		return domain.SlotEven, false
	}
}

// PlayPause toggles playback of the active animation, flashing its
// control if it was faded.
func (m *Manager) PlayPause() tea.Cmd {
	slot, ok := m.Active()
	if !ok || m.inert {
		return nil
	}
	c := m.clocks[slot]
	return tea.Batch(c.Flash(), c.PlayPause())
}

// PlaySlot toggles playback of one slot, as clicking its play glyph does
func (m *Manager) PlaySlot(slot domain.Slot) tea.Cmd {
	if m.inert || !m.clocks[slot].Live() {
		return nil
	}
	if m.live == LiveBoth {
		m.active = slot
	}
	return m.clocks[slot].PlayPause()
}

// ToggleActive switches Space between the two animations when both slots
// have one; the other is paused and faded.
func (m *Manager) ToggleActive() {
	switch m.live {
	case LiveBoth:
		m.active = m.active.Other()
		m.clocks[m.active].SetFaded(false)
		other := m.clocks[m.active.Other()]
		other.Pause()
		other.SetFaded(true)
	case LiveEven:
		m.clocks[domain.SlotEven].SetFaded(false)
	case LiveOdd:
		m.clocks[domain.SlotOdd].SetFaded(false)
	}
}
