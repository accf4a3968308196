package book

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/slider"
)

// AtStart reports whether the back pager shows the info glyph
func (m *Manager) AtStart() bool {
	return m.current <= 0
}

// AtEnd reports whether the forward pager shows the info glyph
func (m *Manager) AtEnd() bool {
	return m.current >= len(m.pairs)-1
}

// PageFrac is the scrubber position of the current pair
func (m *Manager) PageFrac() float64 {
	if len(m.pairs) == 0 {
		return 0
	}
	return (float64(m.current) + 0.5) / float64(len(m.pairs))
}

// PagerPress starts a press on the pager stepping delta pairs. Holding it
// for the long-press delay reveals the scrubber instead of stepping.
func (m *Manager) PagerPress(delta int) tea.Cmd {
	if m.inert {
		return nil
	}
	m.pressed = true
	next := m.current + delta
	if next < 0 || next >= len(m.pairs) || m.hold != nil {
		return nil
	}
	m.holdSeq++
	m.hold = &pagerHold{seq: m.holdSeq, delta: delta, armed: true}
	seq := m.holdSeq
	return tea.Tick(m.opts.LongPress, func(time.Time) tea.Msg { return holdMsg{seq: seq} })
}

// PagerRelease ends a pager press. A short press steps; a press on an
// info glyph toggles the info panel.
func (m *Manager) PagerRelease() tea.Cmd {
	if !m.pressed {
		return nil
	}
	m.pressed = false
	h := m.hold
	m.hold = nil
	if h == nil {
		m.ToggleInfo()
		return nil
	}
	if h.armed {
		return m.Change(h.delta)
	}
	return nil
}

// PagerLeave abandons a pager press when the pointer leaves the button
func (m *Manager) PagerLeave() {
	m.pressed = false
	m.hold = nil
}

func (m *Manager) onHold(msg holdMsg) {
	if m.hold == nil || m.hold.seq != msg.seq || !m.hold.armed {
		return
	}
	m.hold.armed = false
	m.scrubber.Activate(m.PageFrac())
}

func (m *Manager) onScrub(frac float64) {
	n := len(m.pairs)
	if n == 0 {
		return
	}
	p := int(math.Floor(frac * float64(n)))
	p = max(0, min(p, n-1))
	m.GoTo(p, true)
}

// InfoVisible reports whether the info panel is shown
func (m *Manager) InfoVisible() bool {
	return m.info
}

// ToggleInfo shows or hides the info panel
func (m *Manager) ToggleInfo() {
	m.info = !m.info
	m.stopPulse()
}

// HideInfo closes the info panel
func (m *Manager) HideInfo() {
	m.info = false
}

// Pulsing reports whether the back pager is drawing attention to itself
func (m *Manager) Pulsing() bool {
	return m.pulsing
}

func (m *Manager) stopPulse() {
	if m.pulsing {
		m.pulsing = false
		m.pulseSeq++
	}
}

// Geometry is the screen layout of the engine's sliders, in cells
type Geometry struct {
	Unit      float64
	Scrubber  slider.Rect
	ScrubSize slider.Size
	Animation [2]slider.Rect
	AnimSize  slider.Size
}

// Resize lays out all sliders again. A turn in progress is cancelled.
func (m *Manager) Resize(g Geometry) tea.Cmd {
	m.scrubber.Configure(g.Scrubber, g.ScrubSize, g.Unit)
	for i, c := range m.clocks {
		c.Slider().Configure(g.Animation[i], g.AnimSize, g.Unit)
	}
	m.captured = nil
	return m.Cancel()
}

// PointerDown grabs the visible thumb under the pointer, if any. Only one
// slider can be dragged at a time.
func (m *Manager) PointerDown(p slider.Pointer) bool {
	if m.captured != nil {
		return false
	}
	x, y := int(p.X), int(p.Y)
	for _, s := range m.grabbable() {
		if s.HitThumb(x, y) && s.BeginDrag(p) {
			m.captured = s
			return true
		}
	}
	return false
}

// PointerMove drags the captured slider
func (m *Manager) PointerMove(p slider.Pointer) {
	if m.captured != nil {
		m.captured.Drag(p)
	}
}

// PointerUp releases the captured slider, committing p
func (m *Manager) PointerUp(p slider.Pointer) {
	if m.captured == nil {
		return
	}
	s := m.captured
	m.captured = nil
	s.EndDrag(&p)
}

// Captured reports whether a slider drag is in progress
func (m *Manager) Captured() bool {
	return m.captured != nil
}

func (m *Manager) grabbable() []*slider.Slider {
	var out []*slider.Slider
	if !m.scrubber.Hidden() {
		out = append(out, m.scrubber)
	}
	if m.inert {
		return out
	}
	for _, c := range m.clocks {
		if c.Live() {
			out = append(out, c.Slider())
		}
	}
	return out
}
