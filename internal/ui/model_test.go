package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklike/internal/book"
	"booklike/internal/domain"
	"booklike/internal/eventbus"
	"booklike/internal/theme"
	"booklike/internal/ui/handlers"
	"booklike/internal/ui/input/keys"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func newTestModel(t *testing.T, n int, opts book.Options) (*Model, *recordingBus) {
	t.Helper()
	pages := make([]domain.Page, n)
	for i := range pages {
		pages[i] = domain.Page{Title: fmt.Sprintf("Page %d", i+1)}
	}
	bus := &recordingBus{}
	m := NewModel(Options{
		Bus:   bus,
		Book:  book.New(pages, 0, opts),
		Title: "Test Book",
		Theme: theme.Default,
		Keys:  keys.DefaultKeyMap(),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, bus
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(Options{Book: book.New(nil, 0, book.Options{}), Keys: keys.DefaultKeyMap()})
	assert.Equal(t, "Loading...", m.View())
}

func TestKeysStepPages(t *testing.T) {
	m, _ := newTestModel(t, 6, book.Options{NoTransitions: true})

	m.Update(runes("l"))
	assert.Equal(t, 1, m.book.Current())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, m.book.Current())

	m.Update(runes("h"))
	assert.Equal(t, 1, m.book.Current())

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.book.Current())
}

func TestAnimatedTurnSchedulesRedraw(t *testing.T) {
	m, _ := newTestModel(t, 6, book.Options{})

	_, cmd := m.Update(runes("l"))

	require.NotNil(t, cmd)
	assert.True(t, m.book.Turning())
	assert.True(t, m.redrawing)
}

func TestInfoToggle(t *testing.T) {
	m, _ := newTestModel(t, 4, book.Options{NoTransitions: true})

	m.Update(runes("i"))
	assert.True(t, m.book.InfoVisible())
	assert.Contains(t, m.View(), "Pair 1 of 2")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.book.InfoVisible())
}

func TestThemeKeysPublish(t *testing.T) {
	m, bus := newTestModel(t, 4, book.Options{NoTransitions: true})

	m.Update(runes("d"))

	assert.True(t, m.state.Theme.Mode.IsDark())
	require.NotEmpty(t, bus.events)
	last := bus.events[len(bus.events)-1]
	assert.Equal(t, eventbus.ThemeChangedEvent{Theme: m.state.Theme.String()}, last)
}

func TestPagerClickAtStartTogglesInfo(t *testing.T) {
	m, _ := newTestModel(t, 4, book.Options{NoTransitions: true})
	back := m.layout.Back

	m.Update(tea.MouseMsg{X: back.X + 1, Y: back.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: back.X + 1, Y: back.Y + 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.True(t, m.book.InfoVisible())
}

func TestPagerClickSteps(t *testing.T) {
	m, _ := newTestModel(t, 6, book.Options{NoTransitions: true})
	fwd := m.layout.Forward

	_, cmd := m.Update(tea.MouseMsg{X: fwd.X + 1, Y: fwd.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	m.Update(tea.MouseMsg{X: fwd.X + 1, Y: fwd.Y + 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, 1, m.book.Current())
}

func TestPagerLeaveCancels(t *testing.T) {
	m, _ := newTestModel(t, 6, book.Options{NoTransitions: true})
	fwd := m.layout.Forward

	m.Update(tea.MouseMsg{X: fwd.X + 1, Y: fwd.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, 0, m.book.Current())
}

func TestEventsSetStatus(t *testing.T) {
	m, _ := newTestModel(t, 4, book.Options{NoTransitions: true})

	m.Update(EventMsg{Event: eventbus.EdgeReachedEvent{Current: 0, Requested: -1}})
	assert.Equal(t, "Already at the first page", m.state.StatusMessage)

	m.Update(handlers.ClearStatusMsg{Seq: m.state.StatusSeq})
	assert.Empty(t, m.state.StatusMessage)
}

func TestGoToPromptNavigates(t *testing.T) {
	m, _ := newTestModel(t, 8, book.Options{NoTransitions: true})

	m.Update(runes("g"))
	assert.Contains(t, m.View(), "page")
	m.Update(runes("5"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 2, m.book.Current())
}

func TestBadThemeShowsStatus(t *testing.T) {
	m, _ := newTestModel(t, 4, book.Options{NoTransitions: true})

	m.Update(runes("T"))
	for _, r := range "solarized white" {
		m.Update(runes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, theme.Default, m.state.Theme)
	assert.NotEmpty(t, m.state.StatusMessage)
}
