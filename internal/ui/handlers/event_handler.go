package handlers

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/eventbus"
	"booklike/internal/ui/state"
)

// StatusTimeout is how long a status message stays up
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status message it was scheduled for
type ClearStatusMsg struct {
	Seq int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
	log   *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{
		state: appState,
		log:   logger,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.NavigationSettledEvent:
		h.state.Settled = e.To
		if e.Animated {
			h.state.Turns++
		}

	case eventbus.EdgeReachedEvent:
		where := "last"
		if e.Requested < 0 {
			where = "first"
		}
		return h.status(fmt.Sprintf("Already at the %s page", where))

	case eventbus.ThemeChangedEvent:
		return h.status("Theme: " + e.Theme)

	case eventbus.PageShownEvent:
		h.state.SetVisible(e.Page, true)

	case eventbus.PageHiddenEvent:
		h.state.SetVisible(e.Page, false)

	case eventbus.ErrorEvent:
		h.log.Error(e.Message, "error", e.Err)
		return h.status(fmt.Sprintf("Error: %s", e.Message))
	}

	return nil
}

// Status shows msg for StatusTimeout
func (h *EventHandler) Status(msg string) tea.Cmd {
	return h.status(msg)
}

func (h *EventHandler) status(msg string) tea.Cmd {
	seq := h.state.SetStatus(msg)
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
