package state

import (
	"sort"

	"booklike/internal/domain"
	"booklike/internal/theme"
)

// AppState contains the UI state that lives outside the navigation engine
type AppState struct {
	Width  int
	Height int
	Theme  theme.Theme

	StatusMessage string // status bar message
	StatusSeq     int    // bumped on every new message so stale clears are ignored

	Visible map[domain.PageID]bool // pages the engine reported as shown
	Settled int                    // last pair a navigation settled on
	Turns   int                    // animated turns since start

	InPagerMode bool // an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState(t theme.Theme, current int) *AppState {
	return &AppState{
		Theme:   t,
		Visible: make(map[domain.PageID]bool),
		Settled: current,
	}
}

// SetStatus replaces the status message and returns its sequence number
func (s *AppState) SetStatus(msg string) int {
	s.StatusMessage = msg
	s.StatusSeq++
	return s.StatusSeq
}

// ClearStatus clears the status message if seq is still the latest one
func (s *AppState) ClearStatus(seq int) {
	if seq == s.StatusSeq {
		s.StatusMessage = ""
	}
}

// SetVisible records a page being shown or hidden
func (s *AppState) SetVisible(id domain.PageID, visible bool) {
	if visible {
		s.Visible[id] = true
	} else {
		delete(s.Visible, id)
	}
}

// VisiblePages returns the shown pages in order
func (s *AppState) VisiblePages() []domain.PageID {
	out := make([]domain.PageID, 0, len(s.Visible))
	for id := range s.Visible {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
