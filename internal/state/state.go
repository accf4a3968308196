// Package state persists the reading position and theme between runs.
package state

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"booklike/internal/eventbus"
)

// State is what survives a restart
type State struct {
	CurrentPair int    `toml:"current_pair"`
	Theme       string `toml:"theme,omitempty"`
}

// Normalize resets an index outside [0, pairs) to 0
func (s State) Normalize(pairs int) State {
	if s.CurrentPair < 0 || s.CurrentPair >= pairs {
		s.CurrentPair = 0
	}
	return s
}

// Store reads and writes the state file
type Store struct {
	mu    sync.Mutex
	path  string
	state State
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. A missing file is the zero state.
func (s *Store) Load() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.state = State{}
		return s.state, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to read state file: %w", err)
	}

	var st State
	if err := toml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("failed to parse state file: %w", err)
	}
	s.state = st
	return st, nil
}

// Current returns the last loaded or saved state
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Save writes st, replacing the file atomically
func (s *Store) Save(st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(st)
}

// Update applies fn to the current state and saves the result
func (s *Store) Update(fn func(*State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	fn(&st)
	return s.write(st)
}

func (s *Store) write(st State) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	s.state = st
	return nil
}

// Attach saves the state whenever navigation settles or the theme changes.
// Write failures are logged and otherwise ignored. The returned function
// detaches the store.
func (s *Store) Attach(bus eventbus.EventBus) func() {
	save := func(fn func(*State)) {
		if err := s.Update(fn); err != nil {
			slog.Error("failed to save state", "path", s.path, "error", err)
		}
	}
	offNav := bus.Subscribe(eventbus.EventNavigationSettled, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.NavigationSettledEvent)
		save(func(st *State) { st.CurrentPair = ev.To })
	})
	offTheme := bus.Subscribe(eventbus.EventThemeChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ThemeChangedEvent)
		save(func(st *State) { st.Theme = ev.Theme })
	})
	return func() {
		offNav()
		offTheme()
	}
}
