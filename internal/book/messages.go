package book

import "booklike/internal/domain"

// TransitionEndMsg reports that a page's turn finished or was cancelled.
// Both forms advance the turn the same way.
type TransitionEndMsg struct {
	Page     domain.PageID
	Turn     int
	Canceled bool
}

// deferMsg runs the pending next-tick step of a turn
type deferMsg struct {
	seq int
}

// holdMsg fires when a pager has been held long enough to reveal the scrubber
type holdMsg struct {
	seq int
}

// pulseMsg ends the attention pulse on the back pager
type pulseMsg struct {
	seq int
}
