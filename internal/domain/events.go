package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNavigationSettled EventType = "NavigationSettled"
	EventEdgeReached       EventType = "EdgeReached"
	EventThemeChanged      EventType = "ThemeChanged"
	EventPageShown         EventType = "PageShown"
	EventPageHidden        EventType = "PageHidden"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NavigationSettledEvent is emitted when a page turn completes
type NavigationSettledEvent struct {
	From     int
	To       int
	Animated bool
}

func (e NavigationSettledEvent) Type() EventType { return EventNavigationSettled }

// EdgeReachedEvent is emitted when navigation pushes past the first or last pair
type EdgeReachedEvent struct {
	Current   int
	Requested int
}

func (e EdgeReachedEvent) Type() EventType { return EventEdgeReached }

// ThemeChangedEvent is emitted when the color theme changes
type ThemeChangedEvent struct {
	Theme string
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// PageShownEvent is emitted when a page becomes fully visible
type PageShownEvent struct {
	Page PageID
}

func (e PageShownEvent) Type() EventType { return EventPageShown }

// PageHiddenEvent is emitted when a page is fully removed from view
type PageHiddenEvent struct {
	Page PageID
}

func (e PageHiddenEvent) Type() EventType { return EventPageHidden }

// ErrorEvent is emitted when a background operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
