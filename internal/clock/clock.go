// Package clock drives a [0,1] animation progress over a fixed duration.
//
// Frames are bubbletea tick messages. Every scheduled frame carries the
// clock id and a tag; pausing bumps the tag so a frame already in flight
// is dropped when it arrives, which is how a pending frame is cancelled.
package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"

	"booklike/internal/slider"
)

// ResetThreshold is the progress from which play/pause restarts from zero
const ResetThreshold = 0.995

// FlashDuration is how long a faded control stays visible after a flash
const FlashDuration = 20 * time.Millisecond

var lastID = atomic.NewInt64(0)

// FrameFunc draws the animation at a progress in [0,1]
type FrameFunc func(frac float64)

// FrameMsg is one display refresh delivered to a clock
type FrameMsg struct {
	ID   int
	Tag  int
	Time time.Time
}

type flashMsg struct {
	id  int
	tag int
}

// Clock is the playback engine of one display slot
type Clock struct {
	id       int
	tag      int
	flashTag int

	slider   *slider.Slider
	draw     FrameFunc
	duration time.Duration
	interval time.Duration

	begin   time.Time
	running bool
	faded   bool

	now func() time.Time
}

// New creates a clock that requests frames every interval
func New(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Second / 60
	}
	c := &Clock{
		id:       int(lastID.Inc()),
		interval: interval,
		now:      time.Now,
	}
	c.slider = slider.New(slider.Options{OnChange: c.onSlide})
	c.slider.SetAlert(c.Pause)
	return c
}

// ID returns the clock's unique identifier
func (c *Clock) ID() int {
	return c.id
}

// Slider returns the scrub slider owned by the clock
func (c *Clock) Slider() *slider.Slider {
	return c.slider
}

// Progress returns the last delivered progress
func (c *Clock) Progress() float64 {
	return c.slider.Frac()
}

// Duration returns the configured duration
func (c *Clock) Duration() time.Duration {
	return c.duration
}

// Running reports whether playback is active
func (c *Clock) Running() bool {
	return c.running
}

// Live reports whether a frame callback is bound
func (c *Clock) Live() bool {
	return c.draw != nil
}

// Faded reports whether the control is drawn faded
func (c *Clock) Faded() bool {
	return c.faded
}

// SetFaded fades or restores the control
func (c *Clock) SetFaded(faded bool) {
	c.faded = faded
}

// Configure binds a new animation. Playback stops, the slider moves to
// initial and draw is called once with it so the shown frame matches.
func (c *Clock) Configure(duration time.Duration, initial float64, draw FrameFunc) {
	c.draw = draw
	c.duration = duration
	c.Reset(false)
	c.slider.MoveThumb(initial)
}

// Detach stops playback and drops the frame callback
func (c *Clock) Detach() {
	c.Reset(false)
	c.draw = nil
	c.duration = 0
}

// Start resumes playback from the current progress
func (c *Clock) Start() tea.Cmd {
	if c.running || c.draw == nil || c.duration <= 0 {
		return nil
	}
	elapsed := time.Duration(c.slider.Frac() * float64(c.duration))
	c.begin = c.now().Add(-elapsed)
	c.running = true
	c.faded = true
	return c.frame()
}

// Pause cancels the pending frame and keeps the last delivered progress
func (c *Clock) Pause() {
	c.tag++
	c.running = false
	c.begin = time.Time{}
}

// Seek pauses and moves to frac
func (c *Clock) Seek(frac float64) {
	c.Pause()
	c.slider.MoveThumb(frac)
}

// Reset stops playback, optionally rewinding to zero
func (c *Clock) Reset(moveToZero bool) {
	c.Pause()
	if moveToZero {
		c.slider.MoveThumb(0)
	}
	c.faded = false
}

// PlayPause toggles playback; a finished animation is rewound instead of resumed
func (c *Clock) PlayPause() tea.Cmd {
	switch {
	case c.running:
		c.Pause()
		return nil
	case c.slider.Frac() >= ResetThreshold:
		c.Reset(true)
		return nil
	default:
		return c.Start()
	}
}

// Flash briefly shows a faded control
func (c *Clock) Flash() tea.Cmd {
	if !c.faded {
		return nil
	}
	c.faded = false
	c.flashTag++
	id, tag := c.id, c.flashTag
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashMsg{id: id, tag: tag}
	})
}

// Update handles frame and flash messages addressed to this clock
func (c *Clock) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		return c.Step(msg)
	case flashMsg:
		if msg.id == c.id && msg.tag == c.flashTag {
			c.faded = true
		}
	}
	return nil
}

// Step advances playback to the frame time
func (c *Clock) Step(msg FrameMsg) tea.Cmd {
	if msg.ID != c.id || msg.Tag != c.tag || !c.running || c.draw == nil {
		return nil
	}
	if msg.Time.IsZero() {
		// no usable timestamp; wait for the next refresh
		return c.frame()
	}
	elapsed := msg.Time.Sub(c.begin)
	if elapsed < 0 {
		return c.frame()
	}
	frac := slider.Clamp01(float64(elapsed) / float64(c.duration))
	c.slider.MoveThumb(frac)
	if frac < 1 {
		return c.frame()
	}
	// finished: the delivered frame stands, nothing left to cancel
	c.running = false
	c.begin = time.Time{}
	return nil
}

func (c *Clock) frame() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag, Time: t}
	})
}

func (c *Clock) onSlide(frac float64) {
	if c.draw != nil {
		c.draw(frac)
	}
}
