// Package demo holds the animations of the built-in book. Each hook draws
// into a Canvas that the page view reads back by action id.
package demo

import (
	"strings"
	"time"

	"booklike/internal/actions"
	"booklike/internal/domain"
)

// Visibility is what the engine last told a hook about its page
type Visibility int

const (
	Hidden Visibility = iota
	Shown
	Standby
)

// Canvas keeps the latest frame drawn for each action id.
// It is only touched from the update loop.
type Canvas struct {
	frames map[string]string
	vis    map[string]Visibility
}

// NewCanvas creates an empty canvas
func NewCanvas() *Canvas {
	return &Canvas{
		frames: make(map[string]string),
		vis:    make(map[string]Visibility),
	}
}

// Frame returns the text last drawn for action
func (c *Canvas) Frame(action string) string {
	return c.frames[action]
}

// Visibility returns the page state last reported for action
func (c *Canvas) Visibility(action string) Visibility {
	return c.vis[action]
}

// Hooks returns the hooks of the demo book keyed by action id
func Hooks(c *Canvas, width int) map[string]actions.Hook {
	return map[string]actions.Hook{
		"sweep":  NewSweep(c, "sweep", width, 5*time.Second),
		"sweep2": NewSweep(c, "sweep2", width, 3*time.Second),
		"stages": NewStages(c, "stages", width),
	}
}

// tracker records visibility changes on the canvas
type tracker struct {
	canvas *Canvas
	action string
}

func (t tracker) Show(domain.Page)    { t.canvas.vis[t.action] = Shown }
func (t tracker) Hide(domain.Page)    { t.canvas.vis[t.action] = Hidden }
func (t tracker) Standby(domain.Page) { t.canvas.vis[t.action] = Standby }

// Sweep fills a bar from left to right
type Sweep struct {
	tracker
	width    int
	duration time.Duration
}

// NewSweep creates a sweep of width cells lasting d
func NewSweep(c *Canvas, action string, width int, d time.Duration) *Sweep {
	return &Sweep{tracker: tracker{canvas: c, action: action}, width: width, duration: d}
}

func (s *Sweep) Duration() time.Duration {
	return s.duration
}

func (s *Sweep) DrawFrame(frac float64) {
	s.canvas.frames[s.action] = bar(s.width, frac)
}

// Stages fills a bar, blinks it and drains it again
type Stages struct {
	tracker
	width int
	parts *actions.Multipart
}

// NewStages creates the three stage animation
func NewStages(c *Canvas, action string, width int) *Stages {
	return &Stages{
		tracker: tracker{canvas: c, action: action},
		width:   width,
		parts:   actions.NewMultipart(1500, 2000, 1500),
	}
}

func (s *Stages) Duration() time.Duration {
	return s.parts.Duration()
}

func (s *Stages) DrawFrame(frac float64) {
	s.parts.Draw(frac,
		func(f float64) { s.draw("fill ", bar(s.width, f)) },
		func(f float64) {
			if int(f*8)%2 == 0 {
				s.draw("hold ", bar(s.width, 1))
			} else {
				s.draw("hold ", strings.Repeat(" ", s.width))
			}
		},
		func(f float64) { s.draw("drain", bar(s.width, 1-f)) },
	)
}

func (s *Stages) draw(label, body string) {
	s.canvas.frames[s.action] = label + " " + body
}

func bar(width int, frac float64) string {
	if width <= 0 {
		return ""
	}
	n := int(frac*float64(width) + 0.5)
	n = max(0, min(n, width))
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}
