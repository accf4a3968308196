package views

import (
	"booklike/internal/book"
	"booklike/internal/slider"
)

// PagerSize is the thickness of a pager button
const PagerSize = 3

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) slider() slider.Rect {
	return slider.Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Layout places every part of the screen
type Layout struct {
	Width, Height int
	Landscape     bool

	Header  Rect
	Back    Rect
	Forward Rect
	Pages   [2]Rect
	Play    [2]Rect
	Anim    [2]Rect
	Scrub   Rect
	Footer  Rect
}

// Compute lays the book out on a w by h terminal. Pages sit side by side
// when the window is wider than it is tall, counting a cell as twice as
// tall as it is wide, and one above the other otherwise.
func Compute(w, h int) Layout {
	w, h = max(w, 0), max(h, 4)
	l := Layout{Width: w, Height: h, Landscape: w >= 2*h}
	l.Header = Rect{0, 0, w, 1}
	l.Scrub = Rect{0, h - 2, w, 1}
	l.Footer = Rect{0, h - 1, w, 1}

	top, body := 1, h-3
	if l.Landscape {
		pw := max(0, (w-2*PagerSize)/2)
		l.Back = Rect{0, top, PagerSize, body}
		l.Pages[0] = Rect{PagerSize, top, pw, body}
		l.Pages[1] = Rect{PagerSize + pw, top, max(0, w-2*PagerSize-pw), body}
		l.Forward = Rect{w - PagerSize, top, PagerSize, body}
	} else {
		ph := max(0, (body-2)/2)
		l.Back = Rect{0, top, w, 1}
		l.Pages[0] = Rect{0, top + 1, w, ph}
		l.Pages[1] = Rect{0, top + 1 + ph, w, max(0, body-2-ph)}
		l.Forward = Rect{0, top + body - 1, w, 1}
	}

	// the control row is the last row inside each page border
	for i, p := range l.Pages {
		row := p.Y + p.H - 2
		l.Play[i] = Rect{p.X + 2, row, 1, 1}
		l.Anim[i] = Rect{p.X + 4, row, max(0, p.W-6), 1}
	}
	return l
}

// Geometry is the slider layout handed to the navigation engine
func (l Layout) Geometry() book.Geometry {
	return book.Geometry{
		Unit:      1,
		Scrubber:  l.Scrub.slider(),
		ScrubSize: slider.Size{W: 2, H: 1},
		Animation: [2]slider.Rect{l.Anim[0].slider(), l.Anim[1].slider()},
		AnimSize:  slider.Size{W: 1, H: 1},
	}
}
