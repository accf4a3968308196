// Package slider maps pointer positions along a track to a fraction in [0,1].
//
// A Slider knows nothing about what the fraction means. It owns the thumb
// position, the drag capture and the track geometry, and reports every
// change of the fraction through its OnChange callback.
package slider

import "math"

// Rect is a screen rectangle in layout units (terminal cells)
type Rect struct {
	X, Y, W, H float64
}

// Size is the extent of the thumb
type Size struct {
	W, H float64
}

// Pointer is one pointer sample in screen coordinates
type Pointer struct {
	ID   int
	X, Y float64
}

// Options configure a slider at construction
type Options struct {
	Margin   float64           // gap kept at each end of the track, in units
	AutoHide bool              // hide the control when a drag ends
	OnChange func(frac float64) // called on every thumb move
}

// Geometry is the screen mapping derived from the last Configure
type Geometry struct {
	Track    Rect
	Thumb    Size
	Vertical bool
	Full     float64 // usable travel of the thumb
	Zero     float64 // screen coordinate of fraction 0
}

// Slider is a draggable thumb on a track
type Slider struct {
	opts Options
	geo  Geometry

	frac      float64
	offset    float64 // thumb position minus pointer position while dragging
	dragging  bool
	pointerID int
	hidden    bool
	alert     func()
}

// New creates a slider; its geometry is invalid until the first Configure
func New(opts Options) *Slider {
	return &Slider{
		opts:   opts,
		hidden: opts.AutoHide,
	}
}

// Configure measures the track and recomputes the screen mapping.
// It must run on every resize. A drag in progress is ended with a final
// commit at the current fraction. The fraction itself never changes.
func (s *Slider) Configure(track Rect, thumb Size, unit float64) {
	if s.dragging {
		s.release()
		s.MoveThumb(s.frac)
	}

	margin := s.opts.Margin * unit
	geo := Geometry{
		Track:    track,
		Thumb:    thumb,
		Vertical: track.H > track.W,
	}
	if geo.Vertical {
		geo.Full = track.H - 2*margin - thumb.H
		geo.Zero = track.Y + margin
	} else {
		geo.Full = track.W - 2*margin - thumb.W
		geo.Zero = track.X + margin
	}
	s.geo = geo
	s.offset = 0
}

// Geometry returns the current screen mapping
func (s *Slider) Geometry() Geometry {
	return s.geo
}

// Valid reports whether the slider has usable geometry
func (s *Slider) Valid() bool {
	return s.geo.Full > 0
}

// Frac returns the current fraction
func (s *Slider) Frac() float64 {
	return s.frac
}

// Dragging reports whether a pointer currently owns the thumb
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Hidden reports whether the control is hidden
func (s *Slider) Hidden() bool {
	return s.hidden
}

// Hide hides the control without touching the fraction
func (s *Slider) Hide() {
	s.hidden = true
}

// SetAlert installs a callback fired synchronously when a drag begins
func (s *Slider) SetAlert(fn func()) {
	s.alert = fn
}

// MoveThumb sets the fraction, clamped to [0,1], and reports it
func (s *Slider) MoveThumb(frac float64) {
	s.frac = Clamp01(frac)
	if s.opts.OnChange != nil {
		s.opts.OnChange(s.frac)
	}
}

// Activate moves the thumb and shows the control
func (s *Slider) Activate(frac float64) {
	s.MoveThumb(frac)
	s.hidden = false
}

// FracAt maps a pointer sample to a fraction using the current drag offset
func (s *Slider) FracAt(p Pointer) float64 {
	if !s.Valid() {
		return s.frac
	}
	return Clamp01((s.axis(p) + s.offset - s.geo.Zero) / s.geo.Full)
}

// BeginDrag captures the pointer. The thumb does not jump to the pointer:
// the offset between them is kept for the whole drag.
func (s *Slider) BeginDrag(p Pointer) bool {
	if s.dragging {
		return false
	}
	if s.alert != nil {
		s.alert()
	}
	now := s.frac*s.geo.Full + s.geo.Zero
	s.offset = now - s.axis(p)
	s.pointerID = p.ID
	s.dragging = true
	return true
}

// Drag follows the captured pointer
func (s *Slider) Drag(p Pointer) {
	if !s.dragging || p.ID != s.pointerID {
		return
	}
	s.MoveThumb(s.FracAt(p))
}

// EndDrag releases the pointer, committing a last update when a sample is given
func (s *Slider) EndDrag(p *Pointer) {
	if !s.dragging {
		return
	}
	if p != nil {
		if p.ID != s.pointerID {
			return
		}
		s.MoveThumb(s.FracAt(*p))
	}
	s.release()
}

func (s *Slider) release() {
	s.dragging = false
	s.pointerID = 0
	if s.opts.AutoHide {
		s.hidden = true
	}
}

// ThumbRect returns where the thumb is drawn
func (s *Slider) ThumbRect() Rect {
	start := s.geo.Zero + s.frac*s.geo.Full
	t := s.geo.Track
	if s.geo.Vertical {
		return Rect{X: t.X + (t.W-s.geo.Thumb.W)/2, Y: start, W: s.geo.Thumb.W, H: s.geo.Thumb.H}
	}
	return Rect{X: start, Y: t.Y + (t.H-s.geo.Thumb.H)/2, W: s.geo.Thumb.W, H: s.geo.Thumb.H}
}

// HitThumb reports whether the cell (x, y) lies on the thumb
func (s *Slider) HitThumb(x, y int) bool {
	if !s.Valid() || s.hidden {
		return false
	}
	r := s.ThumbRect()
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	w, h := int(math.Max(1, math.Ceil(r.W))), int(math.Max(1, math.Ceil(r.H)))
	return x >= x0 && x < x0+w && y >= y0 && y < y0+h
}

func (s *Slider) axis(p Pointer) float64 {
	if s.geo.Vertical {
		return p.Y
	}
	return p.X
}

// Clamp01 clamps f to [0,1]; NaN maps to 0
func Clamp01(f float64) float64 {
	if f > 1 {
		return 1
	}
	if f >= 0 {
		return f
	}
	return 0
}
