package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLandscape(t *testing.T) {
	l := Compute(100, 30)

	assert.True(t, l.Landscape)
	assert.Equal(t, Rect{0, 1, 3, 27}, l.Back)
	assert.Equal(t, Rect{3, 1, 47, 27}, l.Pages[0])
	assert.Equal(t, Rect{50, 1, 47, 27}, l.Pages[1])
	assert.Equal(t, Rect{97, 1, 3, 27}, l.Forward)
	assert.Equal(t, Rect{0, 28, 100, 1}, l.Scrub)
	assert.Equal(t, Rect{0, 29, 100, 1}, l.Footer)
	assert.Equal(t, Rect{54, 26, 41, 1}, l.Anim[1])
	assert.Equal(t, Rect{52, 26, 1, 1}, l.Play[1])
}

func TestComputePortrait(t *testing.T) {
	l := Compute(60, 40)

	assert.False(t, l.Landscape)
	assert.Equal(t, Rect{0, 1, 60, 1}, l.Back)
	assert.Equal(t, Rect{0, 2, 60, 17}, l.Pages[0])
	assert.Equal(t, Rect{0, 19, 60, 18}, l.Pages[1])
	assert.Equal(t, Rect{0, 37, 60, 1}, l.Forward)
}

func TestGeometryAxes(t *testing.T) {
	g := Compute(100, 30).Geometry()

	assert.Equal(t, 100.0, g.Scrubber.W)
	assert.Equal(t, 1.0, g.Scrubber.H)
	assert.Equal(t, 41.0, g.Animation[0].W)
}

func TestRectContains(t *testing.T) {
	r := Rect{2, 3, 4, 1}

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 3))
	assert.False(t, r.Contains(6, 3))
	assert.False(t, r.Contains(2, 4))
}
