package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"booklike/internal/book"
	"booklike/internal/domain"
)

// Spine is the edge a page rotates around
type Spine int

const (
	SpineRight Spine = iota
	SpineLeft
	SpineBottom
	SpineTop
)

// SpineOf returns the binding edge of a slot. The even page is bound on
// its right in landscape and at its bottom in portrait.
func SpineOf(slot domain.Slot, landscape bool) Spine {
	switch {
	case landscape && slot == domain.SlotEven:
		return SpineRight
	case landscape:
		return SpineLeft
	case slot == domain.SlotEven:
		return SpineBottom
	default:
		return SpineTop
	}
}

// Visible is the share of a page still facing the reader, given its
// classes and rotation progress. A page easing in keeps MidTurn for its
// whole rotation; MidTurn without EaseIn is a page still edge-on.
func Visible(c book.Classes, progress float64) float64 {
	switch {
	case c.Has(book.EaseIn):
		return 1 - progress
	case c.Has(book.MidTurn):
		return 0
	case c.Has(book.EaseOut):
		return progress
	default:
		return 1
	}
}

// Compose lays a rotating page over the page beneath it. Both inputs must
// be rendered blocks of the same size. visible is the share of top that
// stays on screen, measured from the spine.
func Compose(top, under string, visible float64, spine Spine) string {
	if visible >= 1 {
		return top
	}
	topLines := strings.Split(top, "\n")
	underLines := strings.Split(under, "\n")
	if len(underLines) < len(topLines) {
		underLines = append(underLines, make([]string, len(topLines)-len(underLines))...)
	}

	switch spine {
	case SpineTop, SpineBottom:
		h := len(topLines)
		keep := int(float64(h)*max(visible, 0) + 0.5)
		out := make([]string, h)
		for i := range out {
			fromTop := i < keep
			if spine == SpineBottom {
				fromTop = i >= h-keep
			}
			if fromTop {
				out[i] = topLines[i]
			} else {
				out[i] = underLines[i]
			}
		}
		return strings.Join(out, "\n")
	}

	out := make([]string, len(topLines))
	for i, line := range topLines {
		w := ansi.StringWidth(line)
		keep := int(float64(w)*max(visible, 0) + 0.5)
		if spine == SpineRight {
			out[i] = ansi.Truncate(underLines[i], w-keep, "") + ansi.TruncateLeft(line, w-keep, "")
		} else {
			out[i] = ansi.Truncate(line, keep, "") + ansi.TruncateLeft(underLines[i], keep, "")
		}
	}
	return strings.Join(out, "\n")
}
