package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"booklike/internal/clock"
	"booklike/internal/domain"
)

// FrameSource returns the latest animation frame drawn for an action id
type FrameSource interface {
	Frame(action string) string
}

// PageRenderer draws single pages and their animation controls
type PageRenderer struct {
	styles *Styles
}

// NewPageRenderer creates a new page renderer
func NewPageRenderer(styles *Styles) *PageRenderer {
	return &PageRenderer{styles: styles}
}

// RenderPage draws page p into a bordered box the size of rect. control,
// when not empty, replaces the last inner row.
func (pr *PageRenderer) RenderPage(p domain.Page, rect Rect, frame, control string) string {
	innerW, innerH := max(rect.W-2, 0), max(rect.H-2, 0)
	if innerW == 0 || innerH == 0 {
		return lipgloss.NewStyle().Width(rect.W).Height(rect.H).Render("")
	}

	var lines []string
	if p.Blank {
		lines = append(lines, pr.styles.Blank.Render(strings.Repeat("·", innerW)))
	} else {
		lines = append(lines, pr.styles.PageTitle.Render(truncate(p.Title, innerW)), "")
		body := pr.styles.Body.Width(innerW).Render(p.Body)
		lines = append(lines, strings.Split(body, "\n")...)
		if frame != "" {
			lines = append(lines, "")
			for _, l := range strings.Split(frame, "\n") {
				lines = append(lines, pr.styles.Frame.Render(truncate(l, innerW)))
			}
		}
	}

	rows := innerH
	if control != "" {
		rows--
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	if control != "" {
		lines = append(lines, control)
	}

	return pr.styles.Page.
		Width(innerW).
		Height(innerH).
		MaxHeight(rect.H).
		Render(strings.Join(lines, "\n"))
}

// RenderControl draws the play glyph and the progress track of a clock.
// The row starts at the first cell inside the page border.
func (pr *PageRenderer) RenderControl(c *clock.Clock, track Rect, faded lipgloss.TerminalColor) string {
	glyph := "▶"
	if c.Running() {
		glyph = "⏸"
	}
	playStyle, thumbStyle := pr.styles.Play, pr.styles.Thumb
	if c.Faded() {
		playStyle = playStyle.Foreground(faded)
		thumbStyle = thumbStyle.Foreground(faded)
	}

	cells := make([]string, track.W)
	thumb := int(c.Slider().ThumbRect().X+0.5) - track.X
	for i := range cells {
		if i == thumb {
			cells[i] = thumbStyle.Render("●")
		} else {
			cells[i] = pr.styles.Track.Render("─")
		}
	}

	return " " + playStyle.Render(glyph) + " " + strings.Join(cells, "")
}

func truncate(s string, w int) string {
	return ansi.Truncate(s, w, "…")
}
