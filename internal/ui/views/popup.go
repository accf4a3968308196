package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup overlay on top of main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := min(lipgloss.Width(styledPopup), max(width-4, 1))
	popupLines := strings.Split(styledPopup, "\n")
	if len(popupLines) > height-2 {
		popupLines = popupLines[:max(height-2, 1)]
	}
	x := max((width-modalW)/2, 0)
	y := max((height-len(popupLines))/2, 0)

	base := strings.Split(pr.desaturate(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	for i, line := range popupLines {
		row := y + i
		if row >= len(base) {
			break
		}
		under := base[row]
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		base[row] = left + ansi.Truncate(line, modalW, "") + ansi.TruncateLeft(under, x+modalW, "")
	}
	return strings.Join(base, "\n")
}

// desaturate strips styles from s and recolors it dim
func (pr *PopupRenderer) desaturate(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		lines[i] = pr.styles.Dim.Render(l)
	}
	return strings.Join(lines, "\n")
}
