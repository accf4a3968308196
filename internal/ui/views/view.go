package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"booklike/internal/book"
	"booklike/internal/domain"
	"booklike/internal/theme"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout        Layout
	Title         string
	Book          *book.Manager
	Frames        FrameSource
	Theme         theme.Theme
	Pulse         float64 // back pager glow in [0,1] while pulsing
	StatusMessage string
	Prompt        string // text input line, replaces the help footer
	HelpModel     help.Model
	Keys          help.KeyMap
	InfoContent   string
}

// Renderer handles all view rendering
type Renderer struct {
	theme       theme.Theme
	styles      *Styles
	pageRender  *PageRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(t theme.Theme) *Renderer {
	r := &Renderer{}
	r.SetTheme(t)
	return r
}

// SetTheme rebuilds the styles for t
func (r *Renderer) SetTheme(t theme.Theme) {
	r.theme = t
	r.styles = NewStyles(t)
	r.pageRender = NewPageRenderer(r.styles)
	r.popupRender = NewPopupRenderer(r.styles)
}

// Styles returns the active styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	if l.Width <= 0 || state.Book == nil {
		return ""
	}

	var body string
	back, forward := r.renderPager(state, true), r.renderPager(state, false)
	even, odd := r.renderSlot(state, domain.SlotEven), r.renderSlot(state, domain.SlotOdd)
	if l.Landscape {
		body = lipgloss.JoinHorizontal(lipgloss.Top, back, even, odd, forward)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, back, even, odd, forward)
	}

	screen := strings.Join([]string{
		r.renderHeader(state),
		body,
		r.renderScrubber(state),
		r.renderFooter(state),
	}, "\n")
	screen = r.styles.Screen.Width(l.Width).MaxHeight(l.Height).Render(screen)

	if state.Book.InfoVisible() && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(screen, state.InfoContent, l.Height, l.Width, r.styles.InfoBox)
	}
	return screen
}

func (r *Renderer) renderHeader(state ViewState) string {
	b := state.Book
	title := r.styles.Title.Render(" " + state.Title + " ")

	pair := b.Pairs()[b.Current()]
	var numbers []string
	for _, id := range pair {
		if !b.Page(id).Blank {
			numbers = append(numbers, fmt.Sprint(int(id)+1))
		}
	}
	right := fmt.Sprintf("page %s of %d · %s ", strings.Join(numbers, "–"), pageCount(b), state.Theme)
	if state.Book.Turning() {
		right = "turning · " + right
	}

	gap := max(state.Layout.Width-lipgloss.Width(title)-lipgloss.Width(right), 1)
	return title + r.styles.Header.Render(strings.Repeat(" ", gap)+right)
}

func pageCount(b *book.Manager) int {
	n := 0
	for _, p := range b.Pages() {
		if !p.Blank {
			n++
		}
	}
	return n
}

// renderSlot draws the pages stacked in one slot. Only the top two can be
// on screen at once, the upper one folded around the spine.
func (r *Renderer) renderSlot(state ViewState, slot domain.Slot) string {
	b := state.Book
	rect := state.Layout.Pages[slot]
	ids := b.Display(slot)
	if len(ids) == 0 {
		return lipgloss.NewStyle().Width(rect.W).Height(rect.H).Render("")
	}

	top := ids[len(ids)-1]
	var control string
	if c := b.Clock(slot); c.Live() && !b.Turning() {
		control = r.pageRender.RenderControl(c, state.Layout.Anim[slot], r.styles.Palette.Faded(r.styles.Palette.Green))
	}
	upper := r.pageRender.RenderPage(b.Page(top), rect, r.frame(state, top), control)

	visible := Visible(b.Classes(top), b.TurnProgress(top))
	if visible >= 1 {
		return upper
	}
	var lower string
	if len(ids) > 1 {
		below := ids[len(ids)-2]
		lower = r.pageRender.RenderPage(b.Page(below), rect, r.frame(state, below), "")
	} else {
		lower = lipgloss.NewStyle().Width(rect.W).Height(rect.H).Render("")
	}
	return Compose(upper, lower, visible, SpineOf(slot, state.Layout.Landscape))
}

func (r *Renderer) frame(state ViewState, id domain.PageID) string {
	p := state.Book.Page(id)
	if state.Frames == nil || p.ActionID == "" {
		return ""
	}
	return state.Frames.Frame(p.ActionID)
}

// PagerGlyph picks the glyph of a pager button. A pager that cannot move
// any further shows the info glyph instead of its arrow.
func PagerGlyph(back, landscape, atEdge bool) string {
	switch {
	case atEdge:
		return "ⓘ"
	case back && landscape:
		return "◀"
	case back:
		return "▲"
	case landscape:
		return "▶"
	default:
		return "▼"
	}
}

func (r *Renderer) renderPager(state ViewState, back bool) string {
	b := state.Book
	rect := state.Layout.Forward
	atEdge := b.AtEnd()
	if back {
		rect, atEdge = state.Layout.Back, b.AtStart()
	}
	box := lipgloss.NewStyle().Width(rect.W).Height(rect.H)
	if b.Inert() {
		return box.Render("")
	}

	style := r.styles.Pager
	if back && b.Pulsing() {
		p := r.styles.Palette
		style = style.Foreground(theme.Blend(p.Dim0, p.Orange, state.Pulse))
	}
	glyph := style.Render(PagerGlyph(back, state.Layout.Landscape, atEdge))
	return lipgloss.Place(rect.W, rect.H, lipgloss.Center, lipgloss.Center, glyph)
}

func (r *Renderer) renderScrubber(state ViewState) string {
	w := state.Layout.Scrub.W
	s := state.Book.Scrubber()
	if s.Hidden() || !s.Valid() {
		if state.StatusMessage != "" {
			return r.styles.Status.Width(w).Render(truncate(" "+state.StatusMessage, w))
		}
		return strings.Repeat(" ", w)
	}

	thumb := s.ThumbRect()
	from, to := int(thumb.X+0.5), int(thumb.X+thumb.W+0.5)
	var sb strings.Builder
	for x := 0; x < w; x++ {
		if x >= from && x < to {
			sb.WriteString(r.styles.Thumb.Render("█"))
		} else {
			sb.WriteString(r.styles.Track.Render("━"))
		}
	}
	return sb.String()
}

func (r *Renderer) renderFooter(state ViewState) string {
	w := state.Layout.Footer.W
	if state.Prompt != "" {
		return truncate(state.Prompt, w)
	}
	h := state.HelpModel
	h.Width = w
	if state.Keys == nil {
		return ""
	}
	return h.View(state.Keys)
}
