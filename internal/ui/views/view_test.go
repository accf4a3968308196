package views

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklike/internal/book"
	"booklike/internal/domain"
	"booklike/internal/theme"
	"booklike/internal/ui/input/keys"
)

func testBook(t *testing.T, n, current int) *book.Manager {
	t.Helper()
	pages := make([]domain.Page, n)
	for i := range pages {
		pages[i] = domain.Page{Title: fmt.Sprintf("Title %d", i+1), Body: "body text"}
	}
	return book.New(pages, current, book.DefaultOptions())
}

func render(t *testing.T, b *book.Manager, w, h int) []string {
	t.Helper()
	b.Resize(Compute(w, h).Geometry())
	return draw(t, b, w, h)
}

// draw renders without touching the book's layout
func draw(t *testing.T, b *book.Manager, w, h int) []string {
	t.Helper()
	l := Compute(w, h)
	out := NewRenderer(theme.Default).Render(ViewState{
		Layout:      l,
		Title:       "Test",
		Book:        b,
		Theme:       theme.Default,
		HelpModel:   help.New(),
		Keys:        keys.DefaultKeyMap(),
		InfoContent: "about this book",
	})
	return strings.Split(ansi.Strip(out), "\n")
}

func TestRenderLandscape(t *testing.T) {
	lines := render(t, testBook(t, 5, 1), 100, 30)

	require.Len(t, lines, 30)
	assert.Contains(t, lines[0], "Test")
	assert.Contains(t, lines[0], "page 3–4 of 5")
	assert.Contains(t, lines[0], "selenized light")
	assert.Contains(t, lines[2], "Title 3")
	assert.Contains(t, lines[2], "Title 4")
	body := strings.Join(lines[1:28], "\n")
	assert.Contains(t, body, "◀")
	assert.Contains(t, body, "▶")
}

func TestRenderPortraitEdges(t *testing.T) {
	lines := render(t, testBook(t, 3, 1), 60, 40)

	require.Len(t, lines, 40)
	assert.Contains(t, lines[1], "▲")
	assert.Contains(t, lines[37], "ⓘ")
	assert.Contains(t, lines[0], "page 3 of 3")
}

func TestRenderInfoOverlay(t *testing.T) {
	b := testBook(t, 4, 0)
	b.ToggleInfo()

	lines := render(t, b, 100, 30)

	assert.Contains(t, strings.Join(lines, "\n"), "about this book")
}

func TestRenderPrompt(t *testing.T) {
	b := testBook(t, 4, 0)
	l := Compute(80, 20)
	b.Resize(l.Geometry())

	out := NewRenderer(theme.Default).Render(ViewState{
		Layout: l,
		Title:  "Test",
		Book:   b,
		Prompt: "go to page: 7",
	})
	lines := strings.Split(ansi.Strip(out), "\n")

	assert.Contains(t, lines[len(lines)-1], "go to page: 7")
}

func TestPagerGlyph(t *testing.T) {
	assert.Equal(t, "◀", PagerGlyph(true, true, false))
	assert.Equal(t, "▶", PagerGlyph(false, true, false))
	assert.Equal(t, "▲", PagerGlyph(true, false, false))
	assert.Equal(t, "▼", PagerGlyph(false, false, false))
	assert.Equal(t, "ⓘ", PagerGlyph(false, true, true))
}

func TestLeadingPageStaysVisibleAsItStartsTurning(t *testing.T) {
	pages := make([]domain.Page, 6)
	for i := range pages {
		pages[i] = domain.Page{Title: fmt.Sprintf("Title %d", i+1)}
	}
	opts := book.DefaultOptions()
	opts.Transition = time.Hour
	b := book.New(pages, 0, opts)
	b.Resize(Compute(100, 30).Geometry())

	cmd := b.Change(1)
	require.NotNil(t, cmd)
	require.NotNil(t, b.Update(cmd()))
	require.Equal(t, book.EaseIn|book.MidTurn, b.Classes(1))
	require.True(t, b.Turning())

	assert.Greater(t, Visible(b.Classes(1), b.TurnProgress(1)), 0.99)
	lines := draw(t, b, 100, 30)
	assert.Contains(t, lines[0], "turning")
	assert.Contains(t, lines[2], "Title 2")
	assert.NotContains(t, lines[2], "Title 4")
}
