package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"booklike/internal/ui/input/keys"
	"booklike/internal/ui/views"
)

// helpSections names the groups of KeyMap.FullHelp in order
var helpSections = []string{"Navigation", "Animation", "Theme", "Other"}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keys.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(km keys.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: km}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(styles *views.Styles, title string) string {
	titleStyle := styles.PageTitle.MarginBottom(1)
	sectionStyle := styles.Prompt.MarginTop(1)

	var help strings.Builder
	help.WriteString(titleStyle.Render(title + " Help"))
	help.WriteString("\n")

	for i, group := range r.keys.FullHelp() {
		name := "More"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range group {
			help.WriteString(r.line(styles, b.Help().Key, b.Help().Desc))
		}
	}

	help.WriteString("\n")
	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	for _, l := range [][2]string{
		{"click pager", "Turn one page pair"},
		{"hold pager", "Show the page scrubber"},
		{"drag thumb", "Scrub pages or animation"},
		{"click ▶", "Play or pause the animation"},
	} {
		help.WriteString(r.line(styles, l[0], l[1]))
	}
	return help.String()
}

func (r *HelpRenderer) line(styles *views.Styles, k, desc string) string {
	pad := max(14-lipgloss.Width(k), 1)
	return fmt.Sprintf("  %s%s%s\n", styles.Key.Render(k), strings.Repeat(" ", pad), desc)
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
