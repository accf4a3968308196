package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"booklike/internal/book"
	"booklike/internal/config"
	"booklike/internal/demo"
	"booklike/internal/eventbus"
	"booklike/internal/logging"
	"booklike/internal/source"
	"booklike/internal/state"
	"booklike/internal/theme"
	"booklike/internal/ui"
	"booklike/internal/ui/input/keys"
)

// demoBarWidth is the width of the bars the demo animations draw
const demoBarWidth = 28

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "booklike: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("booklike", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	outline := flags.Bool("outline", false, "print the page pairs of the book and exit")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: booklike [flags] [book.toml]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewConfigService(flags).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.NArg() > 0 {
		cfg.Book = flags.Arg(0)
	}

	b := source.Demo()
	if cfg.Book != "" {
		if b, err = source.Load(cfg.Book); err != nil {
			return err
		}
	}

	if *outline {
		fmt.Print(Outline(b))
		return nil
	}

	logger := logging.Setup(cfg.LogFile, cfg.LogLevel)
	defer logging.Close()
	logger.Info("starting", "book", b.Title, "pages", len(b.Pages), "config", cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	store := state.NewStore(cfg.StateFile)
	saved, err := store.Load()
	if err != nil {
		logger.Warn("ignoring unreadable state", "path", store.Path(), "error", err)
	}
	detach := store.Attach(bus)
	defer detach()

	t := resolveTheme(cfg.Theme, saved.Theme, logger)
	current := saved.CurrentPair
	if cfg.Page >= 0 {
		current = cfg.Page
	}

	manager := book.New(b.Pages, current, book.Options{
		Transition:    cfg.Transition(),
		NoTransitions: cfg.NoTransitions,
		LongPress:     cfg.LongPress(),
		Pulse:         cfg.Pulse(),
		FrameInterval: cfg.FrameInterval(),
		ScrubMargin:   cfg.ScrubMargin,
		Bus:           bus,
		Logger:        logger,
	})
	canvas := demo.NewCanvas()
	manager.Actions(demo.Hooks(canvas, demoBarWidth))

	model := ui.NewModel(ui.Options{
		Bus:    bus,
		Book:   manager,
		Title:  b.Title,
		Frames: canvas,
		Theme:  t,
		Keys:   keys.DefaultKeyMap(),
		Logger: logger,
	})
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	var offs []func()
	for _, et := range []eventbus.EventType{
		eventbus.EventNavigationSettled,
		eventbus.EventEdgeReached,
		eventbus.EventThemeChanged,
		eventbus.EventPageShown,
		eventbus.EventPageHidden,
		eventbus.EventError,
	} {
		offs = append(offs, bus.Subscribe(et, forward))
	}
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	_, err = p.Run()

	// stop the bus before closing the channel its handlers send on
	for _, off := range offs {
		off()
	}
	bus.Close()
	close(eventChan)

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("stopped", "pair", manager.Current())
	return nil
}

// resolveTheme picks the configured theme, then the saved one, then the
// default. Unparseable names are logged and skipped.
func resolveTheme(configured, saved string, logger *slog.Logger) theme.Theme {
	for _, name := range []string{configured, saved} {
		if name == "" {
			continue
		}
		t, err := theme.Default.Change(name)
		if err != nil {
			logger.Warn("ignoring theme", "theme", name, "error", err)
			continue
		}
		return t
	}
	return theme.Default
}
