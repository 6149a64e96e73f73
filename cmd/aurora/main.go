package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"aurora/internal/config"
	"aurora/internal/nav"
	"aurora/internal/site"
	"aurora/internal/telemetry"
	"aurora/internal/ui"
	"aurora/internal/web"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aurora: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "aurora: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	tracer, err := telemetry.NewTracer(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("otlp exporter: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("otlp shutdown: %v", err)
		}
	}()

	state := nav.New(nil)
	state.Observe(nav.LogObserver{Logger: logger})
	if tracer != nil {
		state.Observe(tracer)
	}

	if cfg.HTML {
		return renderHTML(os.Stdout, state, cfg)
	}

	logger.Printf("starting terminal ui, breakpoint=%d", cfg.Breakpoint)
	model := ui.NewAppModel(state, cfg.Breakpoint).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

// renderHTML drives the state machine to the requested page and menu state,
// then writes the document once.
func renderHTML(w io.Writer, state *nav.State, cfg config.Config) error {
	state.SelectPage(site.ParsePageID(cfg.Page))
	if cfg.MenuOpen {
		state.ToggleMenu()
	}
	return web.Render(w, state)
}

// openLogger returns a file logger when debugging and a discarding one
// otherwise; the terminal belongs to the UI.
func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	if !cfg.Debug {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "aurora ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}
