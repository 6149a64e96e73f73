// Package config resolves runtime settings from command-line flags and
// environment variables. Flags win over the environment.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// Defaults.
const (
	DefaultBreakpoint  = 120 // terminal columns at which the desktop header appears
	DefaultLogFile     = "aurora.log"
	DefaultServiceName = "aurora"
)

// Config holds the parsed settings for one run.
type Config struct {
	HTML       bool   // render static HTML to stdout and exit
	Page       string // page slug selected before HTML rendering
	MenuOpen   bool   // toggle the menu before HTML rendering
	Breakpoint int
	Debug      bool
	LogFile    string

	OTLPEndpoint string
	ServiceName  string
}

// Load parses args (without the program name) on top of the environment
// read through getenv. Usage text goes to output.
func Load(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := Config{
		Breakpoint:   DefaultBreakpoint,
		LogFile:      DefaultLogFile,
		OTLPEndpoint: getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  getenv("OTEL_SERVICE_NAME"),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if v := getenv("AURORA_BREAKPOINT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("AURORA_BREAKPOINT %q: %w", v, err)
		}
		cfg.Breakpoint = n
	}
	if v := getenv("AURORA_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	fs := flag.NewFlagSet("aurora", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.HTML, "html", false, "render the site as static HTML to stdout and exit")
	fs.StringVar(&cfg.Page, "page", "home", "page to show when rendering HTML (home, rh, saudemental, clinica, quemsou)")
	fs.BoolVar(&cfg.MenuOpen, "menu-open", false, "render HTML with the mobile menu expanded")
	fs.IntVar(&cfg.Breakpoint, "breakpoint", cfg.Breakpoint, "terminal width at which the desktop navigation is shown")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "debug log destination")
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: aurora [flags]\n\n")
		fmt.Fprintf(output, "Louisiane Aurora, Psicologia & Estratégia. Browse the site in the\n")
		fmt.Fprintf(output, "terminal, or render it as HTML with -html.\n\n")
		fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that flag parsing cannot.
func (c Config) Validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be positive, got %d", c.Breakpoint)
	}
	if c.Debug && c.LogFile == "" {
		return fmt.Errorf("-debug requires a log file")
	}
	return nil
}
