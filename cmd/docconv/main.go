package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/convert"
	"github.com/fwojciec/docconv/etree"
	"github.com/fwojciec/docconv/goquery"
	"github.com/fwojciec/docconv/htmltomarkdown"
	docslog "github.com/fwojciec/docconv/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by convert when no content argument is given.
	Stdin io.Reader

	// System is the conversion facade, available after Run has wired it.
	System *convert.System
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docconv"),
		kong.Description("Convert documents between formats"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docconv --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.Verbose, cli.LogLevel)
	if err != nil {
		return err
	}

	var registry docconv.ConverterRegistry = convert.NewRegistry()
	if cli.Verbose {
		registry = docslog.NewLoggingRegistry(registry, logger)
	}

	m.System = convert.NewSystem(
		convert.WithRegistry(registry),
		convert.WithConcurrency(cli.Concurrency),
	)
	registerConverters(m.System)

	deps.Converter = m.System
	deps.Registry = m.System

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w, or a logger that drops everything
// when verbose output is off.
func newLogger(w io.Writer, verbose bool, level string) (*slog.Logger, error) {
	if !verbose {
		return slog.New(slog.DiscardHandler), nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// registerConverters adds the library-backed converters to the registry.
func registerConverters(registry docconv.ConverterRegistry) {
	htmltomarkdown.Register(registry)
	goquery.Register(registry)
	etree.Register(registry)
}
