package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mkohler/coincidence/goquery"
	"github.com/mkohler/coincidence/htmltomarkdown"
	cohttp "github.com/mkohler/coincidence/http"
	coslog "github.com/mkohler/coincidence/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coincidence"),
		kong.Description("Find the longest common substrings in two random Wikipedia articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the article source for live comparisons; selftest needs none.
	if strings.HasPrefix(kongCtx.Command(), "compare") {
		deps.Source = newSource(cli.Compare, stderr)
	}

	return kongCtx.Run(deps)
}

// newSource builds the article source the compare command asked for:
// the XML export by default, the rendered-page pipeline with --html,
// both wrapped in a logging decorator.
func newSource(cmd CompareCmd, stderr io.Writer) *coslog.Source {
	opts := []cohttp.Option{
		cohttp.WithLanguage(cmd.Lang),
		cohttp.WithTimeout(cmd.Timeout),
	}

	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd.HTML {
		source := cohttp.NewPageSource(goquery.NewExtractor(), htmltomarkdown.NewConverter(), opts...)
		return coslog.NewSource(source, logger)
	}
	return coslog.NewSource(cohttp.NewSource(opts...), logger)
}
