package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/prodmd"
	"github.com/fwojciec/prodmd/extract"
	"github.com/fwojciec/prodmd/fs"
	"github.com/fwojciec/prodmd/prometheus"
	"github.com/fwojciec/prodmd/rod"
	pslog "github.com/fwojciec/prodmd/slog"
	"github.com/fwojciec/prodmd/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now dates the rendered documents. Set before calling Run().
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prodmd"),
		kong.Description("Extract Amazon.fr product pages saved as HTML into Markdown or JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.URL != "" && len(cli.Files) > 1 {
		return fmt.Errorf("--url applies to a single page, got %d files", len(cli.Files))
	}

	format, err := prodmd.ParseFormat(cli.Format)
	if err != nil {
		return errors.New(errorText(err))
	}

	cfg := prodmd.DefaultConfig()
	if cli.Config != "" {
		if cfg, err = yaml.LoadConfig(cli.Config); err != nil {
			return err
		}
	}

	logger := newLogger(stderr, cli.Verbose, cli.LogJSON)

	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Logger:      logger,
		Config:      cfg,
		Format:      format,
		Timeout:     cli.Timeout,
		Concurrency: cli.Concurrency,
		Now:         m.Now,
		Loader:      &StaticLoader{},
	}

	var extractor prodmd.Extractor = extract.NewExtractor(cfg)
	var metrics *prometheus.Metrics
	if cli.MetricsFile != "" {
		metrics = prometheus.NewMetrics()
		extractor = prometheus.NewMetricsExtractor(extractor, metrics)
	}
	deps.Extractor = pslog.NewLoggingExtractor(extractor, logger)

	if cli.Out != "" {
		deps.Writer = pslog.NewLoggingWriter(fs.NewWriter(cli.Out), logger)
	}

	if cli.Render {
		browser, err := rod.NewBrowser()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()
		deps.Loader = &BrowserLoader{Browser: browser}
	}

	cmd := &ExtractCmd{Files: cli.Files, URL: cli.URL}
	runErr := cmd.Run(deps)

	if metrics != nil {
		if err := metrics.WriteTextfile(cli.MetricsFile); err != nil {
			logger.Error("metrics", "err", err)
			if runErr == nil {
				runErr = err
			}
		}
	}
	return runErr
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files       []string      `arg:"" name:"file" type:"existingfile" help:"Saved product page(s) to extract"`
	Format      string        `short:"f" default:"markdown" enum:"markdown,md,json" help:"Output format (markdown, json)"`
	URL         string        `short:"u" help:"Page address, when the saved page has no canonical link (single file only)"`
	Config      string        `short:"C" type:"existingfile" help:"YAML file overriding the extraction thresholds"`
	Out         string        `short:"o" type:"path" help:"Write one file per product to this directory instead of stdout"`
	Timeout     time.Duration `short:"t" default:"5s" help:"Extraction timeout per page"`
	Render      bool          `short:"r" help:"Load pages in headless Chrome to use computed styles"`
	Concurrency int           `short:"c" default:"3" help:"Pages extracted in parallel"`
	MetricsFile string        `name:"metrics-file" type:"path" help:"Write Prometheus metrics to this file when done"`
	Verbose     bool          `short:"v" help:"Log every field lookup"`
	LogJSON     bool          `name:"log-json" help:"Log as JSON"`
}

func newLogger(w io.Writer, verbose, asJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
