// Package app wires configuration, filtering and output into the CLI run
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/agentsignore/internal/config"
	"github.com/bethropolis/agentsignore/internal/logger"
	"github.com/bethropolis/agentsignore/internal/printer"
	"github.com/bethropolis/agentsignore/internal/setup"
	"github.com/bethropolis/agentsignore/internal/summary"
	"github.com/bethropolis/agentsignore/internal/walker"
	"github.com/fatih/color"
	"github.com/natefinch/atomic"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
	Errors io.Writer
}

// New creates a new App writing the listing to stdout and logs to stderr
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(stderr, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: stdout,
		Errors: stderr,
	}
}

// Run lists the files under the configured directory that survive filtering
func (a *App) Run(ctx context.Context) error {
	startTime := time.Now()

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...any) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Dialect: %s, hidden=%v, git=%v", a.cfg.Dialect, a.cfg.IgnoreHidden, a.cfg.IgnoreGit)

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("invalid root directory path '%s': %w", a.cfg.RootDir, err)
	}
	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("root directory '%s' not found", absRootDir)
		}
		return fmt.Errorf("could not access root directory '%s': %w", absRootDir, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("specified path '%s' is not a directory", absRootDir)
	}

	// --- Matcher and walk options ---
	tracker := walker.NewSkippedTracker(100)
	walkCfg := setup.FromConfig(a.cfg)
	walkCfg.Context = ctx
	walkCfg.Tracker = tracker
	walkCfg.Logger = a.log

	matcher, walkOptions, err := setup.ConfigureWalker(walkCfg, infoLog)
	if err != nil {
		return err
	}

	// --- Create the printer ---
	var buffered bytes.Buffer
	out := a.Output
	if a.cfg.OutputFile != "" {
		out = &buffered
	}
	p := printer.New().WithOutput(out).WithColors(a.cfg.UseColors)
	if a.cfg.JSONOutput {
		p.WithJSON(true).WithColors(false)
	} else if a.cfg.MarkdownOutput {
		p.WithMarkdown(true).WithColors(false)
	}

	// --- Walk ---
	infoLog("Scanning directory: %s", absRootDir)
	for path := range walker.Files(a.cfg.RootDir, matcher, walkOptions...) {
		if err := p.PrintPath(path); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scan of '%s' stopped: %w", absRootDir, err)
	}
	if err := p.Finalize(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	if a.cfg.OutputFile != "" {
		if err := atomic.WriteFile(a.cfg.OutputFile, &buffered); err != nil {
			return fmt.Errorf("failed to write output file '%s': %w", a.cfg.OutputFile, err)
		}
		infoLog("Listing written to %s", a.cfg.OutputFile)
	}

	summary.ReportUnreadable(a.log, tracker)
	summary.DisplayResults(a.log, p.GetCount(), time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, tracker.Items(), a.Errors, a.cfg.Quiet)
	}
	return nil
}
