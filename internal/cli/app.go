package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yildizm/tipcalc/internal/calculator"
	"github.com/yildizm/tipcalc/internal/config"
	"github.com/yildizm/tipcalc/internal/emoji"
	"github.com/yildizm/tipcalc/internal/formatter"
	"github.com/yildizm/tipcalc/internal/logger"
	"github.com/yildizm/tipcalc/internal/ui"
)

// app bundles the loaded configuration with the global flags
type app struct {
	cfg *config.Config
	log *logger.Logger
}

// loadApp loads configuration and applies it on top of the global flags.
// Flags win over config values.
func loadApp() (*app, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Display.NoEmoji {
		emoji.SetEmojiDisabled(true)
	}
	if cfg.Output.ColorMode == "never" {
		ui.SetColorDisabled(true)
	}
	if !ui.SetThemeByName(cfg.Display.Theme) {
		return nil, fmt.Errorf("unknown theme: %s", cfg.Display.Theme)
	}

	a := &app{cfg: cfg}
	a.log = logger.NewWithCallback("tipcalc", a.isVerbose)
	return a, nil
}

func (a *app) isVerbose() bool {
	return verbose || a.cfg.Output.Verbose
}

// outputFormat returns the --output flag, falling back to the config default
func (a *app) outputFormat() string {
	if outputFmt != "" {
		return outputFmt
	}
	return a.cfg.Output.DefaultFormat
}

// useColor resolves the color mode for formatted output
func (a *app) useColor() bool {
	if noColor {
		return false
	}
	switch a.cfg.Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !ui.IsColorDisabled()
	}
}

func (a *app) limits() calculator.Limits {
	return calculator.Limits{
		AmountMaxLength:   a.cfg.Entry.AmountMaxLength,
		AmountMaxFraction: a.cfg.Entry.AmountMaxFraction,
		PercentMaxDigits:  a.cfg.Entry.PercentMaxDigits,
	}
}

// newSession creates a session with the configured limits
func (a *app) newSession(log *logger.Logger) *calculator.Session {
	return calculator.NewSession(
		calculator.WithLimits(a.limits()),
		calculator.WithLogger(log.WithComponent("calculator")),
	)
}

// fileLogger returns a logger for the full-screen UI, which owns the
// terminal. Without a log file the output is discarded.
func (a *app) fileLogger() (*logger.Logger, func(), error) {
	if a.cfg.Logging.File == "" {
		return a.log.WithWriter(io.Discard), func() {}, nil
	}

	path := filepath.Clean(a.cfg.Logging.File)
	// #nosec G304 - path comes from the user's own configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	cleanup := func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}
	return a.log.WithWriter(f), cleanup, nil
}

// formatSummary renders the final state in the selected output format
func (a *app) formatSummary(s *calculator.Session) ([]byte, error) {
	f, err := formatter.New(a.outputFormat(), a.useColor())
	if err != nil {
		return nil, err
	}
	return f.Format(s.Snapshot())
}

// writeRows prints the four display rows, marking the active one
func writeRows(w io.Writer, s *calculator.Session) {
	active := s.ActiveRow()
	for i, label := range s.Labels() {
		marker := "  "
		if i == active {
			marker = "▶ "
			if s.Editing() {
				marker = "✎ "
			}
		}
		fmt.Fprintf(w, "%s%s %s\n", marker, emoji.RowEmoji(i), label)
	}
}
