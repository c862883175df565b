package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/tipcalc/internal/logger"
	"github.com/yildizm/tipcalc/internal/monitor"
	"github.com/yildizm/tipcalc/internal/script"
)

var (
	replayTrace      bool
	replayStats      bool
	replayOutputFile string
)

func newReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Replay a button script and print the result",
		Long: `Feed a button script to a fresh calculator and print a summary of the
final state. Reads from stdin when no file is given.

A script lists buttons separated by spaces, commas or newlines:
  up, u, k          Up
  down, d, j        Down
  select, s, enter  Select
A "*N" suffix repeats a button and "#" starts a comment.

Examples:
  tipcalc replay bill.txt
  echo "select up*3 select" | tipcalc replay --trace
  tipcalc replay -o json bill.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReplay,
	}

	cmd.Flags().BoolVarP(&replayTrace, "trace", "t", false, "print the display after every button")
	cmd.Flags().BoolVar(&replayStats, "stats", false, "print session statistics to stderr")
	cmd.Flags().StringVarP(&replayOutputFile, "output-file", "f", "", "write the summary to a file instead of stdout")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	reader, cleanup, err := setupScriptReader(cmd, args, a.log)
	if err != nil {
		return err
	}
	defer cleanup()

	buttons, err := script.Parse(reader)
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	a.log.Debug("replaying %d buttons", len(buttons))

	session := a.newSession(a.log)
	stats := monitor.New()
	out := cmd.OutOrStdout()
	for i, b := range buttons {
		stats.Press(session, b)
		if replayTrace {
			fmt.Fprintf(out, "[%d] %s\n", i+1, b)
			writeRows(out, session)
			fmt.Fprintln(out)
		}
	}

	summary, err := a.formatSummary(session)
	if err != nil {
		return err
	}
	if err := writeOutput(out, summary, replayOutputFile, a.log); err != nil {
		return err
	}

	report := stats.Report()
	a.log.InfoWithFields("replay finished", report.Fields())
	if replayStats {
		fmt.Fprint(cmd.ErrOrStderr(), report.String())
	}
	return nil
}

// setupScriptReader opens the script named in args, or stdin
func setupScriptReader(cmd *cobra.Command, args []string, log *logger.Logger) (io.Reader, func(), error) {
	if len(args) == 0 {
		log.Debug("reading script from stdin")
		return cmd.InOrStdin(), func() {}, nil
	}

	if err := validateFilePath(args[0]); err != nil {
		return nil, nil, fmt.Errorf("invalid file path: %w", err)
	}
	cleanPath := filepath.Clean(args[0])

	// #nosec G304 - path is validated above
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", args[0], err)
	}

	cleanup := func() {
		if err := file.Close(); err != nil {
			log.Warn("failed to close file: %v", err)
		}
	}
	log.Debug("replaying script: %s", cleanPath)
	return file, cleanup, nil
}

// writeOutput writes the summary to path, or to out when path is empty
func writeOutput(out io.Writer, data []byte, path string, log *logger.Logger) error {
	if path == "" {
		_, err := out.Write(data)
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}
	log.Info("summary saved to: %s", path)
	return nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}
