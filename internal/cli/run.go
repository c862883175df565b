package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/tipcalc/internal/calculator"
	"github.com/yildizm/tipcalc/internal/logger"
	"github.com/yildizm/tipcalc/internal/monitor"
	"github.com/yildizm/tipcalc/internal/script"
	"github.com/yildizm/tipcalc/internal/ui"
)

var (
	runFollow string
	runHeight int
	runWidth  int
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive calculator",
		Long: `Start the full-screen calculator emulator.

The keyboard stands in for the three device buttons (see "keys" in the
configuration). With --follow, buttons appended to a script file are
pressed as well, interleaved with keyboard input.

Examples:
  tipcalc run
  tipcalc run --height 16 --width 30
  tipcalc run --follow buttons.txt`,
		Args: cobra.NoArgs,
		RunE: runDevice,
	}

	cmd.Flags().StringVar(&runFollow, "follow", "", "button script to follow while running")
	cmd.Flags().IntVar(&runHeight, "height", 0, "display height in lines (default from config)")
	cmd.Flags().IntVar(&runWidth, "width", 0, "display width in columns (default from config)")

	return cmd
}

func runDevice(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	log, closeLog, err := a.fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	stats := monitor.New()
	opts := a.deviceOptions(log)
	opts.Stats = stats
	model := ui.NewDeviceModel(a.newSession(log), opts)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	events, err := followEvents(ctx, runFollow, log)
	if err != nil {
		return err
	}

	if err := ui.Run(model, events); err != nil {
		return fmt.Errorf("failed to run calculator: %w", err)
	}

	log.InfoWithFields("calculator closed", stats.Report().Fields())
	fmt.Fprint(cmd.OutOrStdout(), model.View())
	return nil
}

// deviceOptions sizes the device from flags, falling back to config
func (a *app) deviceOptions(log *logger.Logger) ui.Options {
	height := a.cfg.Display.Height
	if runHeight > 0 {
		height = runHeight
	}
	width := a.cfg.Display.Width
	if runWidth > 0 {
		width = runWidth
	}

	return ui.Options{
		Height: height,
		Width:  width,
		Keys:   ui.NewKeyMap(a.cfg.Keys),
		Logger: log.WithComponent("ui"),
	}
}

// followEvents starts following path, or returns nil when path is empty.
// The channel is closed once following stops.
func followEvents(ctx context.Context, path string, log *logger.Logger) (<-chan calculator.Button, error) {
	if path == "" {
		return nil, nil
	}

	follower, err := script.NewFollower(path, script.WithFollowLogger(log.WithComponent("script")))
	if err != nil {
		return nil, err
	}

	events := make(chan calculator.Button)
	go func() {
		defer close(events)
		if err := follower.Follow(ctx, events); err != nil {
			log.Error("follow stopped: %v", err)
		}
	}()
	return events, nil
}
