package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yildizm/tipcalc/internal/calculator"
	"github.com/yildizm/tipcalc/internal/emoji"
	"github.com/yildizm/tipcalc/internal/monitor"
	"github.com/yildizm/tipcalc/internal/script"
)

var watchFromEnd bool

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <script>",
		Short: "Follow a button script and print the display as it changes",
		Long: `Follow a button script file and apply every button appended to it,
printing the display after each one. Existing content is replayed first
unless --from-end is given. Press Ctrl+C to stop watching.

Examples:
  tipcalc watch buttons.txt
  tipcalc watch --from-end buttons.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().BoolVar(&watchFromEnd, "from-end", false, "ignore the content present when watching starts")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	opts := []script.FollowOption{script.WithFollowLogger(a.log.WithComponent("script"))}
	if watchFromEnd {
		opts = append(opts, script.FromEnd())
	}
	follower, err := script.NewFollower(args[0], opts...)
	if err != nil {
		return err
	}

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.isVerbose() {
		fmt.Fprintf(os.Stderr, "%s Watching script: %s\n", emoji.GetEmoji("watch"), args[0])
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	return watchSession(ctx, cmd, follower, a.newSession(a.log))
}

// watchSession applies followed buttons to session until ctx ends
func watchSession(ctx context.Context, cmd *cobra.Command, follower *script.Follower, session *calculator.Session) error {
	buttons := make(chan calculator.Button)
	errs := make(chan error, 1)
	go func() {
		defer close(buttons)
		errs <- follower.Follow(ctx, buttons)
	}()

	out := cmd.OutOrStdout()
	stats := monitor.New()
	count := 0
	for b := range buttons {
		count++
		stats.Press(session, b)
		fmt.Fprintf(out, "[%d] %s\n", count, b)
		writeRows(out, session)
		fmt.Fprintln(out)
	}
	fmt.Fprint(cmd.ErrOrStderr(), stats.Report().String())

	if err := <-errs; err != nil {
		return fmt.Errorf("watch stopped: %w", err)
	}
	return nil
}
