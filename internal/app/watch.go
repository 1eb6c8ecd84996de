package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/output"
	"github.com/blackwell-systems/mindwell/internal/watcher"
)

var (
	watchInterval    string
	watchQuiet       bool
	watchRemindAfter int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch your history and send reminders and alerts",
	Long: `Run a monitor that periodically reads your check-ins and journal. When
something notable happens (your mood dips, your journal turns negative, you
reach a streak milestone, or you have not checked in by the evening) a
desktop notification and a terminal alert are emitted.

Examples:
  mindwell watch                      # check every 10 minutes (ctrl-c to stop)
  mindwell watch --interval 30m       # check every 30 minutes
  mindwell watch --remind-after 21    # remind after 9pm if no check-in today
  mindwell watch --remind-after -1    # no reminders`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInterval, "interval", "10m", "Check interval as duration string (e.g. 5m, 1h)")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	watchCmd.Flags().IntVar(&watchRemindAfter, "remind-after", 20, "Hour of day (0-23) after which to remind about a missing check-in; -1 disables")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval, err := time.ParseDuration(watchInterval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", watchInterval, err)
	}
	if interval < 30*time.Second {
		return fmt.Errorf("interval must be at least 30s, got %s", interval)
	}
	if watchRemindAfter > 23 {
		return fmt.Errorf("remind-after must be an hour between 0 and 23, got %d", watchRemindAfter)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := watcher.NewNotifier()
	alertFn := func(a watcher.Alert) {
		_ = notifier.Notify(a)
		if !watchQuiet {
			printAlert(a)
		}
	}

	w := watcher.New(s.svc, interval, alertFn)
	w.RemindAfter = watchRemindAfter

	if !watchQuiet {
		initial, err := w.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("initial snapshot failed: %w", err)
		}
		fmt.Printf("mindwell watching... (checking every %s)\n", interval)
		fmt.Printf("[%s] %s %d check-ins, %d-day streak\n",
			time.Now().Format("15:04:05"), output.StyleSuccess.Render("✓"), initial.CheckIns, initial.Streak)
	}

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		if !watchQuiet {
			fmt.Println("\nStopped.")
		}
		return nil
	}
	return err
}

// printAlert formats and prints an alert to the terminal.
func printAlert(a watcher.Alert) {
	fmt.Printf("[%s] %s %s\n", a.Time.Format("15:04:05"), alertIcon(a.Level), a.Title)
	if a.Message != "" {
		fmt.Printf("         %s\n", a.Message)
	}
}

// alertIcon returns the terminal indicator for an alert level.
func alertIcon(level string) string {
	switch level {
	case "critical":
		return output.StyleError.Render("●")
	case "warning":
		return output.StyleWarning.Render("▲")
	case "info":
		return output.StyleSuccess.Render("✓")
	default:
		return " "
	}
}
