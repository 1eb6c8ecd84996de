package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/output"
	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/tracker"
)

var (
	checkinMood       int
	checkinActivities []string
	checkinNotes      string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record how you are feeling right now",
	Long: `Record a mood check-in on a 1-5 scale with optional activity tags and
notes. Your streak is updated after every check-in.

Known activities: ` + strings.Join(record.KnownActivities, ", ") + `.
Other tags are accepted too.

Example:
  mindwell checkin --mood 4 --activity exercise --activity reading --notes "long walk"`,
	Args: cobra.NoArgs,
	RunE: runCheckin,
}

func init() {
	checkinCmd.Flags().IntVarP(&checkinMood, "mood", "m", 0, "Mood from 1 (very low) to 5 (very high)")
	checkinCmd.Flags().StringSliceVarP(&checkinActivities, "activity", "a", nil, "Activity tag (repeatable or comma-separated)")
	checkinCmd.Flags().StringVarP(&checkinNotes, "notes", "n", "", "Optional notes")
	rootCmd.AddCommand(checkinCmd)
}

func runCheckin(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	c, streak, err := s.svc.SubmitCheckIn(cmd.Context(), tracker.CheckInInput{
		Mood:       checkinMood,
		Activities: checkinActivities,
		Notes:      checkinNotes,
	})
	if err != nil {
		if isValidation(err) {
			return err
		}
		return fmt.Errorf("recording check-in: %w", err)
	}

	if flagJSON {
		return writeJSON(os.Stdout, map[string]any{"checkin": c, "streak": streak})
	}

	fmt.Printf(" %s Check-in saved %s %d/5\n", output.StyleSuccess.Render("✓"), analyzer.MoodEmoji(c.Mood), c.Mood)
	if len(c.Activities) > 0 {
		fmt.Printf("   Activities: %s\n", joinOrDash(c.Activities))
	}
	fmt.Printf("   Streak: %s\n", output.StyleBold.Render(fmt.Sprintf("%d days", streak)))
	return nil
}

// isValidation reports whether err is a user input error whose message is
// meant to be shown as is.
func isValidation(err error) bool {
	return errors.Is(err, tracker.ErrMoodRequired) ||
		errors.Is(err, tracker.ErrMoodOutOfRange) ||
		errors.Is(err, tracker.ErrEmptyText)
}
