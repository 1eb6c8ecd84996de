package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/output"
	"github.com/blackwell-systems/mindwell/internal/tracker"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.svc.Dashboard(cmd.Context())
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	if flagJSON {
		return writeJSON(os.Stdout, d)
	}
	renderDashboard(d, s.cfg.Output.Width)
	return nil
}

func renderDashboard(d tracker.Dashboard, width int) {
	fmt.Println(output.Section("MindWell Dashboard"))
	fmt.Println()

	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Streak"), output.StyleValue.Render(fmt.Sprintf("%d days", d.Streak)))

	mood := "--"
	if d.MoodAvailable {
		mood = fmt.Sprintf("%s %s", d.MoodEmoji, d.Mood)
	}
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Recent mood"), mood)
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Check-ins"), output.StyleValue.Render(fmt.Sprintf("%d", d.TotalEntries)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Journal entries"), output.StyleValue.Render(fmt.Sprintf("%d", d.JournalEntries)))

	score := "--"
	if d.WellnessAvailable {
		score = output.ScoreBar(d.WellnessScore, 20)
	}
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Wellness score"), score)

	fmt.Println(output.Section("Recent Check-ins"))
	fmt.Println()
	if len(d.Recent) == 0 {
		fmt.Println(" No check-ins yet. Start with: mindwell checkin --mood 4")
		return
	}

	noteWidth := width - 50
	if noteWidth < 10 {
		noteWidth = 10
	}
	tbl := output.NewTable("Date", "Mood", "Activities", "Notes").MaxWidth(3, noteWidth)
	for _, c := range d.Recent {
		tbl.AddRow(
			c.Date.Format("Mon Jan 2 15:04"),
			fmt.Sprintf("%s %d/5", analyzer.MoodEmoji(c.Mood), c.Mood),
			joinOrDash(c.Activities),
			c.Notes,
		)
	}
	fmt.Print(indent(tbl.Render()))
}
