package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/output"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show mood trends by day, activity, and weekday",
	Long: `Show the data behind the insight charts: the mood of your last seven
check-ins, average mood per activity and per weekday, and the sentiment mix
of your journal.`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ins, err := s.svc.Insights(cmd.Context())
	if err != nil {
		return fmt.Errorf("building insights: %w", err)
	}

	if flagJSON {
		return writeJSON(os.Stdout, ins)
	}
	renderInsights(ins)
	return nil
}

func renderInsights(ins analyzer.Insights) {
	fmt.Println(output.Section("Mood Timeline"))
	fmt.Println()
	if len(ins.MoodTimeline) == 0 {
		fmt.Println(" No check-ins yet.")
	}
	for _, p := range ins.MoodTimeline {
		fmt.Printf(" %s %s  %s\n", p.Day, output.StyleMuted.Render(p.Date), output.MoodBar(float64(p.Mood)))
	}

	fmt.Println(output.Section("Mood by Activity"))
	fmt.Println()
	if len(ins.ActivityMood) == 0 {
		fmt.Println(" No activities recorded yet.")
	} else {
		tbl := output.NewTable("Activity", "Average mood", "Check-ins").AlignRight(2)
		for _, a := range ins.ActivityMood {
			tbl.AddRow(a.Activity, output.MoodBar(a.AvgMood), fmt.Sprintf("%d", a.Count))
		}
		fmt.Print(indent(tbl.Render()))
	}

	fmt.Println(output.Section("Mood by Weekday"))
	fmt.Println()
	for _, w := range ins.WeekdayMood {
		fmt.Printf(" %s  %s\n", w.Day, output.MoodBar(w.AvgMood))
	}

	fmt.Println(output.Section("Journal Sentiment"))
	fmt.Println()
	mix := ins.SentimentMix
	if mix.Total() == 0 {
		fmt.Println(" No journal entries yet.")
		return
	}
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Positive"), output.StyleSuccess.Render(fmt.Sprintf("%d", mix.Positive)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Neutral"), output.StyleWarning.Render(fmt.Sprintf("%d", mix.Neutral)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Negative"), output.StyleError.Render(fmt.Sprintf("%d", mix.Negative)))
}
