package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/output"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

// previewLength is how much of each entry journal list shows.
const previewLength = 100

var journalListLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Write and review journal entries",
	Long: `Write free-text journal entries. Each entry is scored for sentiment
when it is saved; the score never changes afterwards.`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Save a journal entry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent journal entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalAnalyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Preview the sentiment of text without saving it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJournalAnalyze,
}

func init() {
	journalListCmd.Flags().IntVar(&journalListLimit, "limit", 0, "Number of entries to show (default from config, 10)")
	journalCmd.AddCommand(journalAddCmd, journalListCmd, journalAnalyzeCmd)
	rootCmd.AddCommand(journalCmd)
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	entry, err := s.svc.SaveJournal(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		if isValidation(err) {
			return err
		}
		return fmt.Errorf("saving journal entry: %w", err)
	}

	if flagJSON {
		return writeJSON(os.Stdout, entry)
	}
	fmt.Printf(" %s Journal entry saved. Sentiment: %s\n",
		output.StyleSuccess.Render("✓"), styleSentiment(entry.Sentiment))
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	limit := journalListLimit
	if limit <= 0 {
		limit = s.cfg.Analytics.JournalListLimit
	}
	entries, err := s.svc.RecentJournal(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing journal: %w", err)
	}

	if flagJSON {
		return writeJSON(os.Stdout, entries)
	}

	fmt.Println(output.Section("Journal"))
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println(" No journal entries yet. Start with: mindwell journal add \"...\"")
		return nil
	}
	for _, e := range entries {
		fmt.Printf(" %s  %s\n", output.StyleMuted.Render(e.Date.Format("Mon Jan 2 2006 15:04")), styleSentiment(e.Sentiment))
		fmt.Printf("   %s\n\n", e.Preview(previewLength))
	}
	return nil
}

func runJournalAnalyze(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.svc.Analyze(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if flagJSON {
		return writeJSON(os.Stdout, res)
	}
	pos, neg := sentiment.Count(strings.Join(args, " "))
	fmt.Printf(" Sentiment: %s\n", styleSentiment(res))
	fmt.Printf(" %s\n", output.StyleMuted.Render(fmt.Sprintf("%d positive, %d negative words", pos, neg)))
	return nil
}

func styleSentiment(r sentiment.Result) string {
	switch r.Label {
	case sentiment.Positive:
		return output.StyleSuccess.Render(r.String())
	case sentiment.Negative:
		return output.StyleError.Render(r.String())
	default:
		return output.StyleWarning.Render(r.String())
	}
}
