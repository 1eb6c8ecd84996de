package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/output"
	"github.com/blackwell-systems/mindwell/internal/suggest"
)

var (
	recommendLimit    int
	recommendCategory string
)

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Aliases: []string{"suggest"},
	Short:   "Show personalized wellness recommendations",
	Long: `Generate recommendations from your recent moods, activities, journal
sentiment, and streak. Recommendations are listed in the order the rules
produce them.`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum number of recommendations (default from config, 4)")
	recommendCmd.Flags().StringVar(&recommendCategory, "category", "", "Filter by category (onboarding, mood, activity, journal, consistency, general)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	recs, err := s.svc.Recommendations(cmd.Context())
	if err != nil {
		return fmt.Errorf("generating recommendations: %w", err)
	}

	if recommendCategory != "" {
		recs = suggest.FilterByCategory(recs, recommendCategory)
	}
	if recommendLimit > 0 && len(recs) > recommendLimit {
		recs = recs[:recommendLimit]
	}

	if flagJSON {
		return writeJSON(os.Stdout, recs)
	}
	renderRecommendations(recs)
	return nil
}

func renderRecommendations(recs []suggest.Recommendation) {
	fmt.Println(output.Section("Recommendations"))
	fmt.Println()
	if len(recs) == 0 {
		fmt.Println(" Nothing matches that filter.")
		return
	}

	for _, r := range recs {
		fmt.Printf(" %s %s %s\n", r.Icon, output.StyleBold.Render(r.Title), stylePriority(r.Priority))
		fmt.Printf("    %s\n\n", r.Description)
	}
}

func stylePriority(priority int) string {
	switch priority {
	case suggest.PriorityHigh:
		return output.StyleError.Render("[HIGH]")
	case suggest.PriorityMedium:
		return output.StyleWarning.Render("[MEDIUM]")
	default:
		return output.StyleMuted.Render("[LOW]")
	}
}
