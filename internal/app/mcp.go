package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server for assistant tooling",
	Long: `Start a Model Context Protocol stdio server that an assistant can
query. The server exposes five tools:

  get_recent_mood      Mood band and average over recent check-ins
  get_wellness_score   Wellness score (0-100)
  get_recommendations  Current recommendations
  get_streak           Consecutive-day check-in streak
  analyze_sentiment    Sentiment of a piece of text (not saved)

Example MCP configuration:
  {"mcpServers":{"mindwell":{"command":"mindwell","args":["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcp.NewServer(s.svc, appVersion)
	return srv.Run(ctx, os.Stdin, os.Stdout)
}
