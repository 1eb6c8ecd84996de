package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local HTTP JSON API",
	Long: `Start a local HTTP server exposing check-ins, journal, sentiment,
recommendations, and insights as JSON for a browser front end.

Endpoints:
  GET  /health             Liveness check
  GET  /dashboard          Streak, recent mood, wellness score
  GET  /checkins           Recent check-ins (?limit=N)
  POST /checkins           {"mood":4,"activities":["exercise"],"notes":""}
  GET  /journal            Recent journal entries (?limit=N)
  POST /journal            {"text":"..."}
  POST /sentiment          {"text":"..."} (not saved)
  GET  /recommendations    Current recommendations
  GET  /insights           Chart data

The server binds to loopback by default. Stop it with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, 127.0.0.1:7420)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	addr := serveAddr
	if addr == "" {
		addr = s.cfg.Server.Addr
	}

	log := api.NewLogger(api.LoggerOptions{Verbose: flagVerbose, File: s.cfg.Server.LogFile})
	defer func() { _ = log.Sync() }()

	srv := &http.Server{
		Addr: addr,
		Handler: api.NewRouter(s.svc, log, api.Options{
			CORSOrigins:      s.cfg.Server.CORSOrigins,
			JournalListLimit: s.cfg.Analytics.JournalListLimit,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", addr, "db", s.cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
