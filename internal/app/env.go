package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/mindwell/internal/config"
	"github.com/blackwell-systems/mindwell/internal/output"
	"github.com/blackwell-systems/mindwell/internal/store"
	"github.com/blackwell-systems/mindwell/internal/tracker"
)

// session is the loaded config plus an open tracker. Close releases the
// database.
type session struct {
	cfg *config.Config
	db  *store.DB
	svc *tracker.Service
}

// openSession loads config, applies color settings, and opens the store.
func openSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	output.ConfigureColor(flagNoColor, cfg.Output.Color)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Using database %s\n", db.Path())
	}

	svc := tracker.New(db, tracker.Options{
		Window:              cfg.Analytics.Window,
		JournalWindow:       cfg.Analytics.JournalWindow,
		RecommendationLimit: cfg.Analytics.RecommendationLimit,
	})
	return &session{cfg: cfg, db: db, svc: svc}, nil
}

func (s *session) Close() {
	_ = s.db.Close()
}

// writeJSON writes v to w as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
