// ABOUTME: Shared setup for commands that touch the command store
// ABOUTME: Loads config, builds the logger and matcher, opens and seeds the store
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harper/duckie/internal/config"
	"github.com/harper/duckie/internal/db"
	"github.com/harper/duckie/internal/logging"
	"github.com/harper/duckie/internal/match"
	"github.com/spf13/cobra"
)

type app struct {
	cfg     *config.Config
	store   *db.Store
	matcher *match.Matcher
	logger  *log.Logger
}

func openApp(cmd *cobra.Command) (*app, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(workingDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}

	logger, err := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	similarity, err := match.Metric(cfg.Metric)
	if err != nil {
		return nil, err
	}

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("opened database", "path", store.Path())

	if cfg.SeedDefaults {
		n, err := store.SeedDefaults()
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		if n > 0 {
			logger.Info("seeded default commands", "count", n)
		}
	}

	return &app{
		cfg:     cfg,
		store:   store,
		matcher: match.New(match.WithFloor(cfg.ConfidenceFloor), match.WithSimilarity(similarity)),
		logger:  logger,
	}, nil
}

// history returns the query history log, or nil when history is off.
func (a *app) history() *logging.HistoryLog {
	if !a.cfg.History {
		return nil
	}
	return &logging.HistoryLog{Dir: a.cfg.HistoryPath(), Format: a.cfg.HistoryFormat}
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close database", "err", err)
	}
}
