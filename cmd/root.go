package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonq/internal/config"
	"github.com/abhisek/lessonq/internal/logger"
	"github.com/abhisek/lessonq/internal/queue"
	"github.com/abhisek/lessonq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lessonq",
	Short: "Daily lesson-queue scheduler",
	Long:  "Lessonq assigns each learner a daily queue of lesson numbers, rolls unfinished assignments into failure records, and backfills skipped days.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LESSONQ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML or JSON configuration file")

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(failCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then LESSONQ_DB, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openScheduler loads configuration, opens the store, and wires the
// orchestrator over a revision-tracking document cache. The caller
// closes the store.
func openScheduler(cmd *cobra.Command) (*store.Store, *queue.Orchestrator, *config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	docs := store.NewDocCache(st.ProgressDocRepo())
	orch := queue.NewOrchestrator(docs, st.EventRepo(), logger.New("scheduler"))
	return st, orch, cfg, nil
}
