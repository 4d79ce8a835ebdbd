package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdey/revu/internal/config"
	"github.com/sdey/revu/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "revu",
	Short: "Terminal smart review companion",
	Long:  "Revu — terminal flashcard and activity review for self-paced courses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REVU_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/revu/config.yaml)")
	rootCmd.PersistentFlags().String("learner", "", "Learner profile to use (overrides config)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig layers the config file, environment, and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		if err := store.EnsureDir(db); err != nil {
			return config.Config{}, fmt.Errorf("prepare db dir: %w", err)
		}
		cfg.DB = db
	}
	if learner, _ := cmd.Flags().GetString("learner"); learner != "" {
		cfg.Learner = learner
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then REVU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
