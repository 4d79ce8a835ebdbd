package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdey/revu/internal/app"
)

// runApp loads config and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return app.Run(cfg)
}
