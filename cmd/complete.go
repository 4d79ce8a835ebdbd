package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdey/revu/internal/app"
)

var completeCmd = &cobra.Command{
	Use:   "complete <course> <chapter>",
	Short: "Mark a chapter complete, unlocking its items for review",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setChapterCompletion(cmd, args[0], args[1], true)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <course> <chapter>",
	Short: "Reset a chapter to not complete, locking its items again",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setChapterCompletion(cmd, args[0], args[1], false)
	},
}

func setChapterCompletion(cmd *cobra.Command, courseID, moduleID string, complete bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	course, ok := a.Catalog.Course(courseID)
	if !ok {
		return fmt.Errorf("unknown course %q", courseID)
	}
	mod, ok := course.Module(moduleID)
	if !ok {
		return fmt.Errorf("chapter %q not found in course %q", moduleID, courseID)
	}

	if complete {
		if err := a.Prog.CompleteModule(ctx, courseID, moduleID); err != nil {
			return err
		}
		fmt.Printf("Chapter %q marked complete. Its items are now reviewable.\n", mod.Title)
	} else {
		if err := a.Prog.ResetModule(ctx, courseID, moduleID); err != nil {
			return err
		}
		fmt.Printf("Chapter %q reset. Its items are locked again.\n", mod.Title)
	}

	return a.SaveSnapshot(ctx)
}
