package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdey/revu/internal/app"
	"github.com/sdey/revu/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats [course]",
	Short: "Show per-chapter review statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		courses := a.Catalog.Courses()
		if len(args) == 1 {
			course, ok := a.Catalog.Course(args[0])
			if !ok {
				return fmt.Errorf("unknown course %q", args[0])
			}
			courses = []*catalog.Course{course}
		}

		for i, course := range courses {
			if i > 0 {
				fmt.Println()
			}
			if err := printCourseStats(ctx, a, course.ID); err != nil {
				return err
			}
		}
		return nil
	},
}

func printCourseStats(ctx context.Context, a *app.App, courseID string) error {
	cs, err := a.Review.CourseStats(ctx, a.Cfg.Learner, courseID)
	if err != nil {
		return fmt.Errorf("stats for %s: %w", courseID, err)
	}

	fmt.Printf("%s (%s)\n", cs.CourseTitle, cs.CourseID)
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-32s  %-8s  %12s  %12s\n", "Chapter", "Status", "Flashcards", "Activities")
	fmt.Println(strings.Repeat("─", 72))

	for _, m := range cs.Modules {
		status := "locked"
		if m.Unlocked {
			status = "unlocked"
		}
		fmt.Printf("%-32s  %-8s  %7d/%-4d  %7d/%-4d\n",
			truncate(m.Title, 32), status,
			m.FlashcardsReviewed, m.Flashcards,
			m.ActivitiesReviewed, m.Activities)
	}

	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("Lifetime reviews: %d    Sessions completed: %d\n",
		cs.LifetimeReviews, cs.Sessions)
	return nil
}
