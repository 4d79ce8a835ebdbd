package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdey/revu/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a course pack file or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		var courses []*catalog.Course
		if info.IsDir() {
			courses, err = catalog.LoadDir(path)
		} else {
			var c *catalog.Course
			c, err = catalog.LoadFile(path)
			if c != nil {
				courses = append(courses, c)
			}
		}
		if err != nil {
			return err
		}

		for _, c := range courses {
			fmt.Printf("%s (%s): %d chapters, %d items — OK\n",
				c.Title, c.ID, len(c.Modules), c.ItemCount())
		}
		return nil
	},
}
