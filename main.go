package main

import (
	"os"

	"github.com/sdey/revu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
