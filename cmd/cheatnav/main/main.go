package main

import (
	"os"

	"github.com/arthur-debert/cheatnav/cmd/cheatnav"
)

func main() {
	rootCmd := cheatnav.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		cheatnav.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
