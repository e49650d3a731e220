package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "easectl",
	Short: "EaseBoard server command line interface",
	Long:  `easectl manages the EaseBoard dashboard server: run the API, migrate the database, and generate data keys.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
