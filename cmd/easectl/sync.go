package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Manage Canvas data syncs",
	Long:  `Manage Canvas data syncs.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'sync' requires a subcommand (run)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
