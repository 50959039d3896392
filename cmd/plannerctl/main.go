package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Operator tools for the productivity planner",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("output", "o", formatJSON, "Output format (json, yaml)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(calendarAuthCmd())
	rootCmd.AddCommand(mcpCmd())

	return rootCmd
}
