// Command cropsim drives the crop simulation engine from the terminal.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "cropsim",
		Short: "Day-stepped crop stand simulation engine",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(profilesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
