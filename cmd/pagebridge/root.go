// Package main provides the entry point for the pagebridge CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/pagebridge/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pagebridge.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagebridge",
		Short: "Render pages into HTML, JSON or Markdown",
		Long: `pagebridge renders structured pages into different output formats.

A page decides which content it shows (title, text, image, link) and in
which order. A renderer decides how each piece is written. Any page can be
rendered with any renderer, and the renderer can be swapped at runtime.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewFormatsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the command logger and installs it as the slog default.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}
