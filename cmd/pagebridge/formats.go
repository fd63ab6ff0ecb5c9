package main

import (
	"fmt"

	"github.com/nao1215/pagebridge/internal/render"
	"github.com/spf13/cobra"
)

// NewFormatsCmd creates the formats command.
func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range render.DefaultRegistry().List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
