package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/pagebridge/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/pagebridge.yaml
var catalogTemplate embed.FS

// catalogTemplatePath is the path of the catalog template in catalogTemplate.
const catalogTemplatePath = "templates/pagebridge.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an example catalog file",
		Long: `Init creates a .pagebridge.yaml catalog in the current directory.

The generated file contains one simple page and one product page with
comments describing every field.

Examples:
  # Create .pagebridge.yaml in current directory
  pagebridge init

  # Create catalog at a specific path
  pagebridge init -o site/catalog.yaml

  # Force overwrite existing file
  pagebridge init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultCatalogFile,
		"Output file path for the catalog")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing catalog file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("catalog file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := catalogTemplate.ReadFile(catalogTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read catalog template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created catalog file: %s\n", outputPath)
	return nil
}
