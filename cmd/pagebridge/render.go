package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/pagebridge/internal/config"
	"github.com/nao1215/pagebridge/internal/pipeline"
	"github.com/nao1215/pagebridge/internal/render"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [page...]",
		Short: "Render catalog pages",
		Long: `Render writes catalog pages in the requested output format.

Pages are read from the catalog file. When no catalog file is found, the
built-in catalog (pages "home" and "episode-1") is used. With no page
arguments every page in the catalog is rendered.

Examples:
  # Render every page as HTML
  pagebridge render

  # Render the home page as JSON
  pagebridge render -f json home

  # Render every page in every format into a file
  pagebridge render --all -o out/pages.txt

Catalog file (.pagebridge.yaml) example:
  products:
    falcon:
      id: "42"
      title: Millennium Falcon
      image: falcon.png
  pages:
    - name: home
      kind: simple
      title: Main
      content: Welcome
    - name: falcon
      kind: product
      product: falcon`,
		Args: cobra.ArbitraryArgs,
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Output format: html, json or markdown (mutually exclusive with --all)")
	cmd.Flags().BoolP("all", "a", false,
		"Render every page in every format")
	cmd.Flags().StringP("config", "c", "",
		"Catalog file path (default: .pagebridge.yaml or $XDG_CONFIG_HOME/pagebridge/catalog.yaml)")
	cmd.Flags().StringP("output", "o", "",
		"Write rendered pages to specified file path (creates directories if needed)")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of pages rendered concurrently")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runRender(ctx, cfg, cmd.OutOrStdout(), logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Format, err = cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	cfg.AllFormats, err = cmd.Flags().GetBool("all")
	if err != nil {
		return nil, err
	}
	// The default format does not conflict with --all; only an explicit one does.
	if cfg.AllFormats && !cmd.Flags().Changed("format") {
		cfg.Format = ""
	}

	cfg.CatalogPath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Pages = args

	cfg.Catalog, err = loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadCatalog loads the catalog file.
// If the user explicitly specified a path, a missing file is an error.
// Otherwise the built-in catalog is used when no file is found.
func loadCatalog(catalogPath string) (*config.File, error) {
	path := config.FindCatalogFile(catalogPath)
	if path == "" {
		if catalogPath != "" {
			return nil, fmt.Errorf("catalog file not found: %s", catalogPath)
		}
		return config.DefaultCatalog(), nil
	}

	catalog, err := config.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}
	return catalog, nil
}

// runRender renders the configured pages and writes them to stdout or the output file.
func runRender(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	pages := cfg.Pages
	if len(pages) == 0 {
		pages = cfg.Catalog.PageNames()
	}

	logger.Info("starting render",
		"pages", pages,
		"formats", cfg.Formats(),
		"concurrency", cfg.Concurrency,
	)

	br := pipeline.NewBatchRenderer(
		render.DefaultRegistry(),
		cfg.Catalog,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	results, err := br.Render(ctx, pipeline.Jobs(pages, cfg.Formats()))
	if err != nil {
		return err
	}

	output := stdout
	if cfg.OutputFile != "" {
		f, err := createOutputFile(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	return writeResults(output, results)
}

// createOutputFile creates or truncates path, creating parent directories as needed.
func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// writeResults writes every successful result and returns the joined errors
// of the failed ones. A single result is written without a heading.
func writeResults(w io.Writer, results []pipeline.Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s (%s): %w", r.Job.Page, r.Job.Format, r.Err))
			continue
		}

		if len(results) > 1 {
			if _, err := fmt.Fprintf(w, "==> %s (%s) <==\n", r.Job.Page, r.Job.Format); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, r.Output); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
