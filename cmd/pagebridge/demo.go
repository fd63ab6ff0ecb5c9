package main

import (
	"fmt"
	"io"

	"github.com/nao1215/pagebridge/internal/config"
	"github.com/nao1215/pagebridge/internal/page"
	"github.com/nao1215/pagebridge/internal/pipeline"
	"github.com/nao1215/pagebridge/internal/render"
	"github.com/spf13/cobra"
)

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in pages and swap their renderer at runtime",
		Long: `Demo renders the built-in welcome page and product page with the HTML
renderer, then swaps each page's renderer and renders it again.

The page objects are not rebuilt between the two views: only the renderer
attached to them changes.

Examples:
  # HTML first, then JSON
  pagebridge demo

  # HTML first, then Markdown
  pagebridge demo --format markdown`,
		Args: cobra.NoArgs,
		RunE: runDemoCmd,
	}

	cmd.Flags().StringP("format", "f", string(render.FormatJSON),
		"Format to swap to after the HTML view")

	return cmd
}

// runDemoCmd executes the demo command.
func runDemoCmd(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)

	registry := render.DefaultRegistry()
	swapTo, err := registry.Get(format)
	if err != nil {
		return err
	}

	catalog := config.DefaultCatalog()
	html := render.NewHTMLRenderer()
	out := cmd.OutOrStdout()

	for _, name := range catalog.PageNames() {
		entry, err := catalog.Page(name)
		if err != nil {
			return err
		}
		p, err := pipeline.Build(catalog, entry, html)
		if err != nil {
			return err
		}

		logger.Debug("demo page built", "page", name, "kind", entry.Kind)

		if err := showSwap(out, entry.Kind, format, p, swapTo); err != nil {
			return err
		}
	}

	return nil
}

// showSwap prints the current view of p, swaps its renderer to next and
// prints the view again.
func showSwap(out io.Writer, kind, format string, p page.Page, next render.Renderer) error {
	fmt.Fprintf(out, "%s page, HTML view:\n", kind)
	fmt.Fprintln(out, p.View())
	fmt.Fprintln(out)

	if err := p.ChangeRenderer(next); err != nil {
		return fmt.Errorf("failed to change renderer: %w", err)
	}

	fmt.Fprintf(out, "%s page, %s view (same page, renderer swapped):\n", kind, format)
	fmt.Fprintln(out, p.View())
	fmt.Fprintln(out)

	return nil
}
