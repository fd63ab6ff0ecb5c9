package config

import (
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/nao1215/pagebridge/internal/render"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pagebridge"

	// DefaultFormat is the output format used when none is requested.
	DefaultFormat = string(render.FormatHTML)

	// DefaultConcurrency is the number of pages rendered at the same time.
	// Rendering is CPU-only and cheap, so a small pool is enough.
	DefaultConcurrency = 4
)

// Config holds all options of a render run.
// It is populated from CLI flags and passed down explicitly rather than
// kept in global state.
type Config struct {
	// Format is the output format name. Empty when AllFormats is set.
	Format string

	// AllFormats renders every page in every built-in format.
	// Mutually exclusive with an explicit Format.
	AllFormats bool

	// CatalogPath is the catalog file path given by the user.
	// If empty, FindCatalogFile searches the default locations.
	CatalogPath string

	// Catalog is the loaded catalog. It falls back to DefaultCatalog when
	// no catalog file exists.
	Catalog *File

	// Pages are the catalog page names to render. Empty means all pages.
	Pages []string

	// OutputFile is the file the rendered pages are written to.
	// Empty means standard output.
	OutputFile string

	// Concurrency is the maximum number of pages rendered at once.
	Concurrency int

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		Concurrency: DefaultConcurrency,
	}
}

// Formats returns the format names selected by the configuration.
func (c *Config) Formats() []string {
	if c.AllFormats {
		formats := make([]string, 0, len(render.Formats()))
		for _, f := range render.Formats() {
			formats = append(formats, f.String())
		}
		return formats
	}
	return []string{c.Format}
}

// XDGConfigDir returns the XDG config directory for pagebridge.
// On Linux: ~/.config/pagebridge
// On macOS: ~/Library/Application Support/pagebridge
// On Windows: %APPDATA%\pagebridge
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.AllFormats && c.Format != "" {
		return ErrConflictingFormats
	}

	if !c.AllFormats && !isBuiltinFormat(c.Format) {
		return ErrInvalidFormat
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}

// isBuiltinFormat reports whether name is one of the built-in format names.
func isBuiltinFormat(name string) bool {
	return slices.Contains(render.Formats(), render.Format(name))
}
