package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCatalogFile is the catalog file name searched in the current directory.
	DefaultCatalogFile = ".pagebridge.yaml"

	// XDGCatalogFile is the catalog file name searched in the XDG config directory.
	XDGCatalogFile = "catalog.yaml"
)

// ErrConfigNotFound is returned when the catalog file does not exist.
var ErrConfigNotFound = errors.New("catalog file not found")

// LoadCatalogFile loads and validates a catalog from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadCatalogFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if cf.Products == nil {
		cf.Products = make(map[string]ProductEntry)
	}

	if err := cf.Validate(); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindCatalogFile searches for the catalog file in the following order:
// 1. If catalogPath is specified, use it directly
// 2. Look for .pagebridge.yaml in the current directory
// 3. Look for catalog.yaml in the XDG config directory
//
// Returns the path to the catalog file if found, or empty string if not found.
func FindCatalogFile(catalogPath string) string {
	if catalogPath != "" {
		if _, err := os.Stat(catalogPath); err == nil {
			return catalogPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdCatalog := filepath.Join(cwd, DefaultCatalogFile)
		if _, err := os.Stat(cwdCatalog); err == nil {
			return cwdCatalog
		}
	}

	xdgCatalog := filepath.Join(XDGConfigDir(), XDGCatalogFile)
	if _, err := os.Stat(xdgCatalog); err == nil {
		return xdgCatalog
	}

	return ""
}
