package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCatalog writes content to a catalog file in a temporary directory.
func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultCatalogFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test catalog: %v", err)
	}
	return path
}

// TestLoadCatalogFile tests loading catalogs from YAML.
func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadCatalogFile("/nonexistent/path/.pagebridge.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cf != nil {
			t.Error("expected nil catalog when file not found")
		}
	})

	t.Run("loads valid YAML catalog", func(t *testing.T) {
		t.Parallel()

		path := writeCatalog(t, `products:
  falcon:
    id: "42"
    title: Millennium Falcon
    description: Fastest hunk of junk in the galaxy
    image: falcon.png
    price: 9.99
pages:
  - name: home
    kind: simple
    title: Main
    content: Welcome
  - name: falcon
    kind: product
    product: falcon
`)

		cf, err := LoadCatalogFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cf.Pages) != 2 {
			t.Fatalf("expected 2 pages, got %d", len(cf.Pages))
		}
		if cf.Pages[0].Content != "Welcome" {
			t.Errorf("expected content 'Welcome', got %q", cf.Pages[0].Content)
		}
		falcon, ok := cf.Products["falcon"]
		if !ok {
			t.Fatal("expected falcon in products")
		}
		if falcon.ID != "42" || falcon.Price != 9.99 {
			t.Errorf("unexpected product %+v", falcon)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		path := writeCatalog(t, `invalid: yaml: content: [}`)
		if _, err := LoadCatalogFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("returns validation error", func(t *testing.T) {
		t.Parallel()

		path := writeCatalog(t, `pages:
  - name: broken
    kind: product
    product: missing
`)
		if _, err := LoadCatalogFile(path); !errors.Is(err, ErrUnknownProduct) {
			t.Errorf("expected ErrUnknownProduct, got %v", err)
		}
	})

	t.Run("initializes nil Products map", func(t *testing.T) {
		t.Parallel()

		path := writeCatalog(t, `pages:
  - name: home
    kind: simple
`)
		cf, err := LoadCatalogFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Products == nil {
			t.Error("expected Products map to be initialized")
		}
	})
}

// TestFindCatalogFile tests the FindCatalogFile function.
func TestFindCatalogFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		path := writeCatalog(t, "pages: []")

		if got := FindCatalogFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		if got := FindCatalogFile("/nonexistent/path/catalog.yaml"); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("finds catalog in current directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultCatalogFile)
		if err := os.WriteFile(path, []byte("pages: []"), 0600); err != nil {
			t.Fatalf("failed to write test catalog: %v", err)
		}
		t.Chdir(dir)

		got := FindCatalogFile("")
		if filepath.Base(got) != DefaultCatalogFile {
			t.Errorf("expected %q, got %q", path, got)
		}
	})
}
