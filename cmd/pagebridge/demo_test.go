package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/pagebridge/internal/render"
)

// TestDemoCmd tests the demo command output.
func TestDemoCmd(t *testing.T) {
	t.Parallel()

	t.Run("swaps html to json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := executeCommand(t, "demo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantParts := []string{
			"simple page, HTML view:\n" +
				"<html><body><br><h1>Principal</h1><br><div class='text'>Bienvenido a nuestro sitio web!</div><br></body></html>\n",
			"simple page, json view (same page, renderer swapped):\n" +
				"{\n\"title\": \"Principal\",<br>\"text\": \"Bienvenido a nuestro sitio web!\"<br>}\n",
			"product page, HTML view:\n",
			"<a href='https://www.starwars.com/databank'>Enlace a StarWars databank</a>",
			"product page, json view (same page, renderer swapped):\n",
			`"link": {"href": "https://www.starwars.com/databank", "title": "Enlace a StarWars databank"}`,
		}
		for _, want := range wantParts {
			if !strings.Contains(stdout, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
			}
		}
	})

	t.Run("swaps html to markdown", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := executeCommand(t, "demo", "--format", "markdown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "# Principal") {
			t.Errorf("expected markdown heading, got:\n%s", stdout)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeCommand(t, "demo", "-f", "pdf")
		if !errors.Is(err, render.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		t.Parallel()

		if _, _, err := executeCommand(t, "demo", "extra"); err == nil {
			t.Error("expected error for unexpected argument")
		}
	})
}
