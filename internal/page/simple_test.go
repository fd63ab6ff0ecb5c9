package page

import (
	"errors"
	"testing"

	"github.com/nao1215/pagebridge/internal/render"
)

// TestNewSimplePage tests SimplePage construction.
func TestNewSimplePage(t *testing.T) {
	t.Parallel()

	t.Run("keeps title and content", func(t *testing.T) {
		t.Parallel()
		p, err := NewSimplePage(render.NewHTMLRenderer(), "Main", "Welcome")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Title() != "Main" || p.Content() != "Welcome" {
			t.Errorf("got title %q content %q", p.Title(), p.Content())
		}
	})

	t.Run("nil renderer is rejected", func(t *testing.T) {
		t.Parallel()
		p, err := NewSimplePage(nil, "Main", "Welcome")
		if !errors.Is(err, ErrNilRenderer) {
			t.Errorf("expected ErrNilRenderer, got %v", err)
		}
		if p != nil {
			t.Error("expected nil page")
		}
	})

	t.Run("typed nil renderer is rejected", func(t *testing.T) {
		t.Parallel()
		var r *render.HTMLRenderer
		if _, err := NewSimplePage(r, "Main", "Welcome"); !errors.Is(err, render.ErrNilRenderer) {
			t.Errorf("expected ErrNilRenderer, got %v", err)
		}
	})
}

// TestSimplePageView tests the rendered output of a SimplePage.
func TestSimplePageView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		renderer render.Renderer
		want     string
	}{
		{
			name:     "html",
			renderer: render.NewHTMLRenderer(),
			want:     "<html><body><br><h1>Main</h1><br><div class='text'>Welcome</div><br></body></html>",
		},
		{
			name:     "json",
			renderer: render.NewJSONRenderer(),
			want:     "{\n\"title\": \"Main\",<br>\"text\": \"Welcome\"<br>}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := NewSimplePage(tt.renderer, "Main", "Welcome")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.View(); got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestSimplePageChangeRenderer tests swapping the renderer at runtime.
func TestSimplePageChangeRenderer(t *testing.T) {
	t.Parallel()

	t.Run("swap changes subsequent views only", func(t *testing.T) {
		t.Parallel()

		p, err := NewSimplePage(render.NewHTMLRenderer(), "Main", "Welcome")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		htmlView := p.View()
		if err := p.ChangeRenderer(render.NewJSONRenderer()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		jsonView := p.View()

		if htmlView == jsonView {
			t.Error("expected views to differ after swap")
		}
		if htmlView != "<html><body><br><h1>Main</h1><br><div class='text'>Welcome</div><br></body></html>" {
			t.Errorf("earlier view changed: %q", htmlView)
		}

		jr := render.NewJSONRenderer()
		want := jr.RenderParts([]string{
			jr.RenderHeader(),
			jr.RenderTitle("Main"),
			jr.RenderTextBlock("Welcome"),
			jr.RenderFooter(),
		})
		if jsonView != want {
			t.Errorf("got %q, expected %q", jsonView, want)
		}
		if p.Title() != "Main" || p.Content() != "Welcome" {
			t.Error("swap must not change page content")
		}
	})

	t.Run("nil swap is rejected and keeps renderer", func(t *testing.T) {
		t.Parallel()

		html := render.NewHTMLRenderer()
		p, err := NewSimplePage(html, "Main", "Welcome")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := p.View()

		if err := p.ChangeRenderer(nil); !errors.Is(err, ErrNilRenderer) {
			t.Errorf("expected ErrNilRenderer, got %v", err)
		}
		if p.Renderer() != render.Renderer(html) {
			t.Error("expected previous renderer to stay attached")
		}
		if p.View() != before {
			t.Error("expected view to be unchanged")
		}
	})

	t.Run("swap back restores output", func(t *testing.T) {
		t.Parallel()

		html := render.NewHTMLRenderer()
		p, err := NewSimplePage(html, "Main", "Welcome")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := p.View()
		_ = p.ChangeRenderer(render.NewMarkdownRenderer())
		_ = p.ChangeRenderer(html)

		if p.View() != first {
			t.Error("expected identical output after swapping back")
		}
	})
}

// TestSimplePageViewIsIdempotent tests that repeated views are identical.
func TestSimplePageViewIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, r := range []render.Renderer{
		render.NewHTMLRenderer(),
		render.NewJSONRenderer(),
		render.NewMarkdownRenderer(),
	} {
		p, err := NewSimplePage(r, "Main", "Welcome")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first, second := p.View(), p.View(); first != second {
			t.Errorf("%T: got %q then %q", r, first, second)
		}
	}
}
