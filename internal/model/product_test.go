package model

import "testing"

// TestNewProduct tests that every field is exposed unchanged.
func TestNewProduct(t *testing.T) {
	t.Parallel()

	p := NewProduct("42", "T", "D", "img.png", 9.99)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "id", got: p.ID(), want: "42"},
		{name: "title", got: p.Title(), want: "T"},
		{name: "description", got: p.Description(), want: "D"},
		{name: "image url", got: p.ImageURL(), want: "img.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %q, expected %q", tt.got, tt.want)
			}
		})
	}

	t.Run("price", func(t *testing.T) {
		t.Parallel()
		if p.Price() != 9.99 {
			t.Errorf("got %v, expected 9.99", p.Price())
		}
	})
}

// TestProductString tests the log representation.
func TestProductString(t *testing.T) {
	t.Parallel()

	t.Run("includes id and title", func(t *testing.T) {
		t.Parallel()
		p := NewProduct("7", "Episode I", "", "", 0)
		if got := p.String(); got != `7 ("Episode I")` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("empty id is kept", func(t *testing.T) {
		t.Parallel()
		p := NewProduct("", "Episode I", "", "", 0)
		if p.ID() != "" {
			t.Errorf("expected empty id, got %q", p.ID())
		}
	})
}
