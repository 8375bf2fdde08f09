//go:build !wasm
// +build !wasm

package appcomponents

import (
	"reflect"
	"testing"

	"github.com/forgelogic/greet/testcomponents"
)

// TestHello_InitialRender verifies that the greeting interpolates the props
// into the three rendered lines.
func TestHello_InitialRender(t *testing.T) {
	// Arrange: a greeting for Jane, born 1995, rendered in 2024
	hello := &Hello{
		Name:      "Jane",
		BirthYear: 1995,
		Year:      2024,
	}

	renderer := testcomponents.NewTestRenderer(hello)

	// Act: perform the initial render
	vnode := renderer.RenderRoot()

	// Assert: verify the root structure
	if vnode.Tag != "div" {
		t.Errorf("Expected root tag 'div', got '%s'", vnode.Tag)
	}
	if len(vnode.Children) != 3 {
		t.Fatalf("Expected 3 children (3 paragraphs), got %d", len(vnode.Children))
	}

	expected := []string{
		"Hello, Jane",
		"Nice to meet you!",
		"Now 2024 and you become 29 years old.",
	}
	for i, want := range expected {
		child := vnode.Children[i]
		if child.Tag != "p" {
			t.Errorf("Expected child %d to be 'p', got '%s'", i, child.Tag)
		}
		if child.Content != want {
			t.Errorf("Expected line %d to be '%s', got '%s'", i, want, child.Content)
		}
	}
}

// TestHello_AgeComputation verifies the age line across boundary inputs:
// birth year equal to the current year, in the past, and in the future.
// Out-of-range inputs are rendered verbatim, never rejected.
func TestHello_AgeComputation(t *testing.T) {
	cases := []struct {
		name      string
		birthYear int
		year      int
		wantLine  string
	}{
		{"past birth year", 2000, 2024, "Now 2024 and you become 24 years old."},
		{"birth year equals current year", 2024, 2024, "Now 2024 and you become 0 years old."},
		{"future birth year", 2030, 2024, "Now 2024 and you become -6 years old."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hello := &Hello{Name: "Sam", BirthYear: tc.birthYear, Year: tc.year}
			renderer := testcomponents.NewTestRenderer(hello)

			vnode := renderer.RenderRoot()

			if got := vnode.Children[2].Content; got != tc.wantLine {
				t.Errorf("Expected age line '%s', got '%s'", tc.wantLine, got)
			}
		})
	}
}

// TestHello_EmptyName verifies that a blank name is accepted verbatim.
func TestHello_EmptyName(t *testing.T) {
	hello := &Hello{Name: "", BirthYear: 2000, Year: 2024}
	renderer := testcomponents.NewTestRenderer(hello)

	vnode := renderer.RenderRoot()

	if got := vnode.Children[0].Content; got != "Hello, " {
		t.Errorf("Expected greeting 'Hello, ', got '%s'", got)
	}
	if got := vnode.Children[2].Content; got != "Now 2024 and you become 24 years old." {
		t.Errorf("Unexpected age line: '%s'", got)
	}
}

// TestHello_RenderIsIdempotent verifies that rendering twice with the same
// props produces identical trees.
func TestHello_RenderIsIdempotent(t *testing.T) {
	hello := &Hello{Name: "Jane", BirthYear: 1995, Year: 2024}
	renderer := testcomponents.NewTestRenderer(hello)

	first := renderer.RenderRoot()
	second := renderer.RenderRoot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical trees across renders, got\n%#v\nvs\n%#v", first, second)
	}
}
