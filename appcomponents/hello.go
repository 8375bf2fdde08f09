package appcomponents

import (
	"fmt"

	"github.com/forgelogic/greet/runtime"
	"github.com/forgelogic/greet/vdom"
)

// Hello greets one person and tells them how old they turn this year.
// It is a pure function of its props: the parent supplies the year, so two
// renders with the same props produce identical trees.
//
// Props are rendered verbatim. An empty Name greets nobody in particular and
// a BirthYear past Year yields a negative age; neither is rejected.
type Hello struct {
	runtime.ComponentBase

	Name      string
	BirthYear int
	Year      int
}

func (h *Hello) Render(r runtime.Renderer) *vdom.VNode {
	age := h.Year - h.BirthYear

	return vdom.Div(map[string]any{"class": "hello"},
		vdom.Paragraph("Hello, "+h.Name, map[string]any{"style": lineStyle}),
		vdom.Paragraph("Nice to meet you!", map[string]any{"style": lineStyle}),
		vdom.Paragraph(fmt.Sprintf("Now %d and you become %d years old.", h.Year, age), map[string]any{"style": lineStyle}),
	)
}

// ApplyProps absorbs the props of the next render pass so the instance kept
// by the renderer picks up a changed year.
func (h *Hello) ApplyProps(next runtime.Component) {
	if n, ok := next.(*Hello); ok {
		h.Name = n.Name
		h.BirthYear = n.BirthYear
		h.Year = n.Year
	}
}
