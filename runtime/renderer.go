package runtime

import "github.com/forgelogic/greet/vdom"

// Renderer defines the minimal set of runtime operations available to a
// component's Render() code. This interface has NO build tags, making it
// available to both WASM and native test builds.
type Renderer interface {
	// RenderChild renders a child component at the given location.
	// The key parameter uniquely identifies the component instance so its
	// state survives across render passes.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}
