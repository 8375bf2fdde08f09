package testcomponents

import (
	"github.com/forgelogic/greet/runtime"
	"github.com/forgelogic/greet/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach a root component to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
//
// Lifecycle methods run in the same order as the real renderer: OnInit once
// before the first render, OnPropertiesSet before every render, ApplyProps
// when a keyed child instance is reused.
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	children    map[string]runtime.Component
	initialized map[string]bool
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component:   comp,
		children:    make(map[string]runtime.Component),
		initialized: make(map[string]bool),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.runLifecycle("__root__", r.component, nil)
	r.currentVDOM = r.component.Render(r)
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.runLifecycle("__root__", r.component, nil)
	r.currentVDOM = r.component.Render(r)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Child returns the live child instance stored under key, or nil if that
// key has not been rendered yet.
func (r *TestRenderer) Child(key string) runtime.Component {
	return r.children[key]
}

// RenderChild renders a child component, reusing the instance stored under
// key the way the real renderer does.
func (r *TestRenderer) RenderChild(key string, childWithProps runtime.Component) *vdom.VNode {
	instance, exists := r.children[key]
	if !exists {
		instance = childWithProps
		r.children[key] = instance
	}
	instance.SetRenderer(r)
	var next runtime.Component
	if exists {
		next = childWithProps
	}
	r.runLifecycle(key, instance, next)
	return instance.Render(r)
}

// runLifecycle applies props and invokes the optional lifecycle methods on
// instance. next is non-nil only when a reused instance should absorb the
// props of a freshly constructed one.
func (r *TestRenderer) runLifecycle(key string, instance runtime.Component, next runtime.Component) {
	if next != nil {
		if updater, ok := instance.(runtime.PropUpdater); ok {
			updater.ApplyProps(next)
		}
	}
	if !r.initialized[key] {
		if initializer, ok := instance.(runtime.Initializer); ok {
			initializer.OnInit()
		}
		r.initialized[key] = true
	}
	if receiver, ok := instance.(runtime.ParameterReceiver); ok {
		receiver.OnPropertiesSet()
	}
}
