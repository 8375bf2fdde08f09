//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/forgelogic/greet/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// rootKey identifies the root component in the lifecycle tracking maps.
const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles the rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component       // The currently active root component
	mountSelector    string
}

// NewRenderer creates a new runtime renderer that mounts under the first
// element matching mountSelector.
func NewRenderer(mountSelector string) *RendererImpl {
	return &RendererImpl{
		instances:     make(map[string]Component),
		initialized:   make(map[string]bool),
		activeKeys:    make(map[string]bool),
		mountSelector: mountSelector,
	}
}

// SetCurrentComponent sets the component to be rendered as the root of the tree.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
// Each call clears the mount element and redraws the full tree: the apps
// this runtime targets are small enough that diffing buys nothing.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}

	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	// Ensure the component has a reference to the renderer for StateHasChanged.
	r.currentComponent.SetRenderer(r)

	if !r.initialized[rootKey] {
		// Call OnInit only once, before first render
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}

	// Call OnPropertiesSet before every render (including first)
	if receiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnPropertiesSet(receiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)

	vdom.Clear(r.mountSelector)
	vdom.RenderToSelector(r.mountSelector, newVDOM)

	// Clean up components that were not rendered in this cycle
	r.cleanupUnmountedComponents()
}

// RenderChild is called by a parent component's Render to render a child
// component. It handles the core logic of instance creation and reuse.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else {
		// We have seen this component before. Preserve the existing instance to
		// keep state, and apply the new props to it.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	// Ensure the instance knows about the renderer so it can call StateHasChanged.
	instance.SetRenderer(r)

	if isFirstRender {
		// Call OnInit only once, before first render
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	// Call OnPropertiesSet before every render (including first)
	if receiver, ok := instance.(ParameterReceiver); ok {
		r.callOnPropertiesSet(receiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		// If the component wasn't marked as active in this render, it's been unmounted
		if !r.activeKeys[key] {
			if cleaner, ok := instance.(Cleaner); ok {
				r.callOnDestroy(cleaner, key)
			}

			delete(r.instances, key)
			delete(r.initialized, key)
		}
	}
}

// ReRender redraws the full tree from the current root component.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
