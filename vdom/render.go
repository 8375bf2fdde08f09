//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/forgelogic/greet/console"
)

// Clear removes everything under the first element matching the CSS selector.
func Clear(selector string) {
	if selector == "" {
		return
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	switch n.Tag {
	case "div", "p":
		el := doc.Call("createElement", n.Tag)
		setAttributes(el, n.Attributes)
		if n.Content != "" {
			el.Set("textContent", n.Content)
		}
		for _, child := range n.Children {
			childEl := createElement(child)
			if childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
		return el
	default:
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}
}

// setAttributes applies VNode attributes to an element, handling Style
// values and boolean attributes.
func setAttributes(el js.Value, attributes map[string]any) {
	for k, v := range attributes {
		switch value := v.(type) {
		case Style:
			el.Call("setAttribute", k, value.String())
		case bool:
			// Boolean attributes are present or absent, never "false".
			if value {
				el.Call("setAttribute", k, "")
			}
		default:
			el.Call("setAttribute", k, value)
		}
	}
}
