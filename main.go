//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/forgelogic/greet/appcomponents"
	"github.com/forgelogic/greet/runtime"
)

func main() {
	// Create the root component. It defaults to the system clock on init.
	app := &appcomponents.App{}

	// Create the renderer and mount the app under #app.
	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(app)
	renderer.RenderRoot()

	// Keep the Go program running
	select {}
}
