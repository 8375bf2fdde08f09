//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import (
	"fmt"

	"github.com/forgelogic/greet/console"
)

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("OnInit panic in component %s: %v", key, rec))
		}
	}()
	initializer.OnInit()
}

// callOnPropertiesSet invokes the OnPropertiesSet lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnPropertiesSet(receiver ParameterReceiver, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("OnPropertiesSet panic in component %s: %v", key, rec))
		}
	}()
	receiver.OnPropertiesSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("OnDestroy panic in component %s: %v", key, rec))
		}
	}()
	cleaner.OnDestroy()
}
