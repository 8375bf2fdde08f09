package appcomponents

import (
	"github.com/forgelogic/greet/clock"
	"github.com/forgelogic/greet/runtime"
	"github.com/forgelogic/greet/vdom"
)

// The one person this app greets.
const (
	greetName      = "Jane"
	greetBirthYear = 1995
)

// App is the root view. It owns the constant greeting target and the year
// source, and passes both down to Hello as plain props. Resolving the year
// here keeps Hello deterministic and directly testable.
type App struct {
	runtime.ComponentBase

	// Clock is the year source. Leave nil to use the system clock.
	Clock clock.Clock
}

func (a *App) OnInit() {
	if a.Clock == nil {
		a.Clock = clock.System()
	}
}

func (a *App) Render(r runtime.Renderer) *vdom.VNode {
	// Read the year fresh on every pass so a render that straddles New Year
	// picks up the new value.
	year := a.Clock.Year()

	return vdom.Div(map[string]any{"style": containerStyle},
		r.RenderChild("hello", &Hello{
			Name:      greetName,
			BirthYear: greetBirthYear,
			Year:      year,
		}),
	)
}
