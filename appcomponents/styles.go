package appcomponents

import "github.com/forgelogic/greet/vdom"

// Visual design: a full-bleed colored backdrop with white, bold, centered text.
var (
	containerStyle = vdom.Style{
		"align-items":      "center",
		"background-color": "#4444dd",
		"display":          "flex",
		"flex-direction":   "column",
		"height":           "100%",
		"justify-content":  "center",
	}

	lineStyle = vdom.Style{
		"color":       "white",
		"font-size":   "18px",
		"font-weight": "bold",
		"margin":      "4px 0",
		"text-align":  "center",
	}
)
