// internal/app/system/chartutil/colors.go
package chartutil

// Category colors for the dashboard charts. The mapping is deterministic:
// the same label always yields the same color, and unrecognized labels get
// a stable fallback rather than a random assignment.
var categoryColors = map[string]string{
	// Client statuses
	"Active":   "#1cc88a",
	"Inactive": "#858796",
	"VIP":      "#f6c23e",
	"Unknown":  "#adb5bd",

	// Lead statuses
	"New":       "#4e73df",
	"Contacted": "#36b9cc",
	"Qualified": "#1cc88a",
	"Won":       "#f6c23e",
	"Lost":      "#e74a3b",

	// Task priorities
	"High Priority":   "#e74a3b",
	"Medium Priority": "#f6c23e",
	"Low Priority":    "#1cc88a",
}

// FallbackColor is used for any label without an assigned color.
const FallbackColor = "#6c757d"

// ColorFor returns the hex color for a category label.
func ColorFor(label string) string {
	if c, ok := categoryColors[label]; ok {
		return c
	}
	return FallbackColor
}

// ColorsFor maps a label slice to its color slice, index-aligned.
func ColorsFor(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = ColorFor(l)
	}
	return out
}
