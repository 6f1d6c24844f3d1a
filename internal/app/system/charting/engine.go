// internal/app/system/charting/engine.go

// Package charting owns the chart-instance lifecycle: the engine capability
// that turns a config into a live chart handle, the fixed slot registry
// that guarantees at most one live handle per slot, and the named mount
// points charts are drawn into.
package charting

// Kind selects the visual encoding of a chart.
type Kind string

const (
	KindDonut Kind = "donut"
	KindPie   Kind = "pie"
	KindBar   Kind = "bar"
)

// Config is the engine-agnostic payload a renderer hands to an Engine.
// Labels, Values, and Colors are index-aligned.
type Config struct {
	Kind   Kind
	Title  string
	Labels []string
	Values []int
	Colors []string
}

// Handle is an opaque live chart instance returned by an Engine.
//
// A Handle must be released with Destroy before its slot can hold a new
// one; ToBase64Image exports the rendered chart as a data URI.
type Handle interface {
	Destroy() error
	ToBase64Image() (string, error)
}

// Engine is the charting capability. Availability is runtime-checked
// before every use: a nil Engine means the capability is absent, which
// degrades the dashboard rather than crashing it.
type Engine interface {
	Construct(mount Mount, cfg Config) (Handle, error)
}

// Mount is a named render surface a chart is drawn into, the server-side
// analogue of a canvas element. A missing mount is non-fatal for the
// other charts.
type Mount struct {
	Name   string
	Width  int
	Height int
}

// MountSet is a fixed lookup of mounts by name.
type MountSet map[string]Mount

// Lookup resolves a mount by name.
func (m MountSet) Lookup(name string) (Mount, bool) {
	mt, ok := m[name]
	return mt, ok
}

// Mount point names for the three dashboard charts.
const (
	MountClients = "clientsChart"
	MountLeads   = "leadsChart"
	MountTasks   = "tasksChart"
)

// DefaultMounts returns the three dashboard mount points at the given
// dimensions. Zero or negative dimensions fall back to 640x400.
func DefaultMounts(width, height int) MountSet {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 400
	}
	return MountSet{
		MountClients: {Name: MountClients, Width: width, Height: height},
		MountLeads:   {Name: MountLeads, Width: width, Height: height},
		MountTasks:   {Name: MountTasks, Width: width, Height: height},
	}
}
