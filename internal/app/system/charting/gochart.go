// internal/app/system/charting/gochart.go
package charting

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Image formats the engine can produce.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// GoChartEngine renders chart configs with go-chart. Charts are rendered
// eagerly at construction; the returned handle holds the finished image
// until destroyed.
type GoChartEngine struct {
	format string
}

// NewGoChartEngine creates an engine producing the given image format.
// Anything other than "png" falls back to "svg".
func NewGoChartEngine(format string) *GoChartEngine {
	if format != FormatPNG {
		format = FormatSVG
	}
	return &GoChartEngine{format: format}
}

// Construct renders cfg into mount's dimensions and returns the handle.
func (e *GoChartEngine) Construct(mount Mount, cfg Config) (Handle, error) {
	if len(cfg.Labels) != len(cfg.Values) {
		return nil, fmt.Errorf("chart %q: %d labels for %d values", cfg.Title, len(cfg.Labels), len(cfg.Values))
	}

	var buf bytes.Buffer
	var err error
	switch cfg.Kind {
	case KindDonut:
		c := chart.DonutChart{
			Title:  cfg.Title,
			Width:  mount.Width,
			Height: mount.Height,
			Values: chartValues(cfg),
		}
		err = c.Render(e.provider(), &buf)
	case KindPie:
		c := chart.PieChart{
			Title:  cfg.Title,
			Width:  mount.Width,
			Height: mount.Height,
			Values: chartValues(cfg),
		}
		err = c.Render(e.provider(), &buf)
	case KindBar:
		c := chart.BarChart{
			Title:    cfg.Title,
			Width:    mount.Width,
			Height:   mount.Height,
			BarWidth: barWidth(mount.Width, len(cfg.Values)),
			Bars:     chartValues(cfg),
		}
		err = c.Render(e.provider(), &buf)
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", cfg.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s chart %q: %w", cfg.Kind, cfg.Title, err)
	}

	return &goChartHandle{mime: e.mime(), data: buf.Bytes()}, nil
}

func (e *GoChartEngine) provider() chart.RendererProvider {
	if e.format == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

func (e *GoChartEngine) mime() string {
	if e.format == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// chartValues maps config labels/values/colors onto go-chart values.
// Bar values of zero are kept so the fixed three-bar layout survives.
func chartValues(cfg Config) []chart.Value {
	out := make([]chart.Value, 0, len(cfg.Values))
	for i, v := range cfg.Values {
		val := chart.Value{
			Value: float64(v),
			Label: cfg.Labels[i],
		}
		if i < len(cfg.Colors) && cfg.Colors[i] != "" {
			val.Style = chart.Style{
				FillColor: drawing.ColorFromHex(strings.TrimPrefix(cfg.Colors[i], "#")),
			}
		}
		out = append(out, val)
	}
	return out
}

func barWidth(mountWidth, bars int) int {
	if bars == 0 {
		return 60
	}
	w := mountWidth / (bars * 2)
	if w < 20 {
		w = 20
	}
	return w
}

// goChartHandle is the live chart resource produced by GoChartEngine.
type goChartHandle struct {
	mu   sync.Mutex
	mime string
	data []byte
}

// Destroy releases the rendered image. Safe to call more than once.
func (h *goChartHandle) Destroy() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.data = nil
	return nil
}

// ToBase64Image returns the rendered chart as a base64 data URI.
func (h *goChartHandle) ToBase64Image() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.data == nil {
		return "", fmt.Errorf("chart handle already destroyed")
	}
	return fmt.Sprintf("data:%s;base64,%s", h.mime, base64.StdEncoding.EncodeToString(h.data)), nil
}
