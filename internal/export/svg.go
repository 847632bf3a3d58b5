package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/thermosim/internal/particle"
	"github.com/san-kum/thermosim/internal/thermo"
	"github.com/san-kum/thermosim/internal/viz"
)

const background = "#0a0a0a"

func header(sb *strings.Builder, width, height int) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// InstancesToSVG draws an instance buffer as one shape per particle in a
// width x height image spanning the extents ext. Radius is in normalized
// device units and is stretched by each record's scale. When bounds is not
// nil the active region is outlined.
func InstancesToSVG(data []float32, radius float64, width, height int, bounds *thermo.Bounds, ext thermo.Extents) string {
	if width <= 0 || height <= 0 || ext.HalfWidth <= 0 || ext.HalfHeight <= 0 {
		return ""
	}

	w, h := float64(width), float64(height)
	toX := func(x float64) float64 { return (x + ext.HalfWidth) / (2 * ext.HalfWidth) * w }
	toY := func(y float64) float64 { return (ext.HalfHeight - y) / (2 * ext.HalfHeight) * h }

	var sb strings.Builder
	header(&sb, width, height)

	if bounds != nil {
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#444466"/>
`, toX(-bounds.W), toY(bounds.H), toX(bounds.W)-toX(-bounds.W), toY(-bounds.H)-toY(bounds.H))
	}

	sb.WriteString("<g>\n")
	for i := 0; i+thermo.InstanceStride <= len(data); i += thermo.InstanceStride {
		cx := toX(float64(data[i+thermo.PositionOffset]))
		cy := toY(float64(data[i+thermo.PositionOffset+1]))
		col := particle.Color{
			R: float64(data[i+thermo.ColorOffset]),
			G: float64(data[i+thermo.ColorOffset+1]),
			B: float64(data[i+thermo.ColorOffset+2]),
		}.Hex()
		rx := radius * float64(data[i+thermo.ScaleOffset]) * w / 2
		ry := radius * float64(data[i+thermo.ScaleOffset+1]) * h / 2

		if math.Abs(rx-ry) < 0.05 {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>
`, cx, cy, rx, col)
		} else {
			fmt.Fprintf(&sb, `<ellipse cx="%.1f" cy="%.1f" rx="%.2f" ry="%.2f" fill="%s"/>
`, cx, cy, rx, ry, col)
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}

	width := int(float64(canvas.SubWidth()) * scale)
	height := int(float64(canvas.SubHeight()) * scale)

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", fill)

	dotRadius := scale * 0.4
	for y := 0; y < canvas.SubHeight(); y++ {
		for x := 0; x < canvas.SubWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
