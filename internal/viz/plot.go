package viz

import (
	"math"

	"github.com/san-kum/thermosim/internal/thermo"
)

// Viewport is the world window [-HalfWidth, HalfWidth] x [-HalfHeight,
// HalfHeight] stretched over the whole canvas.
type Viewport struct {
	HalfWidth  float64
	HalfHeight float64
}

func ViewportFor(e thermo.Extents) Viewport {
	return Viewport{HalfWidth: math.Abs(e.HalfWidth), HalfHeight: math.Abs(e.HalfHeight)}
}

// toSub maps a world point to canvas sub-pixels, y pointing down.
func (v Viewport) toSub(c *Canvas, x, y float64) (int, int) {
	if v.HalfWidth <= 0 || v.HalfHeight <= 0 {
		return -1, -1
	}
	w := float64(c.SubWidth() - 1)
	h := float64(c.SubHeight() - 1)
	px := (x + v.HalfWidth) / (2 * v.HalfWidth) * w
	py := (v.HalfHeight - y) / (2 * v.HalfHeight) * h
	return int(math.Round(px)), int(math.Round(py))
}

// PlotInstances lights one sub-pixel per particle of an instance buffer.
// A trailing partial record is ignored.
func PlotInstances(c *Canvas, data []float32, v Viewport) int {
	plotted := 0
	for i := 0; i+thermo.InstanceStride <= len(data); i += thermo.InstanceStride {
		x := float64(data[i+thermo.PositionOffset])
		y := float64(data[i+thermo.PositionOffset+1])
		px, py := v.toSub(c, x, y)
		if px < 0 || py < 0 || px >= c.SubWidth() || py >= c.SubHeight() {
			continue
		}
		c.Set(px, py)
		plotted++
	}
	return plotted
}

// DrawBox outlines the region b.
func DrawBox(c *Canvas, b thermo.Bounds, v Viewport) {
	x0, y0 := v.toSub(c, -b.W, b.H)
	x1, y1 := v.toSub(c, b.W, -b.H)
	if x0 < 0 && x1 < 0 {
		return
	}
	c.DrawLine(x0, y0, x1, y0)
	c.DrawLine(x1, y0, x1, y1)
	c.DrawLine(x1, y1, x0, y1)
	c.DrawLine(x0, y1, x0, y0)
}
