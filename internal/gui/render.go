package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/thermosim/internal/thermo"
)

// plotArea is the screen rectangle right of the control panel.
func (a *App) plotArea() rl.Rectangle {
	return rl.Rectangle{
		X:      panelWidth,
		Y:      0,
		Width:  float32(max(a.width-panelWidth, 1)),
		Height: float32(max(a.height, 1)),
	}
}

// toScreen maps world coordinates so that the simulator extents fill area.
func toScreen(area rl.Rectangle, e thermo.Extents, x, y float32) (float32, float32) {
	cx := area.X + area.Width/2
	cy := area.Y + area.Height/2
	sx := cx + x/float32(e.HalfWidth)*area.Width/2
	sy := cy - y/float32(e.HalfHeight)*area.Height/2
	return sx, sy
}

func (a *App) drawSim() {
	area := a.plotArea()
	ext := a.Sim.Extents()
	radius := float32(a.Sim.Params().Radius)

	b := a.Sim.Bounds()
	x0, y0 := toScreen(area, ext, float32(-b.W), float32(b.H))
	x1, y1 := toScreen(area, ext, float32(b.W), float32(-b.H))
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 1, ColTextDim)

	data := a.Sim.InstanceDataForViewport(int(area.Width), int(area.Height))
	for i := 0; i+thermo.InstanceStride <= len(data); i += thermo.InstanceStride {
		px, py := toScreen(area, ext, data[i+thermo.PositionOffset], data[i+thermo.PositionOffset+1])

		// radius is in normalized device units; sy carries the aspect correction
		rx := radius * data[i+thermo.ScaleOffset] * area.Width / 2
		ry := radius * data[i+thermo.ScaleOffset+1] * area.Height / 2
		col := rl.NewColor(
			uint8(data[i+thermo.ColorOffset]*255),
			uint8(data[i+thermo.ColorOffset+1]*255),
			uint8(data[i+thermo.ColorOffset+2]*255),
			255,
		)
		rl.DrawEllipse(int32(px), int32(py), max(rx, 1), max(ry, 1), col)
	}
}
