package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/thermosim/internal/ensemble"
	"github.com/san-kum/thermosim/internal/particle"
	"github.com/san-kum/thermosim/internal/thermo"
	"github.com/san-kum/thermosim/internal/viz"
)

func populated(t *testing.T, n int) *thermo.Simulator {
	t.Helper()
	s, err := thermo.NewPopulated(thermo.Params{
		NumParticles:  n,
		BoxWidthPerc:  50,
		BoxHeightPerc: 50,
		Radius:        0.01,
		Ensemble:      ensemble.Microcanonical,
	}, thermo.WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInstancesToSVG(t *testing.T) {
	s := populated(t, 25)
	b := s.Bounds()
	svg := InstancesToSVG(s.InstanceData(), 0.01, 300, 180, &b, s.Extents())

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected a complete SVG document")
	}
	if n := strings.Count(svg, "<ellipse"); n != 25 {
		t.Errorf("expected 25 ellipses, got %d", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("expected red particles")
	}
	if !strings.Contains(svg, `stroke="#444466"`) {
		t.Error("expected box outline")
	}
}

func TestInstancesToSVGAspect(t *testing.T) {
	s := populated(t, 10)
	svg := InstancesToSVG(s.InstanceDataForViewport(300, 180), 0.01, 300, 180, nil, s.Extents())

	if n := strings.Count(svg, "<circle"); n != 10 {
		t.Errorf("aspect corrected data should draw circles, got %d", n)
	}
	if strings.Contains(svg, "stroke=") {
		t.Error("nil bounds should not draw an outline")
	}
}

func TestInstancesToSVGDegenerate(t *testing.T) {
	if InstancesToSVG(nil, 0.01, 0, 100, nil, thermo.DefaultExtents()) != "" {
		t.Error("expected empty output for zero width")
	}
	svg := InstancesToSVG([]float32{1, 2, 3}, 0.01, 10, 10, nil, thermo.DefaultExtents())
	if strings.Contains(svg, "<circle") || strings.Contains(svg, "<ellipse") {
		t.Error("partial record should be ignored")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 2, "#ff0000")
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Errorf("unexpected size in %s", svg)
	}
	if CanvasToSVG(nil, 1, "#fff") != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestWriteCSV(t *testing.T) {
	ps := []particle.Particle{
		particle.NewCircle(0.01, 0.5, -0.25, 0, 1, 0, 0),
		particle.NewCircle(0.01, -1, 0.75, 0, 1, 0, 0),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ps); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "x,y,z,r,g,b,sx,sy,sz" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.5,-0.25,0,1,0,0,1,1,1") {
		t.Errorf("unexpected row %q", lines[1])
	}
}
