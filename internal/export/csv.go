package export

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/thermosim/internal/particle"
)

// Row is one particle as written by WriteCSV.
type Row struct {
	X  float64 `csv:"x"`
	Y  float64 `csv:"y"`
	Z  float64 `csv:"z"`
	R  float64 `csv:"r"`
	G  float64 `csv:"g"`
	B  float64 `csv:"b"`
	SX float64 `csv:"sx"`
	SY float64 `csv:"sy"`
	SZ float64 `csv:"sz"`
}

func Rows(ps []particle.Particle) []*Row {
	rows := make([]*Row, len(ps))
	for i, p := range ps {
		pos, col, sc := p.Position(), p.Color(), p.Scale()
		rows[i] = &Row{
			X: pos.X, Y: pos.Y, Z: pos.Z,
			R: col.R, G: col.G, B: col.B,
			SX: sc.X, SY: sc.Y, SZ: sc.Z,
		}
	}
	return rows
}

// WriteCSV writes a header and one row per particle.
func WriteCSV(w io.Writer, ps []particle.Particle) error {
	return gocsv.Marshal(Rows(ps), w)
}
