package plot

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/planck"
)

// Orientation selects the direction of an axis.
type Orientation int

const (
	// Horizontal is the wavelength axis.
	Horizontal Orientation = iota
	// Vertical is the radiance axis.
	Vertical
)

const (
	tickHalf      = 0.1
	tickLabelSize = 0.2
	axisLabelSize = 0.2
)

// Axis describes a straight axis from the world origin with evenly spaced
// ticks.
type Axis struct {
	Orientation Orientation
	Name        string

	// Length in world units.
	Length float64

	// Ticks is the number of intervals; Ticks+1 tick marks are drawn.
	Ticks int

	// Max is the data value at the far end of the axis: the wavelength in
	// nm for a horizontal axis, the radiance for a vertical one.
	Max float64
}

// Build returns the drawables for the axis line, its ticks and labels.
func (a Axis) Build() Group {
	ink := gg.Black
	var g Group

	end := Point{X: a.Length}
	if a.Orientation == Vertical {
		end = Point{Y: a.Length}
	}
	g = append(g, &Line{To: end, Color: ink, Width: 1.5})

	if a.Ticks > 0 {
		step := a.Length / float64(a.Ticks)
		for i := 0; i <= a.Ticks; i++ {
			pos := float64(i) * step
			frac := pos / a.Length
			if a.Orientation == Horizontal {
				g = append(g,
					&Line{From: Point{pos, -tickHalf}, To: Point{pos, tickHalf}, Color: ink, Width: 1},
					&Label{Text: formatWavelength(frac * a.Max), At: Point{pos, -0.4}, Size: tickLabelSize, Color: ink},
				)
			} else {
				g = append(g,
					&Line{From: Point{-tickHalf, pos}, To: Point{tickHalf, pos}, Color: ink, Width: 1},
					&Label{Text: formatRadiance(frac * a.Max / RadianceUnit), At: Point{-0.9, pos - 0.07}, Size: tickLabelSize, Color: ink},
				)
			}
		}
	}

	if a.Orientation == Horizontal {
		g = append(g, &Label{Text: a.Name, At: Point{a.Length / 2, -1}, Size: axisLabelSize, Color: ink})
	} else {
		g = append(g, &Label{Text: a.Name, At: Point{-1.9, a.Length / 2}, Size: axisLabelSize, Color: ink, Rotated: true})
	}
	return g
}

// WavelengthAxis returns the x axis covering the sampled wavelength range.
func WavelengthAxis() Axis {
	return Axis{
		Orientation: Horizontal,
		Name:        "Wavelength (nm)",
		Length:      planck.MaxWavelength * WavelengthScale,
		Ticks:       10,
		Max:         planck.MaxWavelength,
	}
}

// RadianceAxis returns the y axis labelled up to peak radiance.
func RadianceAxis(peak float64) Axis {
	return Axis{
		Orientation: Vertical,
		Name:        "Spectral Radiance (x 10^13 W/m²/nm)",
		Length:      CurveHeight,
		Ticks:       10,
		Max:         peak,
	}
}
