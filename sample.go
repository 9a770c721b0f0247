package planck

import "math"

// Sampling domain of the radiance curve, in nanometres.
const (
	MinWavelength = 100.0
	MaxWavelength = 4000.0
)

// DefaultSamples is the number of samples drawn per curve.
const DefaultSamples = 2000

// Gamma is the display gamma removed from averaged colours.
const Gamma = 2.2

// Sample is one point of a radiance curve.
type Sample struct {
	// Wavelength in nanometres.
	Wavelength float64

	// Radiance at Wavelength, in W·sr⁻¹·m⁻³.
	Radiance float64

	// Color of light at Wavelength. It does not depend on temperature.
	Color RGB
}

// Curve is a sampled radiance curve ordered by increasing wavelength.
type Curve []Sample

// SampleCurve samples the radiance of a blackbody at temperatureK over
// [MinWavelength, MaxWavelength] at n evenly spaced wavelengths, endpoints
// included. It returns the curve and its peak radiance.
//
// A non-positive n yields an empty curve. The result depends only on the
// arguments.
func SampleCurve(temperatureK float64, n int) (Curve, float64) {
	if n <= 0 {
		return Curve{}, 0
	}

	curve := make(Curve, n)
	step := 0.0
	if n > 1 {
		step = (MaxWavelength - MinWavelength) / float64(n-1)
	}

	var peak float64
	for i := range curve {
		nm := MinWavelength + float64(i)*step
		if i == n-1 && n > 1 {
			nm = MaxWavelength
		}
		r := Radiance(NanometersToMeters(nm), temperatureK)
		curve[i] = Sample{
			Wavelength: nm,
			Radiance:   r,
			Color:      WavelengthToRGB(nm),
		}
		if r > peak {
			peak = r
		}
	}

	Logger().Debug("planck: sampled curve",
		"temperature", temperatureK, "samples", n, "peak", peak)
	return curve, peak
}

// Peak returns the largest radiance in the curve, or 0 for an empty curve.
func (c Curve) Peak() float64 {
	var peak float64
	for _, s := range c {
		if s.Radiance > peak {
			peak = s.Radiance
		}
	}
	return peak
}

// PeakWavelength returns the wavelength of the brightest sample in
// nanometres, or 0 for an empty or all-dark curve.
func (c Curve) PeakWavelength() float64 {
	var peak, nm float64
	for _, s := range c {
		if s.Radiance > peak {
			peak, nm = s.Radiance, s.Wavelength
		}
	}
	return nm
}

// Normalize returns the radiance of every sample scaled so that the peak
// maps to height. A curve with no positive radiance maps to all zeros.
func (c Curve) Normalize(height float64) []float64 {
	out := make([]float64, len(c))
	peak := c.Peak()
	if peak == 0 || math.IsInf(peak, 0) {
		return out
	}
	for i, s := range c {
		out[i] = s.Radiance / peak * height
	}
	return out
}

// AverageColor returns the perceived colour of the light described by the
// curve: the radiance-weighted mean of the sample colours, gamma corrected
// and rescaled so that the strongest channel is 1. Absolute brightness is
// discarded.
//
// Samples outside the visible band are black and only add weight. A curve
// with zero total radiance yields black.
func AverageColor(c Curve) Color {
	var sum Color
	var total float64
	for _, s := range c {
		f := s.Color.Float()
		sum.R += f.R * s.Radiance
		sum.G += f.G * s.Radiance
		sum.B += f.B * s.Radiance
		total += s.Radiance
	}
	if total > 0 {
		sum.R /= total
		sum.G /= total
		sum.B /= total
	}

	sum.R = math.Pow(sum.R, 1/Gamma)
	sum.G = math.Pow(sum.G, 1/Gamma)
	sum.B = math.Pow(sum.B, 1/Gamma)

	if m := sum.Max(); m > 0 {
		sum.R /= m
		sum.G /= m
		sum.B /= m
	}
	return sum
}
