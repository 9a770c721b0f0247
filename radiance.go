package planck

import "math"

// Physical constants used by the radiance formula.
const (
	// PlanckConstant is h in J·s.
	PlanckConstant = 6.626e-34

	// SpeedOfLight is c in m/s.
	SpeedOfLight = 3.0e8

	// BoltzmannConstant is k_B in J/K.
	BoltzmannConstant = 1.381e-23

	// WienConstant is b in m·K.
	WienConstant = 2.898e-3
)

// NanometersToMeters converts a wavelength in nanometres to metres.
func NanometersToMeters(nm float64) float64 {
	return nm * 1e-9
}

// Radiance returns the spectral radiance of a blackbody at the given
// wavelength (metres) and temperature (Kelvin), per Planck's law.
//
// Non-positive wavelengths and temperatures yield 0. Values at the extremes
// of the domain may be very large or underflow to zero; callers are expected
// to tolerate both.
func Radiance(wavelengthM, temperatureK float64) float64 {
	if wavelengthM <= 0 || temperatureK <= 0 {
		return 0
	}
	const hc = PlanckConstant * SpeedOfLight
	l5 := math.Pow(wavelengthM, 5)
	return 2 * PlanckConstant * SpeedOfLight * SpeedOfLight / l5 /
		(math.Exp(hc/(wavelengthM*BoltzmannConstant*temperatureK)) - 1)
}

// WienPeak returns the wavelength of peak emission in metres.
func WienPeak(temperatureK float64) float64 {
	if temperatureK <= 0 {
		return 0
	}
	return WienConstant / temperatureK
}
