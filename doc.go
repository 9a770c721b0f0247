// Package planck models blackbody radiation for visualization.
//
// # Overview
//
// The package is a small numeric core with no state:
//
//   - [Radiance] evaluates Planck's law for a wavelength and temperature.
//   - [WavelengthToRGB] approximates the colour of monochromatic light.
//   - [TemperatureToRGB] looks up the apparent colour of a star.
//   - [SampleCurve] samples a full radiance curve for one temperature.
//   - [AverageColor] derives the perceived colour of a sampled curve.
//
// Drawing lives in the plot sub-package, which renders curves with
// github.com/gogpu/gg.
//
// # Quick Start
//
//	curve, peak := planck.SampleCurve(5778, planck.DefaultSamples)
//	star := planck.AverageColor(curve)
//	fmt.Printf("peak %.3g at %.0f nm, colour %+v\n", peak, curve.PeakWavelength(), star)
//
// # Units
//
// [Radiance] takes wavelengths in metres. Everything else, including
// [Sample.Wavelength], uses nanometres. Convert with [NanometersToMeters].
//
// # Concurrency
//
// All functions are pure and safe to call from any goroutine.
package planck
