package planck

import "math"

// Visible band limits in nanometres.
const (
	VisibleMin = 380.0
	VisibleMax = 700.0
)

// Star colour table limits in Kelvin.
const (
	StarColorMin = 2000.0
	StarColorMax = 40000.0
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex packs the colour as 0xRRGGBB.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Float converts the colour to [0, 1] channels.
func (c RGB) Float() Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Color is a colour with float channels, nominally in [0, 1].
type Color struct {
	R, G, B float64
}

// Max returns the largest channel.
func (c Color) Max() float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

// RGB quantizes the colour to 8 bits per channel, clamping to [0, 1].
func (c Color) RGB() RGB {
	return RGB{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B)}
}

func quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// WavelengthToRGB approximates the colour of monochromatic light.
//
// The visible range [380, 700] nm is split into six linear bands. Near both
// ends of the range intensity is dimmed to 30% to follow the falloff of
// visual sensitivity. Wavelengths outside the range map to black.
func WavelengthToRGB(nm float64) RGB {
	var r, g, b float64
	switch {
	case nm >= 380 && nm < 440:
		r, g, b = -(nm-440)/(440-380), 0, 1
	case nm >= 440 && nm < 490:
		r, g, b = 0, (nm-440)/(490-440), 1
	case nm >= 490 && nm < 510:
		r, g, b = 0, 1, -(nm-510)/(510-490)
	case nm >= 510 && nm < 580:
		r, g, b = (nm-510)/(580-510), 1, 0
	case nm >= 580 && nm < 645:
		r, g, b = 1, -(nm-645)/(645-580), 0
	case nm >= 645 && nm <= 700:
		r, g, b = 1, 0, 0
	default:
		return RGB{}
	}

	factor := 1.0
	switch {
	case nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm >= 645:
		factor = 0.3 + 0.7*(700-nm)/(700-645)
	}

	return RGB{
		R: uint8(math.Round(255 * r * factor)),
		G: uint8(math.Round(255 * g * factor)),
		B: uint8(math.Round(255 * b * factor)),
	}
}

type starColorStop struct {
	kelvin float64
	color  RGB
}

// starColors is a coarse perceptual blackbody colour table, red-orange at
// 2000 K through deep blue at 40000 K.
var starColors = [...]starColorStop{
	{2000, RGB{255, 50, 0}},
	{3000, RGB{255, 80, 0}},
	{4000, RGB{255, 140, 0}},
	{5000, RGB{255, 255, 0}},
	{6000, RGB{255, 255, 240}},
	{8000, RGB{255, 255, 255}},
	{10000, RGB{201, 215, 255}},
	{12000, RGB{100, 150, 255}},
	{20000, RGB{64, 156, 255}},
	{30000, RGB{0, 80, 255}},
	{40000, RGB{0, 0, 255}},
}

// TemperatureToRGB returns the apparent colour of a star at the given
// temperature. The temperature is clamped to [2000, 40000] K and the
// result interpolated linearly from a fixed table.
//
// This mapping is independent of [Radiance]; see [AverageColor] for a colour
// derived from the spectrum itself.
func TemperatureToRGB(kelvin float64) RGB {
	if math.IsNaN(kelvin) {
		kelvin = StarColorMin
	}
	kelvin = math.Max(StarColorMin, math.Min(StarColorMax, kelvin))

	lo, hi := starColors[0], starColors[1]
	for i := 0; i < len(starColors)-1; i++ {
		if kelvin >= starColors[i].kelvin && kelvin <= starColors[i+1].kelvin {
			lo, hi = starColors[i], starColors[i+1]
			break
		}
	}

	t := (kelvin - lo.kelvin) / (hi.kelvin - lo.kelvin)
	return RGB{
		R: lerp8(lo.color.R, hi.color.R, t),
		G: lerp8(lo.color.G, hi.color.G, t),
		B: lerp8(lo.color.B, hi.color.B, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}
