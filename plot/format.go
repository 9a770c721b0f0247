package plot

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RadianceUnit is the y axis unit, 10^13 W/m²/nm·sr.
const RadianceUnit = 1e13

var printer = message.NewPrinter(language.English)

// TitleText returns the headline shown above the curve.
func TitleText(temperature float64) string {
	return printer.Sprintf("Planck's Law Visualization - Star Temperature: %d K", int(math.Round(temperature)))
}

// formatWavelength formats an x axis tick in nanometres.
func formatWavelength(nm float64) string {
	return printer.Sprintf("%d", int(math.Round(nm)))
}

// formatRadiance formats a y axis tick already divided by RadianceUnit.
// Values below 1 use one-digit exponential notation with an unpadded
// exponent ("2.6e-1"), larger values one decimal place.
func formatRadiance(v float64) string {
	if v < 1 {
		return formatExponent(v, 1)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// formatExponent formats v in exponential notation without zero padding
// in the exponent, e.g. 0.26 → "2.6e-1" and 0 → "0.0e+0".
func formatExponent(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'e', prec, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mant, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}
