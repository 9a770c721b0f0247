package plot

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/planck"
)

// World layout.
const (
	// WavelengthScale converts nanometres to world x units.
	WavelengthScale = 0.005

	// CurveHeight is the world height of the curve peak.
	CurveHeight = 5.0

	// PointSize is the diameter of curve dots in world units.
	PointSize = 0.1
)

var (
	// Background is the scene clear colour.
	Background = gg.Hex("808080")

	uvColor      = gg.Hex("0000ff")
	irColor      = gg.Hex("ff0000")
	captionColor = gg.Hex("ffc0cb")

	starCenter = Point{X: 15, Y: 3}
)

// Frame is the temperature dependent part of a scene. It is rebuilt as a
// whole on every update and never modified afterwards.
type Frame struct {
	Temperature float64
	Curve       planck.Curve
	Peak        float64
	StarColor   planck.Color

	Points *PointCloud
	Star   *Disk
	Title  *Label
	XAxis  Group
	YAxis  Group
	Marker Group
}

// Draw implements Drawable.
func (f *Frame) Draw(dc *gg.Context, vp Viewport, fonts *Fonts) {
	f.XAxis.Draw(dc, vp, fonts)
	f.YAxis.Draw(dc, vp, fonts)
	f.Marker.Draw(dc, vp, fonts)
	f.Points.Draw(dc, vp, fonts)
	f.Star.Draw(dc, vp, fonts)
	f.Title.Draw(dc, vp, fonts)
}

// Option configures a Scene.
type Option func(*Scene)

// WithSamples sets the number of curve samples per update.
func WithSamples(n int) Option {
	return func(s *Scene) { s.samples = n }
}

// WithSlider uses slider as the temperature control instead of a default
// one.
func WithSlider(slider *Slider) Option {
	return func(s *Scene) { s.slider = slider }
}

// Scene owns all visual elements of the visualization. It is safe for
// concurrent use: Draw may run while another goroutine updates the
// temperature.
type Scene struct {
	fonts   *Fonts
	slider  *Slider
	samples int
	static  Group

	seq atomic.Uint64

	mu      sync.RWMutex
	frame   *Frame
	applied uint64
}

// NewScene builds a scene at the slider's current temperature and
// subscribes to slider changes. fonts may still be loading; labels appear
// once it is ready.
func NewScene(fonts *Fonts, opts ...Option) *Scene {
	s := &Scene{
		fonts:   fonts,
		samples: planck.DefaultSamples,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.slider == nil {
		s.slider = NewTemperatureSlider()
	}
	s.static = staticDecorations()
	s.slider.OnChange(func(t float64) { s.Update(t) })
	s.Update(s.slider.Value())
	return s
}

// Slider returns the temperature control driving the scene.
func (s *Scene) Slider() *Slider {
	return s.slider
}

// Fonts returns the fonts used for labels.
func (s *Scene) Fonts() *Fonts {
	return s.fonts
}

// Frame returns the current temperature dependent elements.
func (s *Scene) Frame() *Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}

// Update resamples the curve for temperature and replaces the current
// frame. When updates race, the most recently started one wins and older
// results are discarded.
func (s *Scene) Update(temperature float64) {
	seq := s.seq.Add(1)
	f := BuildFrame(temperature, s.samples)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		planck.Logger().Debug("plot: dropped stale frame", "temperature", temperature)
		return
	}
	s.frame = f
	s.applied = seq
}

// Draw clears dc and renders the scene fitted to its size.
func (s *Scene) Draw(dc *gg.Context) {
	vp := FitViewport(dc.Width(), dc.Height(), WorldBounds)
	dc.ClearWithColor(Background)

	s.static.Draw(dc, vp, s.fonts)
	if f := s.Frame(); f != nil {
		f.Draw(dc, vp, s.fonts)
	}
	s.slider.Draw(dc)
}

// BuildFrame samples the curve at temperature and lays out every
// temperature dependent element.
func BuildFrame(temperature float64, samples int) *Frame {
	curve, peak := planck.SampleCurve(temperature, samples)
	star := planck.AverageColor(curve)
	heights := curve.Normalize(CurveHeight)

	pc := &PointCloud{
		Points: make([]Point, len(curve)),
		Colors: make([]gg.RGBA, len(curve)),
		Size:   PointSize,
	}
	for i, smp := range curve {
		pc.Points[i] = Point{X: smp.Wavelength * WavelengthScale, Y: heights[i]}
		c := smp.Color.Float()
		pc.Colors[i] = gg.RGB(c.R, c.G, c.B)
	}

	f := &Frame{
		Temperature: temperature,
		Curve:       curve,
		Peak:        peak,
		StarColor:   star,
		Points:      pc,
		Star:        &Disk{Center: starCenter, Radius: 1, Color: gg.RGB(star.R, star.G, star.B)},
		Title:       &Label{Text: TitleText(temperature), At: Point{X: 10, Y: 6}, Size: 0.5, Color: gg.Black},
		XAxis:       WavelengthAxis().Build(),
		YAxis:       RadianceAxis(peak).Build(),
		Marker:      peakMarker(curve.PeakWavelength(), peak),
	}
	planck.Logger().Debug("plot: frame built",
		"temperature", temperature, "peak_nm", curve.PeakWavelength(), "star", star)
	return f
}

// peakMarker marks the wavelength of maximum emission.
func peakMarker(nm, peak float64) Group {
	if peak <= 0 || nm <= 0 {
		return nil
	}
	x := nm * WavelengthScale
	return Group{
		&Line{From: Point{X: x}, To: Point{X: x, Y: CurveHeight}, Color: gg.RGBA{R: 0.2, G: 0.2, B: 0.2, A: 0.6}, Dash: 0.1, Gap: 0.1},
		&Label{Text: printer.Sprintf("peak %d nm", int(math.Round(nm))), At: Point{X: x, Y: CurveHeight + 0.15}, Size: 0.16, Color: gg.Black},
	}
}

// staticDecorations returns the elements that never change: the visible
// band limits and the captions.
func staticDecorations() Group {
	uv := planck.VisibleMin * WavelengthScale
	ir := planck.VisibleMax * WavelengthScale
	return Group{
		&Line{From: Point{X: uv}, To: Point{X: uv, Y: CurveHeight}, Color: uvColor, Dash: 0.2, Gap: 0.1},
		&Line{From: Point{X: ir}, To: Point{X: ir, Y: CurveHeight}, Color: irColor, Dash: 0.2, Gap: 0.1},
		&Label{Text: "Ultra Violet", At: Point{X: uv - 1, Y: 5}, Size: 0.2, Color: uvColor},
		&Label{Text: "Infra Red", At: Point{X: ir + 2, Y: 5}, Size: 0.2, Color: irColor},
		&Label{Text: "How the star would appear to us", At: Point{X: starCenter.X, Y: 1.5}, Size: 0.2, Color: captionColor},
		&Label{Text: "Adjust the slider to change the star temperature", At: Point{X: ir - 1, Y: 8.2}, Size: 0.2, Color: captionColor},
	}
}
