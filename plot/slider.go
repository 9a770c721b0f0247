package plot

import (
	"math"
	"sync"

	"github.com/gogpu/gg"
)

// Temperature control defaults, in Kelvin.
const (
	MinTemperature     = 2800.0
	MaxTemperature     = 20000.0
	DefaultTemperature = 5778.0
	TemperatureStep    = 100.0
)

// Slider is the temperature input control. It clamps its value to
// [Min, Max] and notifies listeners on every change.
type Slider struct {
	Min, Max, Step float64

	mu        sync.Mutex
	value     float64
	listeners []func(float64)
}

// NewSlider returns a slider over [lo, hi] with the given step and initial
// value.
func NewSlider(lo, hi, step, value float64) *Slider {
	if hi < lo {
		lo, hi = hi, lo
	}
	s := &Slider{Min: lo, Max: hi, Step: step}
	s.value = s.clamp(value)
	return s
}

// NewTemperatureSlider returns a slider with the default temperature range.
func NewTemperatureSlider() *Slider {
	return NewSlider(MinTemperature, MaxTemperature, TemperatureStep, DefaultTemperature)
}

func (s *Slider) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Fraction returns the position of the value within [Min, Max] as 0..1.
func (s *Slider) Fraction() float64 {
	v := s.Value()
	if s.Max == s.Min {
		return 0
	}
	return (v - s.Min) / (s.Max - s.Min)
}

// Set moves the slider to v, clamped, and reports whether the value
// changed. Listeners run on the caller's goroutine after the slider is
// unlocked.
func (s *Slider) Set(v float64) bool {
	s.mu.Lock()
	v = s.clamp(v)
	if v == s.value {
		s.mu.Unlock()
		return false
	}
	s.value = v
	listeners := append([]func(float64){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
	return true
}

// Nudge moves the slider by steps increments of Step.
func (s *Slider) Nudge(steps int) bool {
	return s.Set(s.Value() + float64(steps)*s.Step)
}

// OnChange registers fn to be called with each new value.
func (s *Slider) OnChange(fn func(float64)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Slider widget geometry in pixels.
const (
	sliderX      = 10.0
	sliderY      = 10.0
	sliderWidth  = 500.0
	sliderHeight = 6.0
	sliderKnob   = 8.0
)

// Draw paints the slider as a track and knob in the top-left corner, in
// pixel coordinates.
func (s *Slider) Draw(dc *gg.Context) {
	w := math.Min(sliderWidth, float64(dc.Width())-2*sliderX)
	if w <= 0 {
		return
	}
	cy := sliderY + sliderKnob

	dc.SetRGB(0.85, 0.85, 0.85)
	dc.DrawRoundedRectangle(sliderX, cy-sliderHeight/2, w, sliderHeight, sliderHeight/2)
	_ = dc.Fill()

	x := sliderX + s.Fraction()*w
	dc.SetRGB(0.16, 0.45, 0.85)
	if x > sliderX {
		dc.DrawRoundedRectangle(sliderX, cy-sliderHeight/2, x-sliderX, sliderHeight, sliderHeight/2)
		_ = dc.Fill()
	}

	dc.DrawCircle(x, cy, sliderKnob)
	_ = dc.Fill()
}
