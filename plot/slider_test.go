package plot

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestSlider_Defaults(t *testing.T) {
	s := NewTemperatureSlider()
	if s.Value() != DefaultTemperature {
		t.Errorf("Value() = %g, want %g", s.Value(), DefaultTemperature)
	}
	if s.Min != MinTemperature || s.Max != MaxTemperature {
		t.Errorf("range = [%g, %g], want [%g, %g]", s.Min, s.Max, MinTemperature, MaxTemperature)
	}
}

func TestSlider_Set(t *testing.T) {
	tests := []struct {
		name        string
		v           float64
		want        float64
		wantChanged bool
	}{
		{"inside", 9000, 9000, true},
		{"same", 5778, 5778, false},
		{"below", 100, MinTemperature, true},
		{"above", 1e6, MaxTemperature, true},
		{"NaN", math.NaN(), MinTemperature, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTemperatureSlider()
			var got []float64
			s.OnChange(func(v float64) { got = append(got, v) })

			if changed := s.Set(tt.v); changed != tt.wantChanged {
				t.Errorf("Set(%g) = %v, want %v", tt.v, changed, tt.wantChanged)
			}
			if s.Value() != tt.want {
				t.Errorf("Value() = %g, want %g", s.Value(), tt.want)
			}
			if tt.wantChanged && (len(got) != 1 || got[0] != tt.want) {
				t.Errorf("listener got %v, want [%g]", got, tt.want)
			}
			if !tt.wantChanged && len(got) != 0 {
				t.Errorf("listener called on no-op Set: %v", got)
			}
		})
	}
}

func TestSlider_Nudge(t *testing.T) {
	s := NewSlider(0, 1000, 100, 500)
	s.Nudge(2)
	if s.Value() != 700 {
		t.Errorf("Nudge(2) -> %g, want 700", s.Value())
	}
	s.Nudge(-10)
	if s.Value() != 0 {
		t.Errorf("Nudge(-10) -> %g, want 0", s.Value())
	}
	if s.Nudge(-1) {
		t.Error("Nudge at minimum reported a change")
	}
}

func TestSlider_Fraction(t *testing.T) {
	s := NewSlider(1000, 0, 10, 250)
	if s.Min != 0 || s.Max != 1000 {
		t.Fatalf("inverted bounds not swapped: [%g, %g]", s.Min, s.Max)
	}
	if got := s.Fraction(); got != 0.25 {
		t.Errorf("Fraction() = %g, want 0.25", got)
	}
	if got := NewSlider(5, 5, 1, 5).Fraction(); got != 0 {
		t.Errorf("Fraction() on empty range = %g, want 0", got)
	}
}

func TestSlider_Draw(t *testing.T) {
	dc := gg.NewContext(600, 40)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)

	s := NewSlider(0, 1, 0.1, 1)
	s.Draw(dc)

	// The knob sits at the right end of the 500 px track.
	r, g, b, _ := dc.Image().At(int(sliderX+sliderWidth), int(sliderY+sliderKnob)).RGBA()
	if b>>8 < 150 || r>>8 > 100 || g>>8 > 150 {
		t.Errorf("knob pixel = (%d, %d, %d), want blue", r>>8, g>>8, b>>8)
	}
}
