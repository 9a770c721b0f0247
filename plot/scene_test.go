package plot

import (
	"bytes"
	"image/color"
	"image/png"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/planck"
)

func TestNewScene_InitialFrame(t *testing.T) {
	s := NewScene(nil, WithSamples(200))
	f := s.Frame()
	if f == nil {
		t.Fatal("Frame() = nil after NewScene")
	}
	if f.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %g, want %g", f.Temperature, DefaultTemperature)
	}
	if len(f.Curve) != 200 || len(f.Points.Points) != 200 {
		t.Errorf("samples = %d/%d, want 200", len(f.Curve), len(f.Points.Points))
	}
}

func TestScene_SliderReplacesFrame(t *testing.T) {
	s := NewScene(nil, WithSamples(100))
	before := s.Frame()

	if !s.Slider().Set(12000) {
		t.Fatal("Set(12000) reported no change")
	}
	after := s.Frame()
	if after == before {
		t.Fatal("frame was not replaced")
	}
	if after.Temperature != 12000 {
		t.Errorf("Temperature = %g, want 12000", after.Temperature)
	}
	if before.Temperature != DefaultTemperature {
		t.Error("previous frame was mutated")
	}
	if want := TitleText(12000); after.Title.Text != want {
		t.Errorf("title = %q, want %q", after.Title.Text, want)
	}
}

func TestScene_UpdateLogsFrame(t *testing.T) {
	orig := planck.Logger()
	t.Cleanup(func() { planck.SetLogger(orig) })

	var buf bytes.Buffer
	planck.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	s := NewScene(nil, WithSamples(50))
	s.Update(9000)
	if !strings.Contains(buf.String(), "plot: frame built") {
		t.Errorf("expected frame debug output, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "temperature=9000") {
		t.Errorf("frame record missing temperature, got: %s", buf.String())
	}
}

func TestBuildFrame(t *testing.T) {
	f := BuildFrame(5778, planck.DefaultSamples)

	var top float64
	for _, p := range f.Points.Points {
		if p.Y > top {
			top = p.Y
		}
	}
	if top != CurveHeight {
		t.Errorf("curve top = %g, want %g", top, CurveHeight)
	}
	last := f.Points.Points[len(f.Points.Points)-1]
	if last.X != planck.MaxWavelength*WavelengthScale {
		t.Errorf("last x = %g, want %g", last.X, planck.MaxWavelength*WavelengthScale)
	}
	if f.StarColor != planck.AverageColor(f.Curve) {
		t.Error("star colour does not match AverageColor")
	}
	if len(f.Marker) == 0 {
		t.Error("peak marker missing")
	}
	// Axis line plus eleven ticks with labels plus the axis name.
	if got, want := len(f.XAxis), 1+2*11+1; got != want {
		t.Errorf("len(XAxis) = %d, want %d", got, want)
	}
}

func TestBuildFrame_NoRadiance(t *testing.T) {
	f := BuildFrame(0, 50)
	if f.Peak != 0 {
		t.Errorf("Peak = %g, want 0", f.Peak)
	}
	for _, p := range f.Points.Points {
		if p.Y != 0 {
			t.Fatalf("point %v not on the axis", p)
		}
	}
	if f.Marker != nil {
		t.Error("peak marker drawn for a dark curve")
	}
}

func TestScene_ConcurrentUpdateAndDraw(t *testing.T) {
	s := NewScene(nil, WithSamples(100))
	dc := gg.NewContext(220, 120)
	defer func() { _ = dc.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Update(3000 + float64(i)*1000)
		}(i)
	}
	wg.Wait()
	s.Draw(dc)

	if f := s.Frame(); f == nil || f.Temperature < 3000 || f.Temperature > 10000 {
		t.Errorf("unexpected frame after concurrent updates: %+v", f)
	}
}

func TestRenderPNG(t *testing.T) {
	s := NewScene(nil, WithSamples(400))

	var buf bytes.Buffer
	const w, h = 880, 400
	if err := RenderPNG(&buf, s, w, h); err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("image size = %v, want %dx%d", b, w, h)
	}

	vp := FitViewport(w, h, WorldBounds)
	x, y := vp.Project(starCenter)
	got := color.NRGBAModel.Convert(img.At(int(x), int(y))).(color.NRGBA)
	want := s.Frame().StarColor.RGB()
	if absDiff(got.R, want.R) > 2 || absDiff(got.G, want.G) > 2 || absDiff(got.B, want.B) > 2 {
		t.Errorf("star pixel = %v, want ~%v", got, want)
	}

	corner := color.NRGBAModel.Convert(img.At(1, h-2)).(color.NRGBA)
	if absDiff(corner.R, 128) > 1 || absDiff(corner.G, 128) > 1 || absDiff(corner.B, 128) > 1 {
		t.Errorf("background pixel = %v, want grey", corner)
	}
}

func TestRenderPNG_InvalidSize(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, NewScene(nil, WithSamples(10)), 0, 10); err == nil {
		t.Error("RenderPNG(0x10) = nil, want error")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
