package plot

import (
	"math"

	"github.com/gogpu/gg"
)

// Drawable is a visual element positioned in world units.
type Drawable interface {
	Draw(dc *gg.Context, vp Viewport, fonts *Fonts)
}

// PointCloud draws one filled dot per point, each in its own colour.
type PointCloud struct {
	Points []Point
	Colors []gg.RGBA

	// Size is the dot diameter in world units.
	Size float64
}

// Draw implements Drawable. Consecutive points of the same colour are
// filled as one path.
func (pc *PointCloud) Draw(dc *gg.Context, vp Viewport, _ *Fonts) {
	if len(pc.Points) == 0 {
		return
	}
	r := math.Max(vp.Length(pc.Size)/2, 0.5)
	current := pc.colorAt(0)
	for i, p := range pc.Points {
		c := pc.colorAt(i)
		if c != current {
			dc.SetColor(current)
			_ = dc.Fill()
			current = c
		}
		x, y := vp.Project(p)
		dc.DrawCircle(x, y, r)
	}
	dc.SetColor(current)
	_ = dc.Fill()
}

func (pc *PointCloud) colorAt(i int) gg.RGBA {
	if i < len(pc.Colors) {
		return pc.Colors[i]
	}
	return gg.Black
}

// Line is a solid or dashed straight segment.
type Line struct {
	From, To Point
	Color    gg.RGBA

	// Width is the stroke width in pixels.
	Width float64

	// Dash and Gap are in world units. A zero Dash draws a solid line.
	Dash, Gap float64
}

// Draw implements Drawable.
func (l *Line) Draw(dc *gg.Context, vp Viewport, _ *Fonts) {
	x1, y1 := vp.Project(l.From)
	x2, y2 := vp.Project(l.To)
	w := l.Width
	if w <= 0 {
		w = 1
	}
	dc.SetColor(l.Color)
	dc.SetLineWidth(w)
	if l.Dash > 0 {
		dc.SetDash(vp.Length(l.Dash), vp.Length(l.Gap))
		defer dc.ClearDash()
	}
	dc.DrawLine(x1, y1, x2, y2)
	_ = dc.Stroke()
}

// Label is a line of text centred horizontally on At, with its baseline at
// At.Y. Rotated labels read bottom to top.
type Label struct {
	Text  string
	At    Point
	Color gg.RGBA

	// Size is the font size in world units.
	Size float64

	Rotated bool
}

// Draw implements Drawable. Nothing is drawn until fonts are ready.
func (l *Label) Draw(dc *gg.Context, vp Viewport, fonts *Fonts) {
	px := math.Round(vp.Length(l.Size)*2) / 2
	if px < 1 {
		return
	}
	face := fonts.Face(px)
	if face == nil {
		return
	}
	x, y := vp.Project(l.At)
	dc.SetFont(face)
	dc.SetColor(l.Color)
	if l.Rotated {
		dc.Push()
		dc.RotateAbout(-math.Pi/2, x, y)
		dc.DrawStringAnchored(l.Text, x, y, 0.5, 0)
		dc.Pop()
		return
	}
	dc.DrawStringAnchored(l.Text, x, y, 0.5, 0)
}

// Disk is a filled circle.
type Disk struct {
	Center Point
	Radius float64
	Color  gg.RGBA
}

// Draw implements Drawable.
func (d *Disk) Draw(dc *gg.Context, vp Viewport, _ *Fonts) {
	x, y := vp.Project(d.Center)
	dc.SetColor(d.Color)
	dc.DrawCircle(x, y, vp.Length(d.Radius))
	_ = dc.Fill()
}

// Group draws its children in order.
type Group []Drawable

// Draw implements Drawable.
func (g Group) Draw(dc *gg.Context, vp Viewport, fonts *Fonts) {
	for _, d := range g {
		d.Draw(dc, vp, fonts)
	}
}
