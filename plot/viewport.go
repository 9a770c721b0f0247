package plot

import "math"

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in world units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// WorldBounds encloses everything a Scene draws.
var WorldBounds = Rect{MinX: -3, MinY: -1.8, MaxX: 21, MaxY: 8.8}

// Viewport maps world units to pixels. World y grows upwards, pixel y
// grows downwards.
type Viewport struct {
	// Scale is the number of pixels per world unit.
	Scale float64

	// OffsetX and OffsetY give the pixel position of the world origin.
	OffsetX, OffsetY float64
}

// FitViewport returns a viewport that fits box into a width×height image,
// preserving aspect ratio and centring the box.
func FitViewport(width, height int, box Rect) Viewport {
	if width <= 0 || height <= 0 || box.Width() <= 0 || box.Height() <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math.Min(float64(width)/box.Width(), float64(height)/box.Height())
	padX := (float64(width) - box.Width()*scale) / 2
	padY := (float64(height) - box.Height()*scale) / 2
	return Viewport{
		Scale:   scale,
		OffsetX: padX - box.MinX*scale,
		OffsetY: padY + box.MaxY*scale,
	}
}

// Project converts a world position to pixel coordinates.
func (v Viewport) Project(p Point) (x, y float64) {
	return v.OffsetX + p.X*v.Scale, v.OffsetY - p.Y*v.Scale
}

// Length converts a world distance to pixels.
func (v Viewport) Length(d float64) float64 {
	return d * v.Scale
}
