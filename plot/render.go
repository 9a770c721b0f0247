package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
)

// RenderPNG draws the scene into a new width×height image with the
// software rasterizer and writes it to w as PNG.
func RenderPNG(w io.Writer, s *Scene, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("plot: invalid image size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	s.Draw(dc)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("plot: encode png: %w", err)
	}
	return nil
}

// SavePNG renders the scene to the PNG file at path.
func SavePNG(path string, s *Scene, width, height int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("plot: close %s: %w", path, cerr)
		}
	}()
	return RenderPNG(f, s, width, height)
}
