package plot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/planck"
)

// ErrFontsNotReady is returned by [Fonts.Source] while the font is loading.
var ErrFontsNotReady = errors.New("plot: fonts not ready")

// Fonts loads a font in the background and hands out faces once it is
// available. Until then Face returns nil and labels are not drawn.
type Fonts struct {
	done chan struct{}

	mu     sync.Mutex
	source *text.FontSource
	faces  map[float64]text.Face
	err    error
}

// LoadFonts starts loading the TrueType font at path, or the embedded Go
// Regular font when path is empty. Cancelling ctx abandons the load.
func LoadFonts(ctx context.Context, path string) *Fonts {
	f := &Fonts{
		done:  make(chan struct{}),
		faces: make(map[float64]text.Face),
	}
	go f.load(ctx, path)
	return f
}

func (f *Fonts) load(ctx context.Context, path string) {
	defer close(f.done)
	log := planck.Logger()

	if err := ctx.Err(); err != nil {
		f.fail(err)
		return
	}

	var (
		source *text.FontSource
		err    error
	)
	if path == "" {
		source, err = text.NewFontSource(goregular.TTF)
	} else {
		source, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		log.Warn("plot: font load failed", "path", path, "err", err)
		f.fail(fmt.Errorf("plot: load font %q: %w", path, err))
		return
	}

	if err := ctx.Err(); err != nil {
		_ = source.Close()
		f.fail(err)
		return
	}

	f.mu.Lock()
	f.source = source
	f.mu.Unlock()
	log.Info("plot: font loaded", "name", source.Name())
}

func (f *Fonts) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// Done returns a channel closed when loading has finished, successfully or
// not.
func (f *Fonts) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether faces are available.
func (f *Fonts) Ready() bool {
	if f == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.source != nil
}

// Wait blocks until loading finishes or ctx is done. It returns the load
// error, if any, and ErrFontsNotReady for a nil Fonts.
func (f *Fonts) Wait(ctx context.Context) error {
	if f == nil {
		return ErrFontsNotReady
	}
	select {
	case <-f.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Source returns the loaded font source.
func (f *Fonts) Source() (*text.FontSource, error) {
	if f == nil {
		return nil, ErrFontsNotReady
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.source == nil {
		return nil, ErrFontsNotReady
	}
	return f.source, nil
}

// Face returns a face of the given pixel size, or nil if the font is not
// loaded.
func (f *Fonts) Face(size float64) text.Face {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.source == nil {
		return nil
	}
	face, ok := f.faces[size]
	if !ok {
		face = f.source.Face(size)
		f.faces[size] = face
	}
	return face
}

// Close releases the font source. Faces obtained earlier must not be used
// afterwards.
func (f *Fonts) Close() error {
	if f == nil {
		return nil
	}
	<-f.done
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.source == nil {
		return nil
	}
	err := f.source.Close()
	f.source = nil
	f.faces = make(map[float64]text.Face)
	return err
}
