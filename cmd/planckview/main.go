// Command planckview shows the Planck's law visualization in a window.
//
// Keys:
//
//	Left/Right  change the temperature by 100 K
//	Up/Down     change the temperature by 1000 K
//	Space       reset to 5778 K
//	Escape      quit
//
// Architecture:
//
//	plot.Scene (draw) → ggcanvas.Canvas → gogpu.Context (GPU) → Window
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/spf13/pflag"

	"github.com/gogpu/planck"
	"github.com/gogpu/planck/internal/config"
	"github.com/gogpu/planck/plot"
)

func main() {
	cfg, err := config.Load("planckview", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "planckview: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	planck.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("viewer failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The scene starts without labels and gains them once the font is in.
	fonts := plot.LoadFonts(ctx, cfg.FontPath)
	defer func() { _ = fonts.Close() }()

	slider := plot.NewTemperatureSlider()
	slider.Set(cfg.Temperature)
	scene := plot.NewScene(fonts, plot.WithSamples(cfg.Samples), plot.WithSlider(slider))
	slider.OnChange(func(t float64) {
		logger.Debug("temperature changed", "kelvin", t)
	})

	// Continuous rendering: every frame redraws the scene, so slider
	// changes and a late font load need no explicit redraw request.
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(true))

	var canvas *ggcanvas.Canvas
	var frame int

	app.OnDraw(func(dc *gogpu.Context) {
		if frame == 0 {
			logger.Info("backend selected", "backend", dc.Backend())
		}

		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			canvas, err = ggcanvas.New(provider, w, h)
			if err != nil {
				logger.Error("create canvas", "err", err)
				app.Quit()
				return
			}
		}

		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				logger.Warn("resize canvas", "err", err)
			}
		}

		if err := canvas.Draw(scene.Draw); err != nil {
			logger.Warn("draw", "err", err)
		}

		sv := dc.RenderTarget().SurfaceView()
		sw, sh := dc.SurfaceSize()
		if err := canvas.RenderDirect(sv, sw, sh); err != nil {
			logger.Warn("render", "frame", frame, "err", err)
		}
		frame++
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		switch key {
		case gpucontext.KeyLeft:
			slider.Nudge(-1)
		case gpucontext.KeyRight:
			slider.Nudge(1)
		case gpucontext.KeyDown:
			slider.Nudge(-10)
		case gpucontext.KeyUp:
			slider.Nudge(10)
		case gpucontext.KeySpace:
			slider.Set(plot.DefaultTemperature)
		case gpucontext.KeyEscape:
			app.Quit()
		}
	})

	app.OnClose(func() {
		cancel()
		gg.CloseAccelerator()
	})

	return app.Run()
}
