// Command planck renders the Planck's law visualization to PNG files.
//
// Usage:
//
//	planck -t 5778 -o sun.png
//	planck --sweep-from 2800 --sweep-to 20000 --sweep-step 400 -o frames/star-%d.png
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/pflag"

	"github.com/gogpu/planck"
	"github.com/gogpu/planck/internal/config"
	"github.com/gogpu/planck/plot"
)

func main() {
	cfg, err := config.Load("planck", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "planck: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	planck.SetLogger(logger)
	gg.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	fonts := plot.LoadFonts(ctx, cfg.FontPath)
	defer func() { _ = fonts.Close() }()

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := fonts.Wait(waitCtx); err != nil {
		// Labels are skipped, the curve is still worth rendering.
		logger.Warn("rendering without labels", "err", err)
	}

	temps := cfg.Sweep.Temperatures()
	if len(temps) == 0 {
		temps = []float64{cfg.Temperature}
	}

	slider := plot.NewTemperatureSlider()
	slider.Set(temps[0])
	scene := plot.NewScene(fonts, plot.WithSamples(cfg.Samples), plot.WithSlider(slider))

	for _, t := range temps {
		if err := ctx.Err(); err != nil {
			return err
		}
		slider.Set(t)
		if scene.Frame().Temperature != t {
			// Outside the control range the slider clamps, so drive the
			// scene directly.
			scene.Update(t)
		}

		path := cfg.OutputFor(t)
		if err := plot.SavePNG(path, scene, cfg.Width, cfg.Height); err != nil {
			return err
		}

		f := scene.Frame()
		star := f.StarColor.RGB()
		logger.Info("frame written",
			"path", path,
			"temperature", t,
			"peak_nm", f.Curve.PeakWavelength(),
			"star", fmt.Sprintf("#%06x", star.Hex()),
			"table", fmt.Sprintf("#%06x", planck.TemperatureToRGB(t).Hex()),
		)
	}
	return nil
}
