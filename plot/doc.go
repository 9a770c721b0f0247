// Package plot draws Planck curves with the gg 2D graphics library.
//
// A [Scene] owns every visual element of the visualization: the coloured
// radiance curve, the axes, the title, the star disk and the static
// markers for the ultraviolet and infrared limits. Each call to
// [Scene.Update] resamples the curve for a new temperature and replaces the
// temperature-dependent elements as a whole.
//
// Geometry is kept in world units (one unit is 200 nm along the x axis; the
// curve peak is 5 units tall) and projected to pixels by a [Viewport].
//
//	fonts := plot.LoadFonts(ctx, "")
//	_ = fonts.Wait(ctx)
//	scene := plot.NewScene(fonts)
//	scene.Slider().Set(9000)
//	err := plot.RenderPNG(w, scene, 1280, 720)
package plot
