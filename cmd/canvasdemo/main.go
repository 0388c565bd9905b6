// Command canvasdemo draws a sample scene through the canvas host runtime
// and saves it as an image.
package main

import (
	"flag"
	"log"
	"math"
	"path/filepath"

	"github.com/gogpu/canvas/host"
	"github.com/gogpu/canvas/imagecodec"
)

func main() {
	var (
		width    = flag.Int("width", 800, "canvas width")
		height   = flag.Int("height", 600, "canvas height")
		provider = flag.String("provider", "", "surface provider (default from settings)")
		config   = flag.String("config", "", "TOML settings file")
		output   = flag.String("output", "demo.png", "output file; the extension picks the format")
	)
	flag.Parse()

	settings := host.DefaultSettings()
	if *config != "" {
		s, err := host.LoadSettings(*config)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = s
	}
	if *provider != "" {
		settings.Provider = *provider
	}

	rt, err := host.NewRuntime(settings)
	if err != nil {
		log.Fatalf("Failed to start runtime: %v", err)
	}
	ctx, err := rt.CreateContext(*width, *height, 1)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}

	w, h := float64(*width), float64(*height)
	drawBackground(rt, ctx, w, h)
	drawShapes(rt, ctx)
	drawTransforms(rt, ctx)
	drawPaths(rt, ctx)
	drawCaption(rt, ctx, h)

	asset := rt.CreateImageAssetFromContext(ctx)
	format := imagecodec.ParseOutputFormat(filepath.Ext(*output))
	if !rt.ImageAssetSave(asset, *output, uint32(format)) {
		log.Fatalf("Failed to save: %s", rt.ImageAssetError(asset))
	}

	log.Printf("Demo saved to %s (%dx%d, %s)\n", *output, *width, *height, format)
}

func drawBackground(rt *host.Runtime, ctx host.Handle, w, h float64) {
	rt.SetLinearGradient(ctx, host.Fill, 0, 0, 0, h,
		[]uint32{0xff1a3366, 0xff7f7f99}, []float64{0, 1})
	rt.FillRect(ctx, 0, 0, w, h)
}

func drawShapes(rt *host.Runtime, ctx host.Handle) {
	circles := []struct {
		x, y  float64
		color string
	}{
		{150, 150, "rgba(255, 77, 77, 0.8)"},
		{200, 150, "rgba(77, 255, 77, 0.8)"},
		{175, 200, "rgba(77, 77, 255, 0.8)"},
	}
	for _, c := range circles {
		rt.SetStyleCSS(ctx, host.Fill, c.color)
		rt.BeginPath(host.TargetContext, ctx)
		rt.Arc(host.TargetContext, ctx, c.x, c.y, 60, 0, 2*math.Pi, false)
		rt.Fill(ctx, "nonzero")
	}

	rt.SetFillColor(ctx, 0xffffcc00)
	rt.BeginPath(host.TargetContext, ctx)
	rt.MoveTo(host.TargetContext, ctx, 365, 100)
	rt.ArcTo(host.TargetContext, ctx, 470, 100, 470, 180, 15)
	rt.ArcTo(host.TargetContext, ctx, 470, 180, 350, 180, 15)
	rt.ArcTo(host.TargetContext, ctx, 350, 180, 350, 100, 15)
	rt.ArcTo(host.TargetContext, ctx, 350, 100, 470, 100, 15)
	rt.ClosePath(host.TargetContext, ctx)
	rt.Fill(ctx, "nonzero")

	rt.SetStrokeColor(ctx, 0xffffffff)
	rt.SetLineWidth(ctx, 4)
	rt.StrokeRect(ctx, 350, 100, 120, 80)
}

var palette = [8]string{
	"tomato", "orange", "gold", "yellowgreen",
	"mediumseagreen", "deepskyblue", "royalblue", "orchid",
}

func drawTransforms(rt *host.Runtime, ctx host.Handle) {
	for i := range 8 {
		rt.Save(ctx)
		rt.Translate(ctx, 600, 150)
		rt.Rotate(ctx, float64(i)*math.Pi/4)
		rt.SetStyleCSS(ctx, host.Fill, palette[i])
		rt.FillRect(ctx, -30, -30, 60, 60)
		rt.Restore(ctx)
	}
}

func drawPaths(rt *host.Runtime, ctx host.Handle) {
	rt.Save(ctx)
	rt.Translate(ctx, 150, 400)

	wave := rt.CreatePathFromData("M0 0C50-50 100 50 150 0S250 30 300 0")
	defer rt.ReleasePath(wave)
	rt.SetStrokeColor(ctx, 0xffff8000)
	rt.SetLineWidth(ctx, 6)
	rt.SetLineCap(ctx, "round")
	rt.StrokePath(ctx, wave)

	rt.Translate(ctx, 400, 0)
	star := rt.CreatePath()
	defer rt.ReleasePath(star)
	const points = 5
	for i := range points * 2 {
		r := 60.0
		if i%2 == 1 {
			r = 30
		}
		a := float64(i)*math.Pi/points - math.Pi/2
		rt.LineTo(host.TargetPath, star, r*math.Cos(a), r*math.Sin(a))
	}
	rt.ClosePath(host.TargetPath, star)
	rt.SetShadowColor(ctx, 0x80000000)
	rt.SetShadowBlur(ctx, 8)
	rt.SetShadowOffset(ctx, 4, 4)
	rt.SetFillColor(ctx, 0xffffff00)
	rt.FillPath(ctx, star, "evenodd")

	rt.Restore(ctx)
}

func drawCaption(rt *host.Runtime, ctx host.Handle, h float64) {
	rt.SetFont(ctx, "bold 24px sans-serif")
	rt.SetTextAlign(ctx, "left")
	rt.SetFillColor(ctx, 0xffffffff)
	rt.FillText(ctx, "canvas", 20, h-24)
}
