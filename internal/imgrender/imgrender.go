// Package imgrender draws render plans onto a raster canvas and
// encodes the result as PNG or JPEG. It must agree with the SVG
// frontend on geometry; only anti-aliasing may differ.
package imgrender

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
)

const jpegQuality = 92

var _ engine.Canvas = (*gg.Context)(nil)

// Render rasterizes p onto a Size by Size canvas. The context is
// scaled so drawing happens in module units; untouched pixels stay
// transparent.
func Render(p *engine.Plan) (image.Image, error) {
	if p.Size <= 0 {
		return nil, fmt.Errorf("invalid render size %d", p.Size)
	}
	dc := gg.NewContext(p.Size, p.Size)
	total := float64(p.Total)
	unit := float64(p.Size) / total
	dc.Scale(unit, unit)

	if p.BgColor.A > 0 {
		dc.SetColor(p.BgColor)
		if p.BgShape == engine.BackgroundCircle {
			dc.DrawCircle(total/2, total/2, total/2)
		} else {
			dc.DrawRectangle(0, 0, total, total)
		}
		dc.Fill()
	}

	setPaint(dc, p)
	for _, r := range p.Runs {
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Len), 1)
	}
	for _, c := range p.Modules {
		engine.DrawModule(dc, c.X, c.Y, c.Shape)
	}
	for _, c := range p.Fillers {
		engine.DrawModule(dc, c.X, c.Y, c.Shape)
	}
	dc.Fill()

	if p.BorderSize > 0 {
		b := float64(p.BorderSize)
		// Stroke width is consumed in device units, the outline path
		// in module units.
		dc.SetLineWidth(b * unit)
		if p.BgShape == engine.BackgroundCircle {
			dc.DrawCircle(total/2, total/2, total/2-b/2)
		} else {
			dc.DrawRectangle(b/2, b/2, total-b, total-b)
		}
		dc.Stroke()
	}

	if p.Image != nil {
		if err := drawLogo(dc, p, unit); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// setPaint selects the module paint: a flat color, or a gradient
// running from the top left to the bottom right corner. Gradient
// stops are evaluated in device space, so the stops span Size pixels.
func setPaint(dc *gg.Context, p *engine.Plan) {
	if p.Gradient == nil {
		dc.SetColor(p.FgColor)
		return
	}
	size := float64(p.Size)
	grad := gg.NewLinearGradient(0, 0, size, size)
	grad.AddColorStop(0, p.Gradient.Start)
	grad.AddColorStop(0.5, p.Gradient.Middle)
	grad.AddColorStop(1, p.Gradient.End)
	dc.SetFillStyle(grad)
	dc.SetStrokeStyle(grad)
}

// EncodePNG writes img as PNG, keeping any transparency.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeJPEG writes img as JPEG. The format carries no alpha channel,
// so the image is flattened onto white first.
func EncodeJPEG(w io.Writer, img image.Image) error {
	opaque := image.NewRGBA(img.Bounds())
	draw.Draw(opaque, opaque.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(opaque, opaque.Bounds(), img, img.Bounds().Min, draw.Over)
	return jpeg.Encode(w, opaque, &jpeg.Options{Quality: jpegQuality})
}
