// Package svgrender draws render plans as standalone SVG documents.
// The canvas spans the plan's device size; a viewBox maps it onto the
// module grid, so every coordinate below is in module units.
package svgrender

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
)

// gradientID names the shared linear gradient definition.
const gradientID = "qrGradient"

var _ engine.Canvas = (*pathCanvas)(nil)

// errWriter latches the first write error so the svg calls can run
// unchecked; svgo itself reports nothing.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	var n int
	n, ew.err = ew.w.Write(b)
	return n, ew.err
}

// Render writes p as a complete SVG document.
func Render(w io.Writer, p *engine.Plan) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Decimals = 2

	total := float64(p.Total)
	s.Startview(float64(p.Size), float64(p.Size), 0, 0, total, total)
	if p.Title != "" {
		s.Title(p.Title)
	}
	if p.Gradient != nil {
		s.Def()
		s.LinearGradient(gradientID, 0, 0, 100, 100, []svg.Offcolor{
			{Offset: 0, Color: hexColor(p.Gradient.Start), Opacity: 1},
			{Offset: 50, Color: hexColor(p.Gradient.Middle), Opacity: 1},
			{Offset: 100, Color: hexColor(p.Gradient.End), Opacity: 1},
		})
		s.DefEnd()
	}

	drawBackground(s, p, total)

	fg := foregroundFill(p)
	if allSquare(p) {
		s.Group(`shape-rendering="crispEdges"`)
	} else {
		s.Group()
	}
	if p.Path != "" {
		s.Path(p.Path, fg)
	}
	for _, c := range p.Modules {
		cellElement(s, c, fg)
	}
	for _, c := range p.Fillers {
		cellElement(s, c, fg)
	}
	s.Gend()

	drawBorder(s, p, total)

	if p.Image != nil {
		m := float64(p.Margin)
		s.Image(p.Image.X+m, p.Image.Y+m, int(p.Image.W), int(p.Image.H), p.Image.Src,
			`preserveAspectRatio="none"`)
	}

	s.End()
	return ew.err
}

// allSquare reports whether every drawn cell is an axis-aligned
// square, in which case crisp edges keep adjacent modules seamless.
// Curved shapes want anti-aliasing instead.
func allSquare(p *engine.Plan) bool {
	for _, c := range p.Modules {
		if c.Shape != engine.ShapeSquare {
			return false
		}
	}
	for _, c := range p.Fillers {
		if c.Shape != engine.ShapeSquare {
			return false
		}
	}
	return true
}

func cellElement(s *svg.SVG, c engine.Cell, fill string) {
	x, y := float64(c.X), float64(c.Y)
	switch c.Shape {
	case engine.ShapeSquare:
		s.Rect(x, y, 1, 1, fill)
	case engine.ShapeCircle:
		s.Circle(x+0.5, y+0.5, 0.5, fill)
	default:
		var pc pathCanvas
		engine.DrawModule(&pc, c.X, c.Y, c.Shape)
		s.Path(pc.String(), fill)
	}
}

func drawBackground(s *svg.SVG, p *engine.Plan, total float64) {
	if p.BgColor.A == 0 {
		return
	}
	style := "fill:" + hexColor(p.BgColor)
	if p.BgShape == engine.BackgroundCircle {
		s.Circle(total/2, total/2, total/2, style)
		return
	}
	s.Rect(0, 0, total, total, style)
}

// drawBorder strokes the silhouette outline, inset by half the stroke
// width so the border stays inside the canvas.
func drawBorder(s *svg.SVG, p *engine.Plan, total float64) {
	if p.BorderSize <= 0 {
		return
	}
	b := float64(p.BorderSize)
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2f", strokePaint(p), b)
	if p.BgShape == engine.BackgroundCircle {
		s.Circle(total/2, total/2, total/2-b/2, style)
		return
	}
	s.Rect(b/2, b/2, total-b, total-b, style)
}

func foregroundFill(p *engine.Plan) string {
	return "fill:" + strokePaint(p)
}

func strokePaint(p *engine.Plan) string {
	if p.Gradient != nil {
		return "url(#" + gradientID + ")"
	}
	return hexColor(p.FgColor)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
