package engine

import "math"

// Canvas is the drawing sink the shape primitives render against. The
// method set matches an immediate-mode 2D context, so a raster backend
// satisfies it directly while a vector backend records path data.
// Implementations decide when recorded geometry is filled.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(cx, cy, r float64)
}

// Star geometry inside a unit cell: five points, outer radius touching
// the cell edges, first vertex pointing up.
const (
	starPoints      = 5
	starOuterRadius = 0.5
	starInnerRadius = 0.25
)

// DrawModule draws one dark module into the unit cell at (x, y) using
// the given shape. Callers are responsible for forcing ShapeSquare on
// finder corner cells before dispatching.
func DrawModule(c Canvas, x, y int, shape Shape) {
	fx, fy := float64(x), float64(y)
	switch shape {
	case ShapeSquare:
		c.DrawRectangle(fx, fy, 1, 1)
	case ShapeCircle:
		c.DrawCircle(fx+0.5, fy+0.5, 0.5)
	case ShapeStar:
		drawStar(c, fx+0.5, fy+0.5)
	case ShapeHeart:
		drawHeart(c, fx, fy)
	}
}

// drawStar traces the star outline by alternating outer and inner
// vertices around the cell center, starting straight up.
func drawStar(c Canvas, cx, cy float64) {
	for i := 0; i < 2*starPoints; i++ {
		r := starOuterRadius
		if i%2 == 1 {
			r = starInnerRadius
		}
		a := -math.Pi/2 + float64(i)*math.Pi/starPoints
		px := cx + r*math.Cos(a)
		py := cy + r*math.Sin(a)
		if i == 0 {
			c.MoveTo(px, py)
		} else {
			c.LineTo(px, py)
		}
	}
	c.ClosePath()
}

// heartCurves traces a two-lobe heart in a unit box, starting at the
// dip between the lobes and running through the left lobe, bottom tip
// and right lobe. Each row is one cubic segment: two control points
// and an end point.
var heartCurves = [...][6]float64{
	{0.500, 0.126, 0.455, 0.000, 0.273, 0.000},
	{0.000, 0.000, 0.000, 0.395, 0.000, 0.395},
	{0.000, 0.579, 0.182, 0.811, 0.500, 1.000},
	{0.818, 0.811, 1.000, 0.579, 1.000, 0.395},
	{1.000, 0.395, 1.000, 0.000, 0.727, 0.000},
	{0.591, 0.000, 0.500, 0.126, 0.500, 0.158},
}

// heartDipY is the y of the start point, the dip between the lobes.
const heartDipY = 0.158

func drawHeart(c Canvas, x, y float64) {
	c.MoveTo(x+0.5, y+heartDipY)
	for _, s := range heartCurves {
		c.CubicTo(x+s[0], y+s[1], x+s[2], y+s[3], x+s[4], y+s[5])
	}
	c.ClosePath()
}
