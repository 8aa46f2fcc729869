package svgrender

import (
	"fmt"
	"strings"
)

// pathCanvas records canvas calls as SVG path data. The decorative
// module shapes have no dedicated SVG element, so they render through
// this recorder into a path each.
type pathCanvas struct {
	b strings.Builder
}

func (c *pathCanvas) sep() {
	if c.b.Len() > 0 {
		c.b.WriteByte(' ')
	}
}

func (c *pathCanvas) MoveTo(x, y float64) {
	c.sep()
	fmt.Fprintf(&c.b, "M%.2f %.2f", x, y)
}

func (c *pathCanvas) LineTo(x, y float64) {
	c.sep()
	fmt.Fprintf(&c.b, "L%.2f %.2f", x, y)
}

func (c *pathCanvas) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	c.sep()
	fmt.Fprintf(&c.b, "C%.2f %.2f %.2f %.2f %.2f %.2f", x1, y1, x2, y2, x3, y3)
}

func (c *pathCanvas) ClosePath() {
	c.sep()
	c.b.WriteByte('Z')
}

func (c *pathCanvas) DrawRectangle(x, y, w, h float64) {
	c.sep()
	fmt.Fprintf(&c.b, "M%.2f %.2f L%.2f %.2f L%.2f %.2f L%.2f %.2f Z",
		x, y, x+w, y, x+w, y+h, x, y+h)
}

// DrawCircle traces the circle as two half arcs; a path cannot hold a
// circle element.
func (c *pathCanvas) DrawCircle(cx, cy, r float64) {
	c.sep()
	fmt.Fprintf(&c.b, "M%.2f %.2f A%.2f %.2f 0 1 1 %.2f %.2f A%.2f %.2f 0 1 1 %.2f %.2f Z",
		cx+r, cy, r, r, cx-r, cy, r, r, cx+r, cy)
}

func (c *pathCanvas) String() string { return c.b.String() }
