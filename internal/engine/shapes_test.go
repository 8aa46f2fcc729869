package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
)

type recordedOp struct {
	name string
	args []float64
}

// recordingCanvas captures primitive calls for geometry assertions.
type recordingCanvas struct {
	ops []recordedOp
}

func (c *recordingCanvas) MoveTo(x, y float64) {
	c.ops = append(c.ops, recordedOp{"moveto", []float64{x, y}})
}

func (c *recordingCanvas) LineTo(x, y float64) {
	c.ops = append(c.ops, recordedOp{"lineto", []float64{x, y}})
}

func (c *recordingCanvas) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	c.ops = append(c.ops, recordedOp{"cubicto", []float64{x1, y1, x2, y2, x3, y3}})
}

func (c *recordingCanvas) ClosePath() {
	c.ops = append(c.ops, recordedOp{"close", nil})
}

func (c *recordingCanvas) DrawRectangle(x, y, w, h float64) {
	c.ops = append(c.ops, recordedOp{"rect", []float64{x, y, w, h}})
}

func (c *recordingCanvas) DrawCircle(cx, cy, r float64) {
	c.ops = append(c.ops, recordedOp{"circle", []float64{cx, cy, r}})
}

func TestDrawModuleSquare(t *testing.T) {
	t.Parallel()
	var c recordingCanvas
	engine.DrawModule(&c, 3, 4, engine.ShapeSquare)
	require.Equal(t, []recordedOp{{"rect", []float64{3, 4, 1, 1}}}, c.ops)
}

func TestDrawModuleCircle(t *testing.T) {
	t.Parallel()
	var c recordingCanvas
	engine.DrawModule(&c, 3, 4, engine.ShapeCircle)
	require.Equal(t, []recordedOp{{"circle", []float64{3.5, 4.5, 0.5}}}, c.ops)
}

func TestDrawModuleStar(t *testing.T) {
	t.Parallel()
	var c recordingCanvas
	engine.DrawModule(&c, 0, 0, engine.ShapeStar)

	// Ten vertices plus the close.
	require.Len(t, c.ops, 11)
	require.Equal(t, "moveto", c.ops[0].name)
	for i := 1; i < 10; i++ {
		require.Equal(t, "lineto", c.ops[i].name, "op %d", i)
	}
	require.Equal(t, "close", c.ops[10].name)

	// First vertex points straight up from the cell center.
	assert.InDelta(t, 0.5, c.ops[0].args[0], 1e-9)
	assert.InDelta(t, 0.0, c.ops[0].args[1], 1e-9)

	// Vertices alternate between the outer and inner radius.
	for i := 0; i < 10; i++ {
		dx := c.ops[i].args[0] - 0.5
		dy := c.ops[i].args[1] - 0.5
		want := 0.5
		if i%2 == 1 {
			want = 0.25
		}
		assert.InDelta(t, want, math.Hypot(dx, dy), 1e-9, "vertex %d", i)
	}
}

func TestDrawModuleHeart(t *testing.T) {
	t.Parallel()
	var c recordingCanvas
	engine.DrawModule(&c, 2, 2, engine.ShapeHeart)

	require.Len(t, c.ops, 8)
	require.Equal(t, "moveto", c.ops[0].name)
	for i := 1; i < 7; i++ {
		require.Equal(t, "cubicto", c.ops[i].name, "op %d", i)
	}
	require.Equal(t, "close", c.ops[7].name)

	// Starts at the dip between the lobes and ends where it began.
	assert.InDelta(t, 2.5, c.ops[0].args[0], 1e-9)
	assert.InDelta(t, 2.158, c.ops[0].args[1], 1e-9)
	last := c.ops[6].args
	assert.InDelta(t, c.ops[0].args[0], last[4], 1e-9)
	assert.InDelta(t, c.ops[0].args[1], last[5], 1e-9)

	// Every coordinate stays inside the unit cell at (2,2).
	for i, op := range c.ops {
		for j := 0; j+1 < len(op.args); j += 2 {
			assert.GreaterOrEqual(t, op.args[j], 2.0, "op %d arg %d", i, j)
			assert.LessOrEqual(t, op.args[j], 3.0, "op %d arg %d", i, j)
			assert.GreaterOrEqual(t, op.args[j+1], 2.0, "op %d arg %d", i, j+1)
			assert.LessOrEqual(t, op.args[j+1], 3.0, "op %d arg %d", i, j+1)
		}
	}
}
