package svgrender_test

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
	"github.com/cristianadrielbraun/qrcanvas.link/internal/svgrender"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func darkMatrix(t *testing.T, n int) engine.Matrix {
	t.Helper()
	rows := make([][]bool, n)
	for y := range rows {
		rows[y] = make([]bool, n)
		for x := range rows[y] {
			rows[y][x] = true
		}
	}
	m, err := engine.NewMatrix(rows)
	require.NoError(t, err)
	return m
}

func renderPlan(t *testing.T, m engine.Matrix, o engine.Options) string {
	t.Helper()
	p, err := engine.BuildPlan(m, o)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, svgrender.Render(&buf, p))
	return buf.String()
}

func TestRenderSquarePlan(t *testing.T) {
	t.Parallel()
	m, err := engine.NewMatrix([][]bool{{true, false}, {false, true}})
	require.NoError(t, err)

	out := renderPlan(t, m, engine.Options{Size: 64, FgColor: black, BgColor: white})

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "viewBox=")
	assert.Contains(t, out, `shape-rendering="crispEdges"`)
	assert.Contains(t, out, `d="M0 0h1v1H0zM1 1h1v1H1z"`)
	assert.Contains(t, out, `style="fill:#000000"`)
	assert.Contains(t, out, `style="fill:#ffffff"`)
	assert.Contains(t, out, "</svg>")
}

func TestRenderTransparentBackground(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 2)

	out := renderPlan(t, m, engine.Options{Size: 64, FgColor: black})
	assert.Equal(t, 0, strings.Count(out, "<rect"), "transparent background painted")
}

func TestRenderDecorativeCells(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 21)

	out := renderPlan(t, m, engine.Options{
		Size:    210,
		FgColor: black,
		BgColor: white,
		FgShape: engine.ShapeHeart,
	})

	// 441 dark modules: 147 finder corner squares stay rects, the
	// rest render as heart paths; one more rect paints the background.
	assert.Equal(t, 294, strings.Count(out, "<path "))
	assert.Equal(t, 148, strings.Count(out, "<rect "))
	assert.NotContains(t, out, "crispEdges")
}

func TestRenderCircleCells(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 21)

	out := renderPlan(t, m, engine.Options{
		Size:    210,
		FgColor: black,
		FgShape: engine.ShapeCircle,
	})
	assert.Equal(t, 294, strings.Count(out, "<circle "))
	assert.Contains(t, out, `r="0.5`)
}

func TestRenderGradient(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 2)

	out := renderPlan(t, m, engine.Options{
		Size:    64,
		BgColor: white,
		Gradient: &engine.Gradient{
			Start:  color.RGBA{R: 255, A: 255},
			Middle: color.RGBA{G: 255, A: 255},
			End:    color.RGBA{B: 255, A: 255},
		},
	})

	assert.Contains(t, out, "<defs>")
	assert.Contains(t, out, `<linearGradient id="qrGradient"`)
	assert.Contains(t, out, `x2="100%"`)
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#00ff00")
	assert.Contains(t, out, "#0000ff")
	assert.Contains(t, out, "fill:url(#qrGradient)")
}

func TestRenderTitle(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 2)

	out := renderPlan(t, m, engine.Options{Size: 64, FgColor: black, Title: "Scan me"})
	assert.Contains(t, out, "<title>Scan me</title>")

	out = renderPlan(t, m, engine.Options{Size: 64, FgColor: black})
	assert.NotContains(t, out, "<title>")
}

func TestRenderImage(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 21)

	out := renderPlan(t, m, engine.Options{
		Size:          290,
		FgColor:       black,
		IncludeMargin: true,
		Image: &engine.ImageSettings{
			Src:    "/uploads/logo.png",
			Width:  42,
			Height: 42,
		},
	})

	// 42 device units scale by 29/290 to 4.2 modules, centered on the
	// 21 wide matrix and shifted by the margin.
	assert.Contains(t, out, "<image")
	assert.Contains(t, out, `xlink:href="/uploads/logo.png"`)
	assert.Contains(t, out, `preserveAspectRatio="none"`)
	assert.Contains(t, out, `x="12.4`)
	assert.Contains(t, out, `width="4.2`)
}

func TestRenderBorder(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 21)

	t.Run("square", func(t *testing.T) {
		t.Parallel()
		out := renderPlan(t, m, engine.Options{
			Size:       210,
			FgColor:    black,
			BgColor:    white,
			BorderSize: 3,
		})
		assert.Contains(t, out, "fill:none;stroke:#000000;stroke-width:3.00")
	})

	t.Run("circle", func(t *testing.T) {
		t.Parallel()
		out := renderPlan(t, m, engine.Options{
			Size:          370,
			FgColor:       black,
			BgColor:       white,
			IncludeMargin: true,
			Level:         engine.LevelM,
			BgShape:       engine.BackgroundCircle,
			BorderSize:    2,
		})
		// The circular padding includes the border, so the grid is 41
		// wide and the stroke sits half its width inside the rim.
		assert.Contains(t, out, "fill:none;stroke:#000000;stroke-width:2.00")
		assert.Contains(t, out, `r="19.5`)
	})
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 21)
	p, err := engine.BuildPlan(m, engine.Options{
		Size:          370,
		FgColor:       black,
		BgColor:       white,
		IncludeMargin: true,
		BgShape:       engine.BackgroundCircle,
		FgShape:       engine.ShapeStar,
	})
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, svgrender.Render(&a, p))
	require.NoError(t, svgrender.Render(&b, p))
	assert.Equal(t, a.String(), b.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestRenderWriteError(t *testing.T) {
	t.Parallel()
	m := darkMatrix(t, 2)
	p, err := engine.BuildPlan(m, engine.Options{Size: 64, FgColor: black})
	require.NoError(t, err)
	require.Error(t, svgrender.Render(failWriter{}, p))
}
