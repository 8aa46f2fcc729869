package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
)

// fptr returns a pointer to v for optional option fields.
func fptr(v float64) *float64 { return &v }

// uniformMatrix builds an n-wide matrix with every module dark or
// light.
func uniformMatrix(t *testing.T, n int, dark bool) engine.Matrix {
	t.Helper()
	rows := make([][]bool, n)
	for y := range rows {
		rows[y] = make([]bool, n)
		for x := range rows[y] {
			rows[y][x] = dark
		}
	}
	m, err := engine.NewMatrix(rows)
	require.NoError(t, err)
	return m
}

// patternMatrix builds a deterministic mixed matrix whose rows contain
// dark runs of varying length.
func patternMatrix(t *testing.T, n int) engine.Matrix {
	t.Helper()
	rows := make([][]bool, n)
	for y := range rows {
		rows[y] = make([]bool, n)
		for x := range rows[y] {
			rows[y][x] = (x*7+y*13)%5 < 2
		}
	}
	m, err := engine.NewMatrix(rows)
	require.NoError(t, err)
	return m
}

// coverage paints every run into an n-wide count grid, failing on runs
// that leave the grid.
func coverage(t *testing.T, runs []engine.Run, n int) [][]int {
	t.Helper()
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
	}
	for _, r := range runs {
		require.GreaterOrEqual(t, r.Y, 0)
		require.Less(t, r.Y, n)
		require.Positive(t, r.Len)
		for x := r.X; x < r.X+r.Len; x++ {
			require.GreaterOrEqual(t, x, 0)
			require.Less(t, x, n)
			grid[r.Y][x]++
		}
	}
	return grid
}
