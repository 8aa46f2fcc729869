package engine

import "fmt"

// Matrix is a square grid of QR modules, true meaning dark. It is
// treated as immutable once built: operations that change cells return
// a new Matrix and leave the receiver untouched, so callers may keep a
// reference to the pre-excavation matrix and re-derive placements from
// it.
type Matrix struct {
	rows [][]bool
}

// NewMatrix validates rows as a non-empty square boolean grid and
// wraps it. The slice is retained, not copied; callers hand over
// ownership.
func NewMatrix(rows [][]bool) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return Matrix{}, fmt.Errorf("%w: no rows", ErrInvalidMatrix)
	}
	for y, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("%w: row %d has %d modules, want %d", ErrInvalidMatrix, y, len(row), n)
		}
	}
	return Matrix{rows: rows}, nil
}

// Side returns the matrix side length.
func (m Matrix) Side() int { return len(m.rows) }

// Dark reports whether the module at (x, y) is dark. Out-of-range
// coordinates are light.
func (m Matrix) Dark(x, y int) bool {
	if y < 0 || y >= len(m.rows) || x < 0 || x >= len(m.rows) {
		return false
	}
	return m.rows[y][x]
}

// Rows exposes the underlying grid. The result must not be mutated.
func (m Matrix) Rows() [][]bool { return m.rows }

// Excavate returns a copy of the matrix with every module inside r
// forced light. The rectangle is clamped to the grid first; a
// rectangle that misses the grid entirely yields the matrix unchanged.
// Rows outside the rectangle are shared with the receiver rather than
// copied.
func (m Matrix) Excavate(r Rect) Matrix {
	n := m.Side()
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, n), min(r.Y+r.H, n)
	if x0 >= x1 || y0 >= y1 {
		return m
	}
	rows := make([][]bool, n)
	for y, row := range m.rows {
		if y < y0 || y >= y1 {
			rows[y] = row
			continue
		}
		cleared := make([]bool, n)
		copy(cleared, row)
		for x := x0; x < x1; x++ {
			cleared[x] = false
		}
		rows[y] = cleared
	}
	return Matrix{rows: rows}
}

// FinderCorner reports whether module (x, y) of an n-wide symbol falls
// in one of the three 7x7 finder pattern blocks (top-left, top-right,
// bottom-left). Finder modules always render as plain squares so
// scanners can lock on regardless of the selected module shape.
func FinderCorner(n, x, y int) bool {
	return (y < 7 && x < 7) || (y < 7 && x >= n-7) || (y >= n-7 && x < 7)
}
