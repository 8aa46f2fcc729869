package engine

// Edge band geometry for circular backgrounds. The four bands are
// bandDepth modules deep along each side of the grid; cornerTrim keeps
// the scan clear of the finder pattern corners. The constants assume
// at least the smallest QR symbol (21 modules) plus circular margins.
const (
	bandDepth  = 10
	cornerTrim = 18
)

// insideBoundary reports whether the center of module (x, y) lies
// inside the background circle of a grid with the given total side.
// The circle is centered on the grid with radius total/2 - border - 1.
func insideBoundary(total, border, x, y int) bool {
	c := float64(total) / 2
	r := c - float64(border) - 1
	if r <= 0 {
		return false
	}
	dx := float64(x) + 0.5 - c
	dy := float64(y) + 0.5 - c
	return dx*dx+dy*dy <= r*r
}

// boundaryCandidates collects the edge band modules whose centers fall
// inside the background circle. The four bands are congruent under
// quarter turns of the grid, and the containment test preserves
// distance to the center, so the result is four-fold rotationally
// symmetric.
func boundaryCandidates(total, border int) [][2]int {
	var cells [][2]int
	add := func(x, y int) {
		if insideBoundary(total, border, x, y) {
			cells = append(cells, [2]int{x, y})
		}
	}
	// Top and bottom bands.
	for y := 0; y < bandDepth && y < total; y++ {
		for x := cornerTrim; x < total-cornerTrim; x++ {
			add(x, y)
			add(x, total-1-y)
		}
	}
	// Left and right bands.
	for x := 0; x < bandDepth && x < total; x++ {
		for y := cornerTrim; y < total-cornerTrim; y++ {
			add(x, y)
			add(total-1-x, y)
		}
	}
	return cells
}

// boundaryFillers returns the rim cells to draw for a circular
// background: edge band candidates outside the symbol area, textured
// by a tiled lookup into the matrix so the rim continues the symbol's
// own pattern. The lookup is deterministic; re-rendering the same
// matrix and options emits identical fillers.
func boundaryFillers(m Matrix, total, margin, border int, shape Shape) []Cell {
	n := m.Side()
	if n == 0 {
		return nil
	}
	var fillers []Cell
	for _, p := range boundaryCandidates(total, border) {
		x, y := p[0], p[1]
		// The symbol's own modules are already rendered; fillers only
		// dress the rim around it.
		if x >= margin && x < margin+n && y >= margin && y < margin+n {
			continue
		}
		if m.Dark(x%n, y%n) {
			fillers = append(fillers, Cell{X: x, Y: y, Shape: shape})
		}
	}
	return fillers
}
