package engine

import (
	"fmt"
	"strings"
)

// Run is one contiguous horizontal span of dark modules, covering
// [X, X+Len) x [Y, Y+1) in margin-adjusted module units.
type Run struct {
	X, Y, Len int
}

// BuildRuns compresses the matrix row by row into dark runs, offset by
// margin. Scanning left to right, a run opens on the first dark module
// and closes on the next light one or at the row end. A fully light
// row contributes nothing; a version 40 symbol collapses from 31329
// potential cells to at most 177 runs per row.
func BuildRuns(m Matrix, margin int) []Run {
	var runs []Run
	for y, row := range m.Rows() {
		start := -1
		for x, dark := range row {
			switch {
			case dark && start < 0:
				start = x
			case !dark && start >= 0:
				runs = append(runs, Run{X: start + margin, Y: y + margin, Len: x - start})
				start = -1
			}
		}
		if start >= 0 {
			runs = append(runs, Run{X: start + margin, Y: y + margin, Len: len(row) - start})
		}
	}
	return runs
}

// PathString renders runs as one compact path description: per run an
// absolute move, a relative horizontal line, a one-module drop, an
// absolute return and a close. Rasterizing the result fills exactly
// the dark cells, with no gaps and no overlap.
func PathString(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		fmt.Fprintf(&b, "M%d %dh%dv1H%dz", r.X, r.Y, r.Len, r.X)
	}
	return b.String()
}
