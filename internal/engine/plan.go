package engine

import (
	"fmt"
	"image/color"
)

// Cell is one per-module draw instruction in margin-adjusted module
// units.
type Cell struct {
	X, Y  int
	Shape Shape
}

// Plan is the engine's output: every geometric decision for one
// render, ready for a frontend to draw. Any two frontends consuming
// the same plan must reproduce geometrically identical output, modulo
// surface anti-aliasing.
type Plan struct {
	// Size is the requested device size, Total the grid side in
	// modules including margins, Margin the resolved quiet zone.
	Size   int
	Total  int
	Margin int

	FgColor  color.RGBA
	BgColor  color.RGBA
	Gradient *Gradient
	BgShape  BackgroundShape
	// BorderSize in modules; zero means no border stroke.
	BorderSize int
	// Title is the pass-through accessible label.
	Title string

	// Runs and Path describe the dark modules in square-module mode;
	// Modules carries per-cell draws for decorative shapes. Exactly
	// one of the two is populated.
	Runs    []Run
	Path    string
	Modules []Cell
	// Fillers are the circular boundary rim cells, present only with
	// a circular background.
	Fillers []Cell
	// Image is the resolved embedded image placement, nil when none
	// was requested. Coordinates are matrix-relative; frontends add
	// Margin.
	Image *Placement
}

// BuildPlan runs the rendering pipeline: resolve the margin and image
// placement, excavate under the image, then compress the modules into
// runs or dispatch them to shapes, and collect the circular boundary
// fillers. The input matrix is never mutated.
func BuildPlan(m Matrix, o Options) (*Plan, error) {
	if m.Side() == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidMatrix)
	}
	if !o.FgShape.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(o.FgShape))
	}
	if !o.BgShape.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackgroundShape, int(o.BgShape))
	}
	if !o.Level.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(o.Level))
	}

	margin := o.EffectiveMargin()
	border := max(o.BorderSize, 0)
	p := &Plan{
		Size:       o.Size,
		Total:      m.Side() + 2*margin,
		Margin:     margin,
		FgColor:    o.FgColor,
		BgColor:    o.BgColor,
		Gradient:   o.Gradient,
		BgShape:    o.BgShape,
		BorderSize: border,
		Title:      o.Title,
	}

	p.Image = ResolveImage(m, o.Size, margin, o.Image)
	if p.Image != nil && p.Image.Excavation != nil {
		m = m.Excavate(*p.Image.Excavation)
	}

	if o.FgShape == ShapeSquare {
		p.Runs = BuildRuns(m, margin)
		p.Path = PathString(p.Runs)
	} else {
		p.Modules = moduleCells(m, margin, o.FgShape)
	}

	if o.BgShape == BackgroundCircle {
		p.Fillers = boundaryFillers(m, p.Total, margin, border, o.FgShape)
	}
	return p, nil
}

// moduleCells lists every dark module with its effective shape. Finder
// corner modules stay square whatever shape was selected.
func moduleCells(m Matrix, margin int, shape Shape) []Cell {
	n := m.Side()
	var cells []Cell
	for y, row := range m.Rows() {
		for x, dark := range row {
			if !dark {
				continue
			}
			s := shape
			if FinderCorner(n, x, y) {
				s = ShapeSquare
			}
			cells = append(cells, Cell{X: x + margin, Y: y + margin, Shape: s})
		}
	}
	return cells
}
