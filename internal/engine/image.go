package engine

import "math"

// defaultImageScale sizes an image with no explicit dimensions at 10%
// of the rendered size.
const defaultImageScale = 0.1

// ImageSettings describes an embedded image request, with geometry in
// device units. Width or Height of zero fall back to the proportional
// default. Nil X or Y centers the image on that axis; zero is a valid
// explicit origin, hence the pointers.
type ImageSettings struct {
	Src      string
	Width    float64
	Height   float64
	X        *float64
	Y        *float64
	Excavate bool
}

// Rect is an integer-aligned rectangle in module units.
type Rect struct {
	X, Y, W, H int
}

// Placement is a resolved image position in module units, relative to
// the matrix origin; renderers add the margin offset when drawing.
// The coordinates may be fractional. Excavation, when non-nil, is the
// integer cover of the footprint.
type Placement struct {
	Src        string
	X, Y, W, H float64
	Excavation *Rect
}

// ResolveImage converts image settings from device units into module
// units. size is the total render size in device units and margin the
// effective quiet zone; the conversion factor is (side + 2*margin) /
// size. Explicit fields are multiplied by it; missing dimensions
// default to 10% of size before scaling; a missing origin centers the
// image against the matrix side. Returns nil when settings is nil.
//
// When size is not positive the scale collapses to zero and the
// placement degenerates with it; that is the documented approximation
// for a surface whose size is unknown, not an error.
//
// With Excavate set, the excavation rectangle floors the origin and
// takes the ceiling of (edge - floored origin) per dimension, so it
// always covers the fractional footprint.
func ResolveImage(m Matrix, size, margin int, settings *ImageSettings) *Placement {
	if settings == nil {
		return nil
	}
	side := float64(m.Side())
	total := side + 2*float64(margin)
	var scale float64
	if size > 0 {
		scale = total / float64(size)
	}
	defaultSize := math.Floor(float64(size) * defaultImageScale)

	w := settings.Width
	if w == 0 {
		w = defaultSize
	}
	h := settings.Height
	if h == 0 {
		h = defaultSize
	}
	w *= scale
	h *= scale

	var x, y float64
	if settings.X != nil {
		x = *settings.X * scale
	} else {
		x = side/2 - w/2
	}
	if settings.Y != nil {
		y = *settings.Y * scale
	} else {
		y = side/2 - h/2
	}

	p := &Placement{Src: settings.Src, X: x, Y: y, W: w, H: h}
	if settings.Excavate {
		fx, fy := math.Floor(x), math.Floor(y)
		p.Excavation = &Rect{
			X: int(fx),
			Y: int(fy),
			W: int(math.Ceil(w + x - fx)),
			H: int(math.Ceil(h + y - fy)),
		}
	}
	return p
}
