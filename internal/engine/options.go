package engine

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Shape selects how a single dark module is drawn.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeStar
	ShapeHeart
)

// ParseShape maps a shape name to its Shape. An empty name means
// square; anything else unrecognized is a configuration error, never a
// silent fallback.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "square":
		return ShapeSquare, nil
	case "circle":
		return ShapeCircle, nil
	case "star":
		return ShapeStar, nil
	case "heart":
		return ShapeHeart, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeStar:
		return "star"
	case ShapeHeart:
		return "heart"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func (s Shape) valid() bool { return s >= ShapeSquare && s <= ShapeHeart }

// BackgroundShape selects the outer silhouette of the rendered code.
type BackgroundShape int

const (
	BackgroundSquare BackgroundShape = iota
	BackgroundCircle
)

// ParseBackgroundShape maps a background shape name to its value. An
// empty name means square.
func ParseBackgroundShape(s string) (BackgroundShape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "square":
		return BackgroundSquare, nil
	case "circle":
		return BackgroundCircle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackgroundShape, s)
}

func (b BackgroundShape) String() string {
	switch b {
	case BackgroundSquare:
		return "square"
	case BackgroundCircle:
		return "circle"
	}
	return fmt.Sprintf("BackgroundShape(%d)", int(b))
}

func (b BackgroundShape) valid() bool {
	return b == BackgroundSquare || b == BackgroundCircle
}

// Level is the error-correction level the matrix was encoded with. The
// engine needs it only to pad circular boundaries: higher-redundancy
// symbols are denser and get more rim clearance.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

// ParseLevel maps a level name (L, M, Q, H or their long forms) to its
// Level. An empty name means M.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "LOW":
		return LevelL, nil
	case "", "M", "MEDIUM":
		return LevelM, nil
	case "Q", "QUART", "QUARTILE":
		return LevelQ, nil
	case "H", "HIGH", "HIGHEST":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) valid() bool { return l >= LevelL && l <= LevelH }

// Gradient is a three-stop 45 degree linear gradient applied to dark
// modules in place of the flat foreground color.
type Gradient struct {
	Start  color.RGBA
	Middle color.RGBA
	End    color.RGBA
}

// standardQuietZone is the quiet zone width the QR standard asks
// for, in modules.
const standardQuietZone = 4

// Options configures one render of a module matrix.
type Options struct {
	// Size is the total rendered size in device units.
	Size int
	// Level is the error-correction level the encoder used.
	Level Level
	// FgColor fills dark modules and the border; BgColor fills the
	// background. A zero-alpha BgColor leaves the background
	// unpainted.
	FgColor color.RGBA
	BgColor color.RGBA
	// Gradient, when non-nil, replaces FgColor.
	Gradient *Gradient
	// IncludeMargin adds the standard quiet zone around the symbol.
	// MarginSize, when non-nil, overrides it with an explicit module
	// count (floored, never negative).
	IncludeMargin bool
	MarginSize    *float64
	// BgShape selects the outer silhouette, FgShape the module shape.
	BgShape BackgroundShape
	FgShape Shape
	// BorderSize is the stroke width, in modules, drawn around the
	// background silhouette. Zero disables the border.
	BorderSize int
	// Image, when non-nil, requests an embedded image.
	Image *ImageSettings
	// Title is a pass-through accessible label with no geometric
	// effect.
	Title string
}

// EffectiveMargin resolves the quiet zone width in modules. An
// explicit MarginSize wins; otherwise IncludeMargin selects the
// standard width or zero. A circular background adds rim padding
// scaled by the error-correction level index, plus the border width.
func (o Options) EffectiveMargin() int {
	margin := 0
	switch {
	case o.MarginSize != nil:
		margin = int(math.Floor(*o.MarginSize))
		if margin < 0 {
			margin = 0
		}
	case o.IncludeMargin:
		margin = standardQuietZone
	}
	if o.BgShape == BackgroundCircle {
		margin += 2*(int(o.Level)+1) + max(o.BorderSize, 0)
	}
	return margin
}
