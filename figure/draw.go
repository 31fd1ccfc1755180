package figure

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any plot knowledge.
// In particular, transformations are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	// depending on the filling mode
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

// Driver is implemented by the output backends.
type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every shape.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)

	// DrawText draws a single line of text, whose position
	// and size are already transformed.
	DrawText(t Text)

	// DrawImage stretches img over the rectangle dst, already transformed.
	DrawImage(img image.Image, dst Bounds)
}

type DashOptions struct {
	Dash       []float64 // values for the dash pattern (nil or an empty slice for no dashes)
	DashOffset float64   // starting offset into the dash array
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	case Miter:
		return "miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "<unknown CapMode>"
	}
}

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6
	Join       JoinMode
	Cap        CapMode
	Dash       DashOptions
}

// Style holds the painting parameters of a shape.
// A nil color disables filling or stroking.
type Style struct {
	FillColor, StrokeColor     color.Color
	FillOpacity, StrokeOpacity float64
	LineWidth                  float64 // in figure units
	UseNonZeroWinding          bool
	Join                       JoinMode
	Cap                        CapMode
	Dash                       DashOptions
}

// DefaultStyle fills in black, with the winding rule,
// full opacity and no stroke.
var DefaultStyle = Style{
	FillColor:         color.Black,
	FillOpacity:       1,
	StrokeOpacity:     1,
	LineWidth:         1,
	UseNonZeroWinding: true,
	Join:              Miter,
	Cap:               ButtCap,
}

// StrokeStyle returns a style which only strokes, with the given color and width.
func StrokeStyle(c color.Color, width float64) Style {
	s := DefaultStyle
	s.FillColor = nil
	s.StrokeColor = c
	s.LineWidth = width
	return s
}

// FillStyle returns a style which only fills, with the given color.
func FillStyle(c color.Color) Style {
	s := DefaultStyle
	s.FillColor = c
	return s
}

// Align positions a text relatively to its anchor.
type Align uint8

const (
	AlignStart Align = iota // left, or top
	AlignMiddle
	AlignEnd // right, or baseline
)

// capHeight is the (approximate) height of upper case letters,
// relative to the font size
const capHeight = 0.72

// Text is a single line label.
type Text struct {
	Content string
	X, Y    float64 // anchor
	Size    float64 // font size
	Color   color.Color
	// HAlign is along the reading direction, VAlign across it
	HAlign, VAlign Align
	// Vertical texts are rotated by 90 degrees counter-clockwise
	Vertical bool
}

// Offsets returns the displacements to apply to the anchor, along and
// across the reading direction, to get the start of the baseline of
// a text whose rendered width is `width`.
// Positive `across` values go down for horizontal text.
func (t Text) Offsets(width float64) (along, across float64) {
	switch t.HAlign {
	case AlignMiddle:
		along = -width / 2
	case AlignEnd:
		along = -width
	}
	switch t.VAlign {
	case AlignStart:
		across = capHeight * t.Size
	case AlignMiddle:
		across = capHeight * t.Size / 2
	}
	return along, across
}

// Baseline returns the start of the baseline of t, in the
// coordinates of t, and the reading direction (dx, dy).
func (t Text) Baseline(width float64) (x, y, dx, dy float64) {
	along, across := t.Offsets(width)
	if t.Vertical {
		// reading upwards, "down" is to the right
		return t.X + across, t.Y - along, 0, -1
	}
	return t.X + along, t.Y + across, 1, 0
}
