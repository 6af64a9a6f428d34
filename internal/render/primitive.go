// Package render describes a frame as a list of drawing primitives. It does
// no drawing itself; a backend walks the list back to front.
package render

type Color struct {
	R, G, B, A uint8
}

var (
	Black      = Color{0, 0, 0, 255}
	White      = Color{255, 255, 255, 255}
	Background = Color{240, 240, 240, 255}

	fretColor      = Color{0, 0, 0, 120}
	markerColor    = Color{0, 0, 180, 50}
	stringColor    = Color{160, 82, 45, 120}
	selectedColor  = Color{139, 0, 0, 255}
	plainNoteColor = Color{128, 128, 128, 130}
	borderColor    = Color{128, 128, 128, 180}
	buttonColor    = Color{225, 225, 225, 255}
	buttonEdge     = Color{160, 160, 160, 255}
)

type Kind int

const (
	Line Kind = iota
	Rect
	FilledCircle
	Circle
	Text
	FilledRect
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Rect:
		return "rect"
	case FilledCircle:
		return "filled-circle"
	case Circle:
		return "circle"
	case Text:
		return "text"
	case FilledRect:
		return "filled-rect"
	}
	return "unknown"
}

// Layer tags a primitive with the pass that produced it.
type Layer int

const (
	LayerFrets Layer = iota
	LayerMarkers
	LayerStrings
	LayerFretNumbers
	LayerNotes
	LayerRoots
	LayerBorder
	LayerToolbar
)

// Primitive is one drawing instruction.
//
//   - Line: X1,Y1 to X2,Y2 with Width.
//   - Rect, FilledRect: corner X1,Y1, opposite corner X2,Y2.
//   - Circle, FilledCircle: center X1,Y1 with Radius.
//   - Text: Text centered on X1,Y1.
type Primitive struct {
	Kind   Kind
	Layer  Layer
	X1, Y1 int
	X2, Y2 int
	Radius int
	Width  int
	Color  Color
	Text   string
	Bold   bool
}
