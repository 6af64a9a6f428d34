package render

type ButtonID string

const (
	ButtonClear ButtonID = "clear"
	ButtonPlay  ButtonID = "play"
)

const (
	ToolbarHeight = 45

	buttonWidth  = 80
	buttonHeight = 30
	hintWidth    = 400
	gap          = 10
)

const hint = "Select note: left click; Highlight root: right click."

type Button struct {
	ID    ButtonID
	Label string
	X, Y  int
	W, H  int
}

func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Toolbar is the strip under the board with the two command buttons and a
// usage hint, centered horizontally.
type Toolbar struct {
	Top     int
	Width   int
	Buttons []Button
	hintX   int
	hintY   int
}

func NewToolbar(boardW, boardH int) Toolbar {
	total := 2*buttonWidth + hintWidth + 2*gap
	x := (boardW - total) / 2
	mid := boardH + ToolbarHeight/2
	y := mid - buttonHeight/2
	clearBtn := Button{ID: ButtonClear, Label: "Clear: C", X: x, Y: y, W: buttonWidth, H: buttonHeight}
	playBtn := Button{ID: ButtonPlay, Label: "Play: Q", X: x + buttonWidth + gap, Y: y, W: buttonWidth, H: buttonHeight}
	return Toolbar{
		Top:     boardH,
		Width:   boardW,
		Buttons: []Button{clearBtn, playBtn},
		hintX:   playBtn.X + buttonWidth + gap + hintWidth/2,
		hintY:   mid,
	}
}

func (tb Toolbar) ButtonAt(x, y int) (Button, bool) {
	for _, b := range tb.Buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

func (tb Toolbar) Primitives() []Primitive {
	var out []Primitive
	for _, b := range tb.Buttons {
		out = append(out,
			Primitive{Kind: FilledRect, Layer: LayerToolbar, X1: b.X, Y1: b.Y, X2: b.X + b.W - 1, Y2: b.Y + b.H - 1, Color: buttonColor},
			Primitive{Kind: Rect, Layer: LayerToolbar, X1: b.X, Y1: b.Y, X2: b.X + b.W - 1, Y2: b.Y + b.H - 1, Width: 1, Color: buttonEdge},
			Primitive{Kind: Text, Layer: LayerToolbar, X1: b.X + b.W/2, Y1: b.Y + b.H/2, Text: b.Label, Color: Black})
	}
	return append(out, Primitive{Kind: Text, Layer: LayerToolbar, X1: tb.hintX, Y1: tb.hintY, Text: hint, Color: Black})
}
