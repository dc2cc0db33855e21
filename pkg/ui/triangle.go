package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock/pkg/selector"
	"golang.org/x/image/font/basicfont"
)

const (
	triangleWidth  = 160.0
	triangleHeight = 155.0
)

var (
	triangleFill   = color.RGBA{R: 201, G: 201, B: 201, A: 255}
	triangleStroke = color.RGBA{R: 80, G: 110, B: 69, A: 255}
	knobColor      = color.RGBA{R: 39, G: 48, B: 61, A: 255}
	labelColor     = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// TriangleSelector is the weight selector widget: a knob dragged inside a
// triangle whose corners are separation, alignment and cohesion.
type TriangleSelector struct {
	X, Y     float64
	sel      *selector.Selector
	dragging bool
	changed  bool
}

func NewTriangleSelector(x, y float64) *TriangleSelector {
	return &TriangleSelector{X: x, Y: y, sel: selector.New()}
}

// Weights returns the weights for the current knob position.
func (t *TriangleSelector) Weights() selector.Weights {
	return t.sel.Weights()
}

// Changed reports whether the knob moved since the previous call.
func (t *TriangleSelector) Changed() bool {
	c := t.changed
	t.changed = false
	return c
}

// Reset puts the knob back at the centre without reporting a change.
func (t *TriangleSelector) Reset() {
	t.sel.Reset()
	t.changed = false
}

func (t *TriangleSelector) GetHeight() float64 {
	return triangleHeight + 20 // label space
}

func (t *TriangleSelector) contains(mx, my float64) bool {
	return mx >= t.X && mx <= t.X+triangleWidth && my >= t.Y && my <= t.Y+triangleHeight
}

// Update starts a drag on a click inside the widget and follows the cursor
// until the button is released or the cursor leaves the widget.
func (t *TriangleSelector) Update() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && t.contains(x, y):
		t.dragging = true
	case !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || !t.contains(x, y):
		t.dragging = false
	}
	if t.dragging {
		t.drag(x, y)
	}
}

// drag moves the knob to the screen point (mx, my).
func (t *TriangleSelector) drag(mx, my float64) {
	before := t.sel.Knob()
	t.sel.Move(mx-t.X, my-t.Y)
	if t.sel.Knob() != before {
		t.changed = true
	}
}

func (t *TriangleSelector) at(p geometry.Vector2D) (float32, float32) {
	return float32(t.X + p.X), float32(t.Y + p.Y)
}

// Draw renders the triangle, the centre mark, the knob and the three weights.
func (t *TriangleSelector) Draw(screen *ebiten.Image) {
	sx, sy := t.at(selector.Separation)
	ax, ay := t.at(selector.Alignment)
	cx, cy := t.at(selector.Cohesion)

	var path vector.Path
	path.MoveTo(sx, sy)
	path.LineTo(cx, cy)
	path.LineTo(ax, ay)
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(triangleFill.R) / 255
		vs[i].ColorG = float32(triangleFill.G) / 255
		vs[i].ColorB = float32(triangleFill.B) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{})

	vector.StrokeLine(screen, sx, sy, cx, cy, 3, triangleStroke, true)
	vector.StrokeLine(screen, cx, cy, ax, ay, 3, triangleStroke, true)
	vector.StrokeLine(screen, ax, ay, sx, sy, 3, triangleStroke, true)

	mx, my := t.at(selector.Center)
	vector.FillCircle(screen, mx, my, 2, triangleStroke, true)
	kx, ky := t.at(t.sel.Knob())
	vector.FillCircle(screen, kx, ky, 7, knobColor, true)

	w := t.sel.Weights()
	face := basicfont.Face7x13
	text.Draw(screen, "Sep", face, int(sx)-10, int(t.Y)+10, labelColor)
	text.Draw(screen, fmt.Sprintf("%.2f", w.Separation), face, int(sx)-14, int(t.Y)+21, labelColor)
	text.Draw(screen, "Ali", face, int(ax)-10, int(t.Y)+10, labelColor)
	text.Draw(screen, fmt.Sprintf("%.2f", w.Alignment), face, int(ax)-14, int(t.Y)+21, labelColor)
	text.Draw(screen, "Coh", face, int(cx)-10, int(cy)+15, labelColor)
	text.Draw(screen, fmt.Sprintf("%.2f", w.Cohesion), face, int(cx)-14, int(cy)+27, labelColor)
}

// whitePixel is the source image for DrawTriangles; only its color is used.
var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
