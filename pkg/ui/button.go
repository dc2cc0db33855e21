package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable UI button
type Button struct {
	Label   string
	X, Y    float64
	Width   float64
	Height  float64
	Active  bool   // drawn highlighted, used for mode buttons
	clicked bool   // Track if already clicked this frame
	OnClick func() // Callback function

	// Styling
	BGColor     color.RGBA
	HoverColor  color.RGBA
	ActiveColor color.RGBA
	TextColor   color.RGBA
}

// NewButton creates a new button instance
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:       label,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		OnClick:     onClick,
		BGColor:     color.RGBA{R: 201, G: 201, B: 201, A: 255},
		HoverColor:  color.RGBA{R: 225, G: 225, B: 225, A: 255},
		ActiveColor: color.RGBA{R: 80, G: 110, B: 69, A: 255},
		TextColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (b *Button) contains(mx, my float64) bool {
	return mx >= b.X && mx <= b.X+b.Width && my >= b.Y && my <= b.Y+b.Height
}

// Update checks for mouse interaction
func (b *Button) Update() {
	mx, my := ebiten.CursorPosition()
	b.press(b.contains(float64(mx), float64(my)), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// press fires OnClick once per press while the cursor is over the button.
func (b *Button) press(isOver, pressed bool) {
	if isOver && pressed {
		if !b.clicked && b.OnClick != nil {
			b.OnClick()
		}
		b.clicked = true
	} else {
		b.clicked = false
	}
}

// Draw renders the button
func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	isOver := b.contains(float64(mx), float64(my))

	// Choose color based on state
	bgColor := b.BGColor
	switch {
	case b.Active:
		bgColor = b.ActiveColor
	case isOver:
		bgColor = b.HoverColor
	}

	// Draw button background
	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, true)

	// Draw border
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		2, color.RGBA{R: 80, G: 110, B: 69, A: 255}, true)

	// DebugPrint glyphs are 6x16
	tx := b.X + (b.Width-float64(len(b.Label)*6))/2
	ty := b.Y + (b.Height-16)/2
	ebitenutil.DebugPrintAt(screen, b.Label, int(tx), int(ty))
}
