package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal slider; Value stays within [Min, Max].
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64

	// last value reported by Changed
	reported float64
}

// NewSlider creates a 16px high slider.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     16,
	}
	s.Set(value)
	s.reported = s.Value
	return s
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	s.press(float64(mx), float64(my))
}

// press moves the value under the cursor when (mx, my) is on the slider.
func (s *Slider) press(mx, my float64) {
	if mx >= s.X && mx <= s.X+s.W && my >= s.Y && my <= s.Y+s.H {
		s.Set(s.valueAt(mx))
	}
}

// valueAt maps a horizontal screen position to a value.
func (s *Slider) valueAt(mx float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	p := (mx - s.X) / s.W
	return s.Min + p*(s.Max-s.Min)
}

// Set changes the value, clamped to [Min, Max].
func (s *Slider) Set(v float64) {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// Changed reports whether Value moved since the previous call.
func (s *Slider) Changed() bool {
	if s.Value == s.reported {
		return false
	}
	s.reported = s.Value
	return true
}

// Reset sets the value without reporting it as a change.
func (s *Slider) Reset(v float64) {
	s.Set(v)
	s.reported = s.Value
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	// Draw Background (Dark Gray)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	// Draw Value Bar (Light Gray/White)
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 80, G: 110, B: 69, A: 255}, true)
}
