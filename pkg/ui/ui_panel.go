package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelTitleHeight   = 30.0
	sectionHeight      = 25.0
	widgetLabelSpacing = 15.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

func (s *SliderWrapper) move(y float64) { s.Y = y }

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 20 // Checkbox size + label space
}

func (c *CheckboxWrapper) move(y float64) { c.Y = y }

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 8
}

func (b *ButtonWrapper) move(y float64) { b.Y = y }

// TriangleWrapper wraps the weight selector to implement UIWidget
type TriangleWrapper struct {
	*TriangleSelector
}

func (t *TriangleWrapper) move(y float64) { t.Y = y }

// movable widgets follow the panel scroll
type movable interface {
	move(y float64)
}

// panelItem is a widget with the label drawn above it; buttons carry their own label.
type panelItem struct {
	label  string
	widget UIWidget
}

// PanelSection is a titled group of consecutive widgets.
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
	EndIndex   int // Widget index where this section ends (exclusive)
}

// UIPanel stacks widgets in titled sections and scrolls them with the mouse wheel.
type UIPanel struct {
	Title         string
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	ScrollOffset  float64

	// Styling
	BGColor      color.RGBA
	BorderColor  color.RGBA
	SectionColor color.RGBA

	items    []panelItem
	sections []PanelSection
}

func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:        "Flock",
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		BGColor:      color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor:  color.RGBA{R: 80, G: 110, B: 69, A: 255},
		SectionColor: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// AddSection starts a new section; widgets added next belong to it.
func (p *UIPanel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.items),
		EndIndex:   -1,
	})
}

// EndSection closes the current section.
func (p *UIPanel) EndSection() {
	if n := len(p.sections); n > 0 && p.sections[n-1].EndIndex < 0 {
		p.sections[n-1].EndIndex = len(p.items)
	}
}

func (p *UIPanel) add(label string, w UIWidget) {
	p.items = append(p.items, panelItem{label: label, widget: w})
	p.layout()
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(label, &SliderWrapper{slider})
	return slider
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, 0, label, value)
	p.add(label, &CheckboxWrapper{checkbox})
	return checkbox
}

// AddButton adds a full width button showing label.
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, 0, p.Width-20, 24, label, onClick)
	p.add("", &ButtonWrapper{button})
	return button
}

// AddTriangle adds the separation/alignment/cohesion weight selector.
func (p *UIPanel) AddTriangle(label string) *TriangleSelector {
	ts := NewTriangleSelector(p.X+(p.Width-triangleWidth)/2, 0)
	p.add(label, &TriangleWrapper{ts})
	return ts
}

// Contains reports whether the screen point is over the panel.
func (p *UIPanel) Contains(mx, my float64) bool {
	return mx >= p.X && mx <= p.X+p.Width && my >= p.Y && my <= p.Y+p.Height
}

// sectionAt returns the section starting at widget index i, if any.
func (p *UIPanel) sectionAt(i int) (PanelSection, bool) {
	for _, s := range p.sections {
		if s.StartIndex == i {
			return s, true
		}
	}
	return PanelSection{}, false
}

// layout places every widget for the current scroll offset and returns the
// screen y of each section header, keyed by its first widget index.
func (p *UIPanel) layout() map[int]float64 {
	headers := make(map[int]float64)
	y := p.Y + panelTitleHeight - p.ScrollOffset
	for i, it := range p.items {
		if _, ok := p.sectionAt(i); ok {
			headers[i] = y
			y += sectionHeight
		}
		wy := y
		if it.label != "" {
			wy += widgetLabelSpacing
		}
		if m, ok := it.widget.(movable); ok {
			m.move(wy)
		}
		y += it.widget.GetHeight()
	}
	return headers
}

// contentHeight is the height of everything below the title.
func (p *UIPanel) contentHeight() float64 {
	h := float64(len(p.sections)) * sectionHeight
	for _, it := range p.items {
		h += it.widget.GetHeight()
	}
	return h
}

func (p *UIPanel) visible(y, h float64) bool {
	return y+h >= p.Y+panelTitleHeight && y <= p.Y+p.Height
}

// Update scrolls the panel, then lets every visible widget handle input.
func (p *UIPanel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.Scroll(-dy * 20)
	}
	p.layout()
	for _, it := range p.items {
		if w, ok := it.widget.(movable); ok && !p.visible(widgetY(w), it.widget.GetHeight()) {
			continue
		}
		it.widget.Update()
	}
}

// Scroll moves the content by delta pixels, clamped to the content height.
func (p *UIPanel) Scroll(delta float64) {
	maxScroll := p.contentHeight() + panelTitleHeight - p.Height + 10
	if maxScroll < 0 {
		maxScroll = 0
	}
	p.ScrollOffset += delta
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
	if p.ScrollOffset > maxScroll {
		p.ScrollOffset = maxScroll
	}
	p.layout()
}

func widgetY(w movable) float64 {
	switch v := w.(type) {
	case *SliderWrapper:
		return v.Y
	case *CheckboxWrapper:
		return v.Y
	case *ButtonWrapper:
		return v.Y
	case *TriangleWrapper:
		return v.Y
	}
	return 0
}

// Draw renders the panel background, section headers, labels and widgets.
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	headers := p.layout()
	for i, it := range p.items {
		if hy, ok := headers[i]; ok && p.visible(hy, sectionHeight) {
			s, _ := p.sectionAt(i)
			vector.FillRect(screen,
				float32(p.X+5), float32(hy),
				float32(p.Width-10), 20,
				p.SectionColor, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(hy+2))
		}
		m, ok := it.widget.(movable)
		if !ok {
			continue
		}
		wy := widgetY(m)
		if !p.visible(wy, it.widget.GetHeight()) {
			continue
		}
		if it.label != "" {
			ebitenutil.DebugPrintAt(screen, it.label, int(p.X+10), int(wy-widgetLabelSpacing-2))
		}
		it.widget.Draw(screen)
	}

	// title last so scrolled widgets never cover it
	vector.FillRect(screen, float32(p.X+1), float32(p.Y+1), float32(p.Width-2), panelTitleHeight-2, p.BGColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))
}

// Sections returns the sections in the order they were added.
func (p *UIPanel) Sections() []PanelSection {
	out := make([]PanelSection, len(p.sections))
	copy(out, p.sections)
	return out
}
