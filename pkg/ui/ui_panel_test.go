package ui

import "testing"

func newTestPanel(height float64) (*UIPanel, *Button, *Slider, *Checkbox, *TriangleSelector) {
	p := NewUIPanel(800, 0, 200, height)
	p.AddSection("Mode")
	create := p.AddButton("Create", nil)
	p.EndSection()
	p.AddSection("Parameters")
	speed := p.AddSlider("Speed", 0, 100, 40)
	debug := p.AddCheckbox("Debug", false)
	tri := p.AddTriangle("Weights")
	p.EndSection()
	return p, create, speed, debug, tri
}

func TestUIPanel_Layout(t *testing.T) {
	p, create, speed, debug, tri := newTestPanel(600)

	if create.Y != 55 {
		t.Errorf("first button at y=%v; want 55 (title + section header)", create.Y)
	}
	// every widget sits below the previous one
	ys := []float64{create.Y, speed.Y, debug.Y, tri.Y}
	for i := 1; i < len(ys); i++ {
		if ys[i] <= ys[i-1] {
			t.Errorf("widget %d at y=%v is not below widget %d at y=%v", i, ys[i], i-1, ys[i-1])
		}
	}
	if create.X != 810 || create.Width != 180 {
		t.Errorf("button at x=%v width=%v; want 810 and 180", create.X, create.Width)
	}
	if tri.X != 820 {
		t.Errorf("triangle at x=%v; want it centred at 820", tri.X)
	}

	sections := p.Sections()
	if len(sections) != 2 {
		t.Fatalf("got %d sections; want 2", len(sections))
	}
	if sections[0].StartIndex != 0 || sections[0].EndIndex != 1 || sections[1].StartIndex != 1 || sections[1].EndIndex != 4 {
		t.Errorf("sections = %+v", sections)
	}
}

func TestUIPanel_Scroll(t *testing.T) {
	p, create, _, _, _ := newTestPanel(600)
	p.Scroll(100)
	if p.ScrollOffset != 0 {
		t.Errorf("content fits, ScrollOffset = %v; want 0", p.ScrollOffset)
	}

	p, create, _, _, _ = newTestPanel(100)
	p.Scroll(1000)
	limit := p.contentHeight() + panelTitleHeight - p.Height + 10
	if p.ScrollOffset != limit {
		t.Errorf("ScrollOffset = %v; want clamped to %v", p.ScrollOffset, limit)
	}
	if create.Y != 55-limit {
		t.Errorf("scrolled button at y=%v; want %v", create.Y, 55-limit)
	}
	p.Scroll(-5000)
	if p.ScrollOffset != 0 || create.Y != 55 {
		t.Errorf("after scrolling back: offset %v, button y %v; want 0 and 55", p.ScrollOffset, create.Y)
	}
}

func TestUIPanel_Contains(t *testing.T) {
	p := NewUIPanel(800, 0, 200, 600)
	tests := []struct {
		x, y float64
		want bool
	}{
		{800, 0, true},
		{1000, 600, true},
		{799, 10, false},
		{900, 601, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v; want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
