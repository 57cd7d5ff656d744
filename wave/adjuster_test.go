package wave

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAdjusterSelection(t *testing.T) {
	v := []float64{1, 2, 3}
	a := NewArrayAdjuster(v, 1)

	a.SelectLeft()
	if a.Selection() != 0 {
		t.Errorf("selection %d after SelectLeft at 0", a.Selection())
	}
	for i := 0; i < 5; i++ {
		a.SelectRight()
	}
	if a.Selection() != 2 {
		t.Errorf("selection %d, want clamped to 2", a.Selection())
	}

	a.Adjust(0.5)
	if v[2] != 3.5 {
		t.Errorf("v[2] = %v, want 3.5", v[2])
	}

	a.Bind(v[:1], 1)
	if a.Selection() != 0 {
		t.Errorf("selection %d after shrinking to one element", a.Selection())
	}
}

func TestAdjusterHide(t *testing.T) {
	a := NewArrayAdjuster([]float64{1}, 1)
	a.Hide()
	if !a.Layout().Empty() {
		t.Error("hidden adjuster produced a layout")
	}
	for name, unhide := range map[string]func(){
		"SelectLeft":  a.SelectLeft,
		"SelectRight": a.SelectRight,
		"Adjust":      func() { a.Adjust(0) },
	} {
		a.Hide()
		unhide()
		if a.Hidden() {
			t.Errorf("%s did not unhide", name)
		}
	}
}

func TestAdjusterEmpty(t *testing.T) {
	a := NewArrayAdjuster(nil, 1)
	a.Adjust(1)
	a.SelectRight()
	if a.Selection() != 0 {
		t.Errorf("selection %d on empty array", a.Selection())
	}
	if !a.Layout().Empty() {
		t.Error("empty array produced a layout")
	}
}

func TestAdjusterLayout(t *testing.T) {
	v := []float64{0.1, -0.25, 0.05, 0}
	a := NewArrayAdjuster(v, 0.1)
	a.SelectRight()
	l := a.Layout()

	// max |v| = 0.25 rounds up to 0.3: three guides each side
	if len(l.Guides) != 6 {
		t.Fatalf("have %d guides, want 6", len(l.Guides))
	}
	yscale := 0.4 / 0.3
	if !near(l.Guides[0].Y, 0.1*yscale+0.5) || !near(l.Guides[1].Y, -0.1*yscale+0.5) {
		t.Errorf("first guides at %v, %v", l.Guides[0].Y, l.Guides[1].Y)
	}
	if !near(l.Guides[4].Y, 0.9) || !near(l.Guides[5].Y, 0.1) {
		t.Errorf("outer guides at %v, %v; want 0.9, 0.1", l.Guides[4].Y, l.Guides[5].Y)
	}
	if !near(l.Axis.X0, 0.05) || !near(l.Axis.X1, 0.95) ||
		!near(l.Axis.Y0, 0.497) || !near(l.Axis.Y1, 0.503) {
		t.Errorf("axis %+v", l.Axis)
	}

	if len(l.Bars) != len(v) {
		t.Fatalf("have %d bars, want %d", len(l.Bars), len(v))
	}
	width := 0.2 // min(0.2, 0.8/4)
	for i, b := range l.Bars {
		x := 0.1 + float64(i)*width + 0.1*width
		y := v[i]*yscale + 0.5
		if !near(b.X0, x+0.1*width) || !near(b.X1, x+0.9*width) ||
			!near(b.Y0, y-0.01) || !near(b.Y1, y+0.01) {
			t.Errorf("bar %d at %+v", i, b.Rect)
		}
		if b.Selected != (i == 1) {
			t.Errorf("bar %d selected=%v", i, b.Selected)
		}
	}
}

func TestAdjusterLayoutNarrowBars(t *testing.T) {
	v := make([]float64, MaxWaves)
	l := NewArrayAdjuster(v, 1).Layout()
	width := l.Bars[0].X1 - l.Bars[0].X0
	if !near(width, 0.8*0.8/MaxWaves) {
		t.Errorf("bar width %v", width)
	}
	// all zero values still get one guide per side
	if len(l.Guides) != 2 {
		t.Errorf("have %d guides, want 2", len(l.Guides))
	}
	last := l.Bars[len(l.Bars)-1]
	if last.X1 > 0.95 {
		t.Errorf("last bar ends at %v, past the guides", last.X1)
	}
}
