package wave

import "math"

// ArrayAdjuster edits an array of parameters where the relative values
// matter more than the absolute ones. It draws no text: each element is a
// bar against guide lines spaced interval apart.
type ArrayAdjuster struct {
	v         []float64
	interval  float64
	selection int
	hidden    bool
}

// NewArrayAdjuster binds an adjuster to v. The slice is modified in place.
func NewArrayAdjuster(v []float64, interval float64) *ArrayAdjuster {
	return &ArrayAdjuster{v: v, interval: interval}
}

// Bind switches the adjuster to a new slice, keeping the selection in range.
func (a *ArrayAdjuster) Bind(v []float64, interval float64) {
	a.v = v
	a.interval = interval
	a.clampSelection()
}

func (a *ArrayAdjuster) clampSelection() {
	if a.selection > len(a.v)-1 {
		a.selection = len(a.v) - 1
	}
	if a.selection < 0 {
		a.selection = 0
	}
}

func (a *ArrayAdjuster) SelectLeft() {
	a.hidden = false
	a.selection--
	a.clampSelection()
}

func (a *ArrayAdjuster) SelectRight() {
	a.hidden = false
	a.selection++
	a.clampSelection()
}

// Adjust adds amount to the selected element.
func (a *ArrayAdjuster) Adjust(amount float64) {
	a.hidden = false
	if len(a.v) == 0 {
		return
	}
	a.v[a.selection] += amount
}

// Hide blanks the widget until the next select or adjust call.
func (a *ArrayAdjuster) Hide()        { a.hidden = true }
func (a *ArrayAdjuster) Show()        { a.hidden = false }
func (a *ArrayAdjuster) Hidden() bool { return a.hidden }
func (a *ArrayAdjuster) Selection() int {
	return a.selection
}
func (a *ArrayAdjuster) Len() int { return len(a.v) }

// Rect is an axis aligned rectangle in the unit square, y pointing up.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Bar is one element of the adjusted array.
type Bar struct {
	Rect
	Selected bool
}

// Line is a horizontal guide line at height Y.
type Line struct {
	X0, X1, Y float64
}

// Layout is the geometry of an adjuster frame.
type Layout struct {
	Guides []Line
	Axis   Rect
	Bars   []Bar
}

// Empty reports whether there is nothing to draw.
func (l Layout) Empty() bool {
	return len(l.Guides) == 0 && len(l.Bars) == 0 && l.Axis == (Rect{})
}

const (
	guideLeft   = 0.05
	guideRight  = 0.95
	axisHalf    = 0.003
	barHalf     = 0.01
	halfRange   = 0.4
	maxBarWidth = 0.2
	barSpan     = 0.8
	minExtent   = 0.0001
)

// Layout computes where guides and bars go. The largest magnitude is
// rounded up to a whole number of intervals and mapped to +-0.4 around
// the centre line.
func (a *ArrayAdjuster) Layout() Layout {
	if a.hidden || len(a.v) == 0 {
		return Layout{}
	}
	interval := a.interval
	if interval <= 0 {
		interval = 1
	}
	max := minExtent
	for _, v := range a.v {
		max = math.Max(math.Abs(v), max)
	}
	steps := math.Ceil(max / interval)
	max = steps * interval
	yscale := halfRange / max
	width := math.Min(maxBarWidth, barSpan/float64(len(a.v)))

	var l Layout
	for k := 1; k <= int(steps); k++ {
		y := float64(k) * interval
		l.Guides = append(l.Guides,
			Line{X0: guideLeft, X1: guideRight, Y: y*yscale + 0.5},
			Line{X0: guideLeft, X1: guideRight, Y: -y*yscale + 0.5},
		)
	}
	l.Axis = Rect{X0: guideLeft, Y0: 0.5 - axisHalf, X1: guideRight, Y1: 0.5 + axisHalf}
	for i, v := range a.v {
		x := 0.1 + float64(i)*width + 0.1*width
		y := v*yscale + 0.5
		l.Bars = append(l.Bars, Bar{
			Rect: Rect{
				X0: x + 0.1*width,
				Y0: y - barHalf,
				X1: x + 0.9*width,
				Y1: y + barHalf,
			},
			Selected: i == a.selection,
		})
	}
	return l
}
