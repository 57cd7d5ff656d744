package wave

import "math"

// Action is a single user request, independent of any window toolkit.
type Action int

const (
	ActionNone Action = iota
	ActionMoreWaves
	ActionFewerWaves
	ActionSelectLeft
	ActionSelectRight
	ActionIncrease
	ActionDecrease
	ActionNextArray
	ActionFreqUp
	ActionFreqDown
	ActionFaster
	ActionSlower
	ActionTogglePause
	ActionToggleAdjuster
	ActionReset
)

var actionNames = [...]string{
	ActionNone:           "none",
	ActionMoreWaves:      "more-waves",
	ActionFewerWaves:     "fewer-waves",
	ActionSelectLeft:     "select-left",
	ActionSelectRight:    "select-right",
	ActionIncrease:       "increase",
	ActionDecrease:       "decrease",
	ActionNextArray:      "next-array",
	ActionFreqUp:         "freq-up",
	ActionFreqDown:       "freq-down",
	ActionFaster:         "faster",
	ActionSlower:         "slower",
	ActionTogglePause:    "toggle-pause",
	ActionToggleAdjuster: "toggle-adjuster",
	ActionReset:          "reset",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Target is one of the per-wave arrays the adjuster can edit.
type Target int

const (
	TargetOmega Target = iota
	TargetPhase
	TargetScale
	numTargets
)

type targetInfo struct {
	name     string
	interval float64
	step     float64
}

var targets = [numTargets]targetInfo{
	TargetOmega: {name: "angular frequency", interval: 0.05, step: 0.01},
	TargetPhase: {name: "phase", interval: math.Pi / 2, step: math.Pi / 32},
	TargetScale: {name: "wavenumber", interval: 0.25, step: 0.05},
}

func (t Target) String() string {
	if t < 0 || t >= numTargets {
		return "unknown"
	}
	return targets[t].name
}

const (
	// DefaultMixRate is the blend advanced per step while changing the
	// wave count, so a transition takes half a second at 60 TPS.
	DefaultMixRate = 1.0 / 30.0

	freqFactor = 1.1
	speedStep  = 0.25

	// mixEpsilon absorbs rounding when MixRate is summed to 1.
	mixEpsilon = 1e-9
)

// Controller owns the live parameters and applies actions to them.
type Controller struct {
	Params  Params
	MixRate float64

	initial  Params
	adjuster *ArrayAdjuster
	target   Target
	// mixDir is +1 while blending a wave in, -1 while blending one out.
	mixDir int
}

// NewController starts from p, which is also what Reset returns to.
func NewController(p Params) *Controller {
	c := &Controller{
		Params:  p,
		MixRate: DefaultMixRate,
		initial: p,
	}
	c.adjuster = NewArrayAdjuster(nil, targets[TargetOmega].interval)
	c.rebind()
	return c
}

// Adjuster exposes the widget for drawing.
func (c *Controller) Adjuster() *ArrayAdjuster { return c.adjuster }

// Target reports which array the adjuster edits.
func (c *Controller) Target() Target { return c.target }

// Transitioning reports whether a wave is being blended in or out.
func (c *Controller) Transitioning() bool { return c.mixDir != 0 }

func (c *Controller) values(t Target) []float64 {
	n := c.Params.ActiveWaves()
	switch t {
	case TargetPhase:
		return c.Params.Phase[:n]
	case TargetScale:
		return c.Params.Scale[:n]
	default:
		return c.Params.Omega[:n]
	}
}

func (c *Controller) rebind() {
	hidden := c.adjuster.Hidden()
	c.adjuster.Bind(c.values(c.target), targets[c.target].interval)
	if hidden {
		c.adjuster.Hide()
	}
}

// Apply performs a. It returns false when the request was out of bounds
// and ignored.
func (c *Controller) Apply(a Action) bool {
	p := &c.Params
	switch a {
	case ActionMoreWaves:
		return c.moreWaves()
	case ActionFewerWaves:
		return c.fewerWaves()
	case ActionSelectLeft:
		c.adjuster.SelectLeft()
	case ActionSelectRight:
		c.adjuster.SelectRight()
	case ActionIncrease:
		c.adjuster.Adjust(targets[c.target].step)
	case ActionDecrease:
		c.adjuster.Adjust(-targets[c.target].step)
	case ActionNextArray:
		c.target = (c.target + 1) % numTargets
		c.adjuster.Show()
		c.rebind()
	case ActionFreqUp:
		p.Freq = clamp(p.Freq*freqFactor, MinFreq, MaxFreq)
	case ActionFreqDown:
		p.Freq = clamp(p.Freq/freqFactor, MinFreq, MaxFreq)
	case ActionFaster:
		p.Speed = clamp(p.Speed+speedStep, MinSpeed, MaxSpeed)
	case ActionSlower:
		p.Speed = clamp(p.Speed-speedStep, MinSpeed, MaxSpeed)
	case ActionTogglePause:
		p.Paused = !p.Paused
	case ActionToggleAdjuster:
		if c.adjuster.Hidden() {
			c.adjuster.Show()
		} else {
			c.adjuster.Hide()
		}
	case ActionReset:
		c.Params = c.initial
		c.mixDir = 0
		c.rebind()
	default:
		return false
	}
	return true
}

func (c *Controller) moreWaves() bool {
	p := &c.Params
	if p.NumWaves >= MaxWaves {
		return false
	}
	c.mixDir = 1
	c.rebind()
	return true
}

func (c *Controller) fewerWaves() bool {
	p := &c.Params
	if c.mixDir > 0 && p.Mix == 0 {
		// the blend in has not started yet
		c.mixDir = 0
		c.rebind()
		return true
	}
	if p.Mix == 0 {
		if p.NumWaves <= 1 {
			return false
		}
		p.NumWaves--
		p.Mix = 1
	}
	c.mixDir = -1
	c.rebind()
	return true
}

// Step advances one frame: time, then the wave count blend.
func (c *Controller) Step() {
	p := &c.Params
	p.Advance(1)

	switch {
	case c.mixDir > 0:
		p.Mix += c.MixRate
		if p.Mix >= 1-mixEpsilon {
			p.NumWaves++
			p.Mix = 0
			c.mixDir = 0
		}
	case c.mixDir < 0:
		p.Mix -= c.MixRate
		if p.Mix <= mixEpsilon {
			p.Mix = 0
			c.mixDir = 0
		}
	default:
		return
	}
	c.rebind()
}
