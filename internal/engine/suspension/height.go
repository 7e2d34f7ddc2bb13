// Package suspension animates the body ride height towards a target with an
// elastic settle.
package suspension

import (
	"math"

	"github.com/Faultbox/stance/pkg/units"
)

// ElasticPeriod is the oscillation period of the settle curve.
const ElasticPeriod = 0.3

// ElasticOut eases t in [0,1] with an overshooting, decaying oscillation.
// The result exceeds 1 before settling on it at t=1.
func ElasticOut(t float64) float64 {
	p := ElasticPeriod
	return math.Pow(2, -10*t)*math.Sin((t-p/4)*(2*math.Pi)/p) + 1
}

// State is the per-body animation state.
type State struct {
	Target   float64 // Height being approached
	Progress float64 // Transition progress in [0,1]
	Initial  float64 // Height latched when the transition started
	Height   float64 // Last output height
}

// NewState starts a transition from start to target.
func NewState(target, start float64) State {
	if !finite(start) {
		start = target
	}
	return State{Target: target, Initial: start, Height: start}
}

// Settled reports whether the current transition has finished.
func (s State) Settled() bool {
	return s.Progress >= 1
}

// Advance moves the animation forward by dt seconds towards target and
// returns the new state and output height.
//
// A target different from the stored one restarts the transition from the
// current output height, so re-targeting mid-flight never jumps. Non-finite
// targets keep the last valid target; negative or non-finite dt counts as 0.
func Advance(s State, target, dt float64) (State, float64) {
	if !finite(target) {
		target = s.Target
	}
	if !finite(dt) || dt < 0 {
		dt = 0
	}

	if target != s.Target {
		s.Target = target
		s.Progress = 0
		s.Initial = s.Height
	}

	s.Progress = units.Clamp(s.Progress+dt, 0, 1)
	s.Height = units.Lerp(s.Initial, s.Target, ElasticOut(s.Progress))
	return s, s.Height
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
