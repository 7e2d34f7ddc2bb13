package suspension

import (
	"go.uber.org/zap"

	"github.com/Faultbox/stance/internal/engine/scene"
)

// Animator drives a node's vertical position with Advance. Call Tick once
// per rendered frame, whether or not the target changed.
type Animator struct {
	node  *scene.Node
	state State
	log   *zap.Logger
}

// NewAnimator creates an animator that starts at start and settles on target.
// node and log may be nil.
func NewAnimator(node *scene.Node, target, start float64, log *zap.Logger) *Animator {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Animator{
		node:  node,
		state: NewState(target, start),
		log:   log,
	}
	if node != nil {
		node.Position.Y = a.state.Height
	}
	return a
}

// Tick advances by dt seconds and writes the height onto the node.
func (a *Animator) Tick(target, dt float64) float64 {
	if !finite(target) {
		a.log.Warn("ignoring invalid ride height target",
			zap.Float64("target", target),
			zap.Float64("holding", a.state.Target))
	} else if target != a.state.Target {
		a.log.Debug("ride height retarget",
			zap.Float64("from", a.state.Height),
			zap.Float64("to", target),
			zap.Float64("progress", a.state.Progress))
	}

	var h float64
	a.state, h = Advance(a.state, target, dt)
	if a.node != nil {
		a.node.Position.Y = h
	}
	return h
}

// Bind moves the animator onto another node, keeping its state.
func (a *Animator) Bind(node *scene.Node) {
	a.node = node
	if node != nil {
		node.Position.Y = a.state.Height
	}
}

// State returns a copy of the current state.
func (a *Animator) State() State {
	return a.state
}

// Height returns the last output height.
func (a *Animator) Height() float64 {
	return a.state.Height
}
