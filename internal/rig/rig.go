// Package rig turns a vehicle configuration into a styled, wheeled and
// animated mesh hierarchy. It is the per-configuration control flow tying
// the engine packages together.
package rig

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stance/internal/catalog"
	"github.com/Faultbox/stance/internal/engine/material"
	"github.com/Faultbox/stance/internal/engine/scene"
	"github.com/Faultbox/stance/internal/engine/suspension"
	"github.com/Faultbox/stance/internal/engine/tire"
	"github.com/Faultbox/stance/internal/engine/wheels"
	"github.com/Faultbox/stance/internal/vehicle"
	"github.com/Faultbox/stance/pkg/units"
)

// ErrNoMesh is returned when a model resolves to a hierarchy without geometry.
var ErrNoMesh = errors.New("model has no mesh")

// DefaultStartOffset is how far above its settled height a new body starts.
const DefaultStartOffset = 0.1

// MeshSource resolves model paths to private mesh instances.
type MeshSource interface {
	Mesh(path string) (*scene.Node, error)
}

// Options configures a Rig.
type Options struct {
	Logger      *zap.Logger
	StartOffset float64 // meters; 0 uses DefaultStartOffset
}

// Wheel is one mounted wheel.
type Wheel struct {
	Anchor wheels.Anchor
	Node   *scene.Node // Positioned group holding Tire and Rim
	Tire   *scene.Node
	Rim    *scene.Node
}

// Frame is the output of Apply.
type Frame struct {
	Config       vehicle.Config
	Vehicle      catalog.VehicleEntry
	Root         *scene.Node
	Body         *scene.Node
	Wheels       []Wheel // FL, FR, RL, RR, then the spare if mounted
	TargetHeight float64
	Restyled     bool // Materials were (re)applied during this Apply
}

// Anchors returns the anchors of every mounted wheel.
func (f *Frame) Anchors() []wheels.Anchor {
	out := make([]wheels.Anchor, len(f.Wheels))
	for i, w := range f.Wheels {
		out[i] = w.Anchor
	}
	return out
}

// Rig holds the per-vehicle state that survives configuration changes:
// loaded meshes, cached tire profiles and the ride height animation.
// Not safe for concurrent use.
type Rig struct {
	cat      *catalog.Catalog
	meshes   MeshSource
	profiles *tire.ProfileCache
	animator *suspension.Animator
	log      *zap.Logger
	offset   float64

	body, rim, tireProto *scene.Node
	bodyModel            string
	rimModel             string
	tireModel            string
	style                material.Style
	styled               bool

	target float64
	frame  *Frame
}

// New creates a rig reading reference data from cat and meshes from meshes.
func New(cat *catalog.Catalog, meshes MeshSource, opts Options) *Rig {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	offset := opts.StartOffset
	if offset == 0 {
		offset = DefaultStartOffset
	}
	return &Rig{
		cat:      cat,
		meshes:   meshes,
		profiles: tire.NewProfileCache(log.Named("tire")),
		log:      log,
		offset:   offset,
	}
}

// Apply validates cfg and rebuilds the frame for it. On error the previous
// frame stays current.
func (r *Rig) Apply(cfg vehicle.Config) (*Frame, error) {
	if err := cfg.Validate(r.cat); err != nil {
		return nil, err
	}
	// Validate already resolved these.
	v, _ := r.cat.Vehicle(cfg.ID)
	rimEntry, _ := r.cat.Rim(cfg.Rim)
	tireEntry, _ := r.cat.Tire(cfg.Tire)

	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}

	reloaded, err := r.load(v.Model, rimEntry.Model, tireEntry.Model)
	if err != nil {
		return nil, err
	}

	restyled := false
	if reloaded || !r.styled || style != r.style {
		// The body takes paint and roughness only; rim slots on it keep
		// their authored finish.
		bodyStyle := material.Style{Body: style.Body, Roughness: style.Roughness}
		n := material.Apply(r.body, bodyStyle) + material.Apply(r.rim, style) + material.ApplyTire(r.tireProto)
		r.style, r.styled, restyled = style, true, true
		r.log.Debug("materials applied", zap.Int("slots", n), zap.String("color", cfg.Color),
			zap.String("rim_color", string(cfg.RimColor)))
	}

	base := r.tireProto.FirstMesh()
	if base == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMesh, tireEntry.Model)
	}

	tireIn := cfg.TireDiameterInches()
	axle := func(a tire.Axle, widthMM float64) wheels.Axle {
		key := tire.ProfileKey{
			TireID:       cfg.Tire,
			RimDiameter:  cfg.RimDiameter,
			TireDiameter: tireIn,
			WidthMM:      widthMM,
		}
		return wheels.Axle{
			Profile:       r.profiles.Profile(a, key, base.Geometry, tireEntry),
			WidthScale:    tire.WidthScale(tireEntry, widthMM),
			RimWidthScale: units.MMToMeter(widthMM) / rimEntry.Width,
		}
	}

	p := wheels.Placement{
		Wheelbase:     v.Wheelbase,
		LateralOffset: v.WheelOffset + cfg.WheelOffset,
		AxleHeight:    cfg.AxleHeight(),
		Front:         axle(tire.Front, cfg.RimFrontWidth),
		Rear:          axle(tire.Rear, cfg.RimRearWidth),
		RimODScale:    wheels.RimODScale(cfg.RimDiameter, rimEntry.OD),
	}

	anchors := wheels.Resolve(p)
	mounted := anchors[:]
	if pos, ok := v.SparePosition(); ok && cfg.Spare {
		mounted = append(mounted, wheels.SpareAnchor(pos, p.Rear, p.RimODScale))
	}

	frame := &Frame{
		Config:       cfg,
		Vehicle:      v,
		Body:         r.body,
		TargetHeight: cfg.BodyHeight(),
		Restyled:     restyled,
	}
	frame.Root = scene.NewGroup("vehicle", r.body)
	for _, a := range mounted {
		w := r.mount(a, base)
		frame.Wheels = append(frame.Wheels, w)
		frame.Root.Add(w.Node)
	}

	r.retarget(frame.TargetHeight)
	r.frame = frame

	hits, misses := r.profiles.Stats()
	r.log.Debug("configuration applied",
		zap.String("vehicle", cfg.ID),
		zap.Int("wheels", len(frame.Wheels)),
		zap.Float64("target_height", frame.TargetHeight),
		zap.Int("profile_hits", hits),
		zap.Int("profile_misses", misses))
	return frame, nil
}

// Tick advances the ride height animation by dt seconds and returns the
// body height. Without a frame it does nothing and returns 0.
func (r *Rig) Tick(dt float64) float64 {
	if r.animator == nil {
		return 0
	}
	return r.animator.Tick(r.target, dt)
}

// Frame returns the last applied frame, or nil.
func (r *Rig) Frame() *Frame {
	return r.frame
}

// Animation returns the ride height state.
func (r *Rig) Animation() suspension.State {
	if r.animator == nil {
		return suspension.State{}
	}
	return r.animator.State()
}

// ProfileStats returns tire profile cache statistics.
func (r *Rig) ProfileStats() (hits, misses int) {
	return r.profiles.Stats()
}

// load fetches any model whose path changed and reports whether one did.
// Nothing is committed unless every model loads.
func (r *Rig) load(bodyModel, rimModel, tireModel string) (bool, error) {
	fetch := func(kind, model, current string, have *scene.Node) (*scene.Node, error) {
		if have != nil && model == current {
			return nil, nil
		}
		n, err := r.meshes.Mesh(model)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", kind, err)
		}
		return n, nil
	}

	body, err := fetch("body", bodyModel, r.bodyModel, r.body)
	if err != nil {
		return false, err
	}
	rim, err := fetch("rim", rimModel, r.rimModel, r.rim)
	if err != nil {
		return false, err
	}
	t, err := fetch("tire", tireModel, r.tireModel, r.tireProto)
	if err != nil {
		return false, err
	}

	if body != nil {
		r.body, r.bodyModel = body, bodyModel
		if r.animator != nil {
			r.animator.Bind(body)
		}
	}
	if rim != nil {
		r.rim, r.rimModel = rim, rimModel
	}
	if t != nil {
		r.tireProto, r.tireModel = t, tireModel
		r.profiles.Invalidate()
	}
	return body != nil || rim != nil || t != nil, nil
}

// mount builds the positioned wheel group for a. Rim copies share the styled
// materials of the rim instance.
func (r *Rig) mount(a wheels.Anchor, base *scene.Node) Wheel {
	tireMesh := scene.NewMesh("tire", a.Profile, base.Materials...)
	tireMesh.CastShadow = true

	rim := r.rim.Clone()
	rim.Scale = a.RimScale()

	node := scene.NewGroup(a.ID, tireMesh, rim)
	node.Position = a.Position
	node.Rotation = a.Rotation()

	return Wheel{Anchor: a, Node: node, Tire: tireMesh, Rim: rim}
}

func (r *Rig) retarget(target float64) {
	r.target = target
	if r.animator == nil {
		r.animator = suspension.NewAnimator(r.body, target, target+r.offset, r.log.Named("suspension"))
	}
}
