// Package wheels resolves where the four wheels sit relative to the body and
// which tire profile and rim scale each one uses.
package wheels

import (
	"github.com/Faultbox/stance/internal/engine/geometry"
	"github.com/Faultbox/stance/internal/engine/tire"
	"github.com/Faultbox/stance/pkg/math"
	"github.com/Faultbox/stance/pkg/units"
)

// Yaw angles in radians.
var (
	BaseYaw      = units.DegToRad(90)  // Wheel faces outwards
	SteeringBias = units.DegToRad(-10) // Fixed front steering angle
)

// BeadClearance is added to the rim diameter (meters) when scaling rims to
// account for the lip the tire sits behind.
const BeadClearance = 0.03175

// Anchor identifiers.
const (
	FrontLeft  = "FL"
	FrontRight = "FR"
	RearLeft   = "RL"
	RearRight  = "RR"
	Spare      = "SP"
)

// Anchor is a resolved wheel mount.
type Anchor struct {
	ID       string
	Axle     tire.Axle
	Position math.Vec3
	BaseYaw  float64 // Side-dependent yaw
	Steer    float64 // Steering bias, front wheels only
	Profile  *geometry.Buffer

	WidthScale    float64 // Tire axial scale
	RimWidthScale float64 // Rim axial scale
	RimODScale    float64 // Rim diameter scale
}

// Yaw returns the total rotation about Y.
func (a Anchor) Yaw() float64 {
	return a.BaseYaw + a.Steer
}

// Rotation returns the yaw as a quaternion.
func (a Anchor) Rotation() math.Quat {
	return math.QuatFromAxisAngle(math.UnitY, a.Yaw())
}

// Matrix returns the mount transform (translation * yaw).
func (a Anchor) Matrix() math.Mat4 {
	return math.Translate(a.Position.X, a.Position.Y, a.Position.Z).Mul(math.RotateY(a.Yaw()))
}

// RimScale returns the scale to apply to the rim model at this mount.
func (a Anchor) RimScale() math.Vec3 {
	return math.Vec3{X: a.RimODScale, Y: a.RimODScale, Z: a.RimWidthScale}
}

// Axle holds per-axle inputs.
type Axle struct {
	Profile       *geometry.Buffer
	WidthScale    float64
	RimWidthScale float64
}

// Placement holds everything Resolve needs.
type Placement struct {
	Wheelbase     float64 // meters
	LateralOffset float64 // meters from centerline
	AxleHeight    float64 // meters
	Front         Axle
	Rear          Axle
	RimODScale    float64
}

// Resolve returns the FL, FR, RL and RR anchors in that order.
// Front wheels sit at +Z, left wheels at +X.
func Resolve(p Placement) [4]Anchor {
	front := p.Wheelbase / 2
	rear := -p.Wheelbase / 2

	anchor := func(id string, axle tire.Axle, a Axle, x, z, yaw, steer float64) Anchor {
		return Anchor{
			ID:            id,
			Axle:          axle,
			Position:      math.Vec3{X: x, Y: p.AxleHeight, Z: z},
			BaseYaw:       yaw,
			Steer:         steer,
			Profile:       a.Profile,
			WidthScale:    a.WidthScale,
			RimWidthScale: a.RimWidthScale,
			RimODScale:    p.RimODScale,
		}
	}

	return [4]Anchor{
		anchor(FrontLeft, tire.Front, p.Front, p.LateralOffset, front, BaseYaw, SteeringBias),
		anchor(FrontRight, tire.Front, p.Front, -p.LateralOffset, front, -BaseYaw, SteeringBias),
		anchor(RearLeft, tire.Rear, p.Rear, p.LateralOffset, rear, BaseYaw, 0),
		anchor(RearRight, tire.Rear, p.Rear, -p.LateralOffset, rear, -BaseYaw, 0),
	}
}

// SpareAnchor mounts a wheel with the rear axle inputs at position, unyawed.
func SpareAnchor(position [3]float64, rear Axle, rimODScale float64) Anchor {
	return Anchor{
		ID:            Spare,
		Axle:          tire.Rear,
		Position:      math.Vec3{X: position[0], Y: position[1], Z: position[2]},
		Profile:       rear.Profile,
		WidthScale:    rear.WidthScale,
		RimWidthScale: rear.RimWidthScale,
		RimODScale:    rimODScale,
	}
}

// RimODScale scales a rim model of reference outer diameter rimOD to a rim
// of rimDiameter inches plus bead clearance.
func RimODScale(rimDiameter, rimOD float64) float64 {
	return (units.InchToMeter(rimDiameter) + BeadClearance) / rimOD
}
