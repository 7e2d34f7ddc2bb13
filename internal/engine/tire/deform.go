// Package tire fits base tire meshes to arbitrary rim diameter, tire
// diameter and tread width combinations.
package tire

import (
	"github.com/Faultbox/stance/internal/catalog"
	"github.com/Faultbox/stance/internal/engine/geometry"
	"github.com/Faultbox/stance/pkg/math"
	"github.com/Faultbox/stance/pkg/units"
)

// Deform returns a copy of base reshaped so that its bead seat sits on a rim
// of rimDiameter inches, its tread reaches tireDiameter inches and its tread
// width is widthMM millimeters. The wheel axis is Z. base is not modified.
func Deform(base *geometry.Buffer, entry catalog.WheelEntry, rimDiameter, tireDiameter, widthMM float64) *geometry.Buffer {
	geo := base.Clone()

	// Axial scale first, over the whole geometry.
	geo.ApplyMatrix(math.Scale(1, 1, WidthScale(entry, widthMM)))

	targetInner := TargetInnerRadius(rimDiameter)
	targetOuter := TargetOuterRadius(tireDiameter)

	var center math.Vec2
	for i, n := 0, geo.Count(); i < n; i++ {
		p := geo.Position(i)
		v := math.Vec2{X: float64(p[0]), Y: float64(p[1])}

		fraction := RadialFraction(v.Length(), entry)
		radius := MapRadius(fraction, targetInner, targetOuter)
		moved := center.PointAlong(v, radius)

		geo.SetPosition(i, [3]float32{float32(moved.X), float32(moved.Y), p[2]})
	}

	if geo.Normals != nil {
		geo.ComputeNormals()
	}
	return geo
}

// WidthScale is the axial scale that turns the reference tread width into
// widthMM millimeters.
func WidthScale(entry catalog.WheelEntry, widthMM float64) float64 {
	return units.MMToMeter(widthMM) / entry.Width
}

// TargetInnerRadius is the bead seat radius in meters for a rim diameter in inches.
func TargetInnerRadius(rimDiameter float64) float64 {
	return units.InchToMeter(rimDiameter) / 2
}

// TargetOuterRadius is the tread radius in meters for a tire diameter in inches.
func TargetOuterRadius(tireDiameter float64) float64 {
	return units.InchToMeter(tireDiameter) / 2
}

// RadialFraction places a distance from the wheel axis on the reference
// bead-to-tread span: 0 at the bead seat, 1 at the tread. Values outside
// [0,1] are kept so off-nominal vertices deform proportionally.
func RadialFraction(distance float64, entry catalog.WheelEntry) float64 {
	return (distance - entry.InnerRadius()) / entry.RadialSpan()
}

// MapRadius maps a radial fraction onto the target span. Both ends are exact:
// 0 yields inner and 1 yields outer.
func MapRadius(fraction, inner, outer float64) float64 {
	return inner*(1-fraction) + outer*fraction
}
