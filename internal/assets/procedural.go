package assets

import (
	"maps"
	"slices"

	"github.com/Faultbox/stance/internal/catalog"
	"github.com/Faultbox/stance/internal/engine/geometry"
	"github.com/Faultbox/stance/internal/engine/scene"
	"github.com/Faultbox/stance/pkg/math"
)

// Tessellation of generated wheels.
const (
	TireSegments = 48
	TireSteps    = 4
)

// Body proportions relative to the wheelbase and track.
const (
	bodyOverhang = 0.8 // meters past each axle
	bodyHeight   = 1.1
	cabinHeight  = 0.45
)

// Procedural registers stand-in meshes for every model path in cat. Tires
// are built at their reference dimensions so the catalog radii hold exactly.
// Entries sharing a model path resolve to the one with the greatest id.
func Procedural(m *Manager, cat *catalog.Catalog) {
	for _, id := range slices.Sorted(maps.Keys(cat.Tires)) {
		t := cat.Tires[id]
		m.Register(t.Model, tireGenerator(t))
	}
	for _, id := range slices.Sorted(maps.Keys(cat.Rims)) {
		r := cat.Rims[id]
		m.Register(r.Model, rimGenerator(r))
	}
	for _, id := range slices.Sorted(maps.Keys(cat.Vehicles)) {
		v := cat.Vehicles[id]
		m.Register(v.Model, bodyGenerator(v))
	}
}

func tireGenerator(t catalog.WheelEntry) Generator {
	return func(string) (*scene.Node, error) {
		geo := geometry.Tire(t.OuterRadius(), t.InnerRadius(), t.Width, TireSegments, TireSteps)
		return scene.NewMesh(t.Name, geo, scene.NewMaterial("rubber")), nil
	}
}

// Rims are a barrel plus a spoke disc; the disc takes the secondary color.
func rimGenerator(r catalog.WheelEntry) Generator {
	return func(string) (*scene.Node, error) {
		outer := r.OuterRadius()
		barrel := geometry.Tire(outer, outer*0.9, r.Width, TireSegments, 1)
		face := geometry.Tire(outer*0.9, outer*0.12, r.Width*0.2, TireSegments, 1)

		return scene.NewGroup(r.Name,
			scene.NewMesh("barrel", barrel, scene.NewMaterial("rim")),
			scene.NewMesh("face", face, scene.NewMaterial("rim_secondary")),
		), nil
	}
}

func bodyGenerator(v catalog.VehicleEntry) Generator {
	return func(string) (*scene.Node, error) {
		length := v.Wheelbase + 2*bodyOverhang
		width := 2 * v.WheelOffset

		shell := scene.NewMesh("shell", geometry.Box(width, bodyHeight-cabinHeight, length),
			scene.NewMaterial("body"),
			scene.NewMaterial("black_trim"),
			scene.NewMaterial("chrome_trim"),
			scene.NewMaterial("rubber_seal"),
		)
		shell.Position = math.Vec3{Y: (bodyHeight - cabinHeight) / 2}

		cabin := scene.NewMesh("cabin", geometry.Box(width*0.9, cabinHeight, length*0.5),
			scene.NewMaterial("glass"),
			scene.NewMaterial("glass_tint"),
			scene.NewMaterial("glass_dark"),
			scene.NewMaterial("mirror"),
			scene.NewMaterial("interior"),
		)
		cabin.Position = math.Vec3{Y: bodyHeight - cabinHeight/2}

		return scene.NewGroup(v.Name, shell, cabin), nil
	}
}
