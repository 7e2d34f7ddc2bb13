package material

import "github.com/Faultbox/stance/internal/engine/scene"

// Apply walks the visible hierarchy under root and shades every material
// slot whose name matches a rule. Every visited mesh is marked to cast
// shadows. Slots matching no rule are left untouched. Applying the same
// style twice yields the same state as applying it once.
// Returns the number of slots that matched a rule.
func Apply(root *scene.Node, s Style) int {
	styled := 0
	root.TraverseVisible(func(n *scene.Node) {
		if n.Kind != scene.KindMesh {
			return
		}
		n.CastShadow = true

		for _, m := range n.Materials {
			if m == nil {
				continue
			}
			if r, ok := Match(m.Name); ok {
				r.Apply(m, s)
				styled++
			}
		}
	})
	return styled
}

// TireColor is the tread compound color.
var TireColor = mustParseColor("#121212")

// ApplyTire gives every material slot under root the fixed tire shading,
// whatever its name. Returns the number of slots shaded.
func ApplyTire(root *scene.Node) int {
	styled := 0
	root.TraverseVisible(func(n *scene.Node) {
		if n.Kind != scene.KindMesh {
			return
		}
		n.CastShadow = true

		for _, m := range n.Materials {
			if m == nil {
				continue
			}
			m.Color = TireColor
			m.Metalness = 0
			m.Roughness = 1
			m.FlatShading = false
			styled++
		}
	})
	return styled
}

func mustParseColor(hex string) scene.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
