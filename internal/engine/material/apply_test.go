package material

import (
	"errors"
	"math"
	"testing"

	"github.com/Faultbox/stance/internal/engine/scene"
)

var red = scene.Color{R: 0.48, G: 0.009, B: 0.009}

func meshWith(names ...string) (*scene.Node, []*scene.Material) {
	mats := make([]*scene.Material, len(names))
	for i, n := range names {
		mats[i] = scene.NewMaterial(n)
	}
	return scene.NewMesh("mesh", nil, mats...), mats
}

func TestApplyRules(t *testing.T) {
	style := Style{Body: red, Roughness: 0.2, Rim: RimChrome, RimSecondary: RimSilver}

	tests := []struct {
		name        string
		material    string
		color       scene.Color
		metalness   float64
		roughness   float64
		opacity     float64
		transparent bool
		flat        bool
	}{
		{"body prefix", "body_panels", red, 0.4, 0.2, 1, false, false},
		{"chrome prefix", "chrome_trim", White, 1, 0, 1, false, false},
		{"mirror exact", "mirror", White, 1, 0, 1, false, false},
		{"glass exact", "glass", LightGrey, 1, 0, 0.2, true, false},
		{"glass tint", "glass_tint_rear", MedGrey, 1, 0, 0.4, true, false},
		{"glass dark", "glass_dark", DarkGrey, 1, 0, 0.8, true, false},
		{"rubber", "rubber_seal", Black, 0.5, 0.9, 1, false, true},
		{"black trim", "black_grille", Black, 0, 0.5, 1, false, false},
		{"rim primary", "rim_front", White, 0.8, 0, 1, false, false},
		{"rim secondary", "rim_secondary", LightGrey, 0.6, 0.1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, mats := meshWith(tt.material)
			if n := Apply(node, style); n != 1 {
				t.Fatalf("styled %d slots, want 1", n)
			}
			m := mats[0]
			if m.Color != tt.color {
				t.Errorf("color = %+v, want %+v", m.Color, tt.color)
			}
			if m.Metalness != tt.metalness || m.Roughness != tt.roughness {
				t.Errorf("metalness/roughness = %v/%v, want %v/%v", m.Metalness, m.Roughness, tt.metalness, tt.roughness)
			}
			if m.Opacity != tt.opacity || m.Transparent != tt.transparent {
				t.Errorf("opacity/transparent = %v/%v, want %v/%v", m.Opacity, m.Transparent, tt.opacity, tt.transparent)
			}
			if m.FlatShading != tt.flat {
				t.Errorf("flat shading = %v, want %v", m.FlatShading, tt.flat)
			}
		})
	}
}

func TestApplyUnmatchedNames(t *testing.T) {
	for _, name := range []string{"Body", "mirror_left", "glassy", "interior", ""} {
		t.Run(name, func(t *testing.T) {
			node, mats := meshWith(name)
			before := *mats[0]
			if n := Apply(node, Style{Body: red, Rim: RimChrome}); n != 0 {
				t.Errorf("styled %d slots, want 0", n)
			}
			if *mats[0] != before {
				t.Errorf("material %q changed: %+v", name, *mats[0])
			}
			if !node.CastShadow {
				t.Error("mesh should cast shadows even without matching materials")
			}
		})
	}
}

func TestRimColorSources(t *testing.T) {
	style := Style{Body: red, Roughness: 0.6, Rim: RimChrome, RimSecondary: RimSilver}
	node, mats := meshWith("rim_secondary", "rim_front", "rim")
	Apply(node, style)

	if mats[0].Color != LightGrey || mats[0].Metalness != 0.6 {
		t.Errorf("rim_secondary = %+v, want silver from the secondary input", *mats[0])
	}
	for _, m := range mats[1:] {
		if m.Color != White || m.Metalness != 0.8 {
			t.Errorf("%s = %+v, want chrome from the primary input", m.Name, *m)
		}
	}
}

func TestRimFinishes(t *testing.T) {
	tests := []struct {
		finish    RimColor
		color     scene.Color
		metalness float64
		roughness float64
	}{
		{RimSilver, LightGrey, 0.6, 0.1},
		{RimChrome, White, 0.8, 0},
		{RimGlossBlack, Black, 1, 0.1},
		{RimFlatBlack, Black, 0.2, 1},
		{RimBody, red, 0.4, 0.6},
	}

	for _, tt := range tests {
		t.Run(string(tt.finish), func(t *testing.T) {
			node, mats := meshWith("rim_spokes")
			Apply(node, Style{Body: red, Roughness: 0.6, Rim: tt.finish})
			m := mats[0]
			if m.Color != tt.color || m.Metalness != tt.metalness || m.Roughness != tt.roughness {
				t.Errorf("got %+v, want color %+v metalness %v roughness %v", *m, tt.color, tt.metalness, tt.roughness)
			}
		})
	}
}

func TestRimWithoutFinishIsUntouched(t *testing.T) {
	node, mats := meshWith("rim_lip")
	before := *mats[0]
	if n := Apply(node, Style{Body: red}); n != 1 {
		t.Errorf("rim slot should match its rule, styled %d", n)
	}
	if *mats[0] != before {
		t.Errorf("rim without finish changed: %+v", *mats[0])
	}
}

func TestApplyIdempotent(t *testing.T) {
	names := []string{"body", "chrome", "glass", "glass_tint", "glass_dark", "rubber", "black", "rim", "rim_secondary", "other"}
	style := Style{Body: red, Roughness: 0.2, Rim: RimBody, RimSecondary: RimGlossBlack}

	once, onceMats := meshWith(names...)
	Apply(once, style)

	twice, twiceMats := meshWith(names...)
	Apply(twice, style)
	Apply(twice, style)

	for i := range onceMats {
		if *onceMats[i] != *twiceMats[i] {
			t.Errorf("%s: once %+v, twice %+v", names[i], *onceMats[i], *twiceMats[i])
		}
	}
}

func TestApplyTraversal(t *testing.T) {
	visibleMesh, visibleMats := meshWith("body", "glass")
	hiddenMesh, hiddenMats := meshWith("body")
	hidden := scene.NewGroup("hidden", hiddenMesh)
	hidden.Visible = false

	root := scene.NewGroup("vehicle",
		scene.NewGroup("shell", visibleMesh),
		hidden,
	)

	if n := Apply(root, Style{Body: red}); n != 2 {
		t.Errorf("styled %d slots, want 2", n)
	}
	if visibleMats[0].Color != red || visibleMats[1].Opacity != 0.2 {
		t.Error("multi-material mesh not styled per slot")
	}
	if hiddenMats[0].Color == red || hiddenMesh.CastShadow {
		t.Error("hidden subtree should be skipped")
	}
	if !visibleMesh.CastShadow {
		t.Error("visible mesh should cast shadows")
	}
	if root.CastShadow {
		t.Error("groups are not meshes and should not be marked")
	}
}

func TestMatchPrecedence(t *testing.T) {
	tests := map[string]string{
		"body_chrome":    "body",
		"chrome_body":    "chrome",
		"glass_tint":     "glass_tint",
		"glass_dark_top": "glass_dark",
		"rim_secondary":  "rim",
		"rimless":        "rim",
		"blackout":       "black",
	}
	for name, want := range tests {
		r, ok := Match(name)
		if !ok || r.Name != want {
			t.Errorf("Match(%q) = %q (%v), want %q", name, r.Name, ok, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	white, err := ParseColor("#FFFFFF")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if math.Abs(white.R-1) > 1e-9 || math.Abs(white.G-1) > 1e-9 || math.Abs(white.B-1) > 1e-9 {
		t.Errorf("white = %+v", white)
	}

	grey, err := ParseColor("#808080")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	// sRGB 0.5 is roughly 0.216 in linear space.
	if grey.R < 0.2 || grey.R > 0.23 {
		t.Errorf("grey linear R = %v, want ~0.216", grey.R)
	}

	if _, err := ParseColor("red"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseColor("#b91818")
	if err != nil {
		t.Fatal(err)
	}
	if got := Hex(c); got != "#b91818" {
		t.Errorf("Hex = %s, want #b91818", got)
	}
}

func TestRimColorValid(t *testing.T) {
	for _, c := range RimColors {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if RimColor("gold").Valid() || RimColor("").Valid() {
		t.Error("unknown finishes should be invalid")
	}
}

func TestApplyTire(t *testing.T) {
	node, mats := meshWith("rubber", "Tread", "rim")
	mats[0].FlatShading = true
	mats[1].Metalness = 0.7

	if n := ApplyTire(node); n != 3 {
		t.Fatalf("styled %d slots, want 3", n)
	}
	for _, m := range mats {
		if m.Color != TireColor || m.Metalness != 0 || m.Roughness != 1 || m.FlatShading {
			t.Errorf("%s = %+v, want fixed tire shading", m.Name, *m)
		}
	}
	if Hex(TireColor) != "#121212" {
		t.Errorf("tire color = %s, want #121212", Hex(TireColor))
	}
	if !node.CastShadow {
		t.Error("tire mesh should cast shadows")
	}
}
