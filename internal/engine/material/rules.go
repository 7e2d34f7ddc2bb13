// Package material applies the naming-convention shading rules to a scene
// hierarchy: paint, chrome, glass, rubber, trim and rims.
package material

import (
	"strings"

	"github.com/Faultbox/stance/internal/engine/scene"
)

// Fixed palette.
var (
	White     = scene.Color{R: 1, G: 1, B: 1}
	LightGrey = scene.Color{R: 0.8, G: 0.8, B: 0.8}
	MedGrey   = scene.Color{R: 0.5, G: 0.5, B: 0.5}
	DarkGrey  = scene.Color{R: 0.2, G: 0.2, B: 0.2}
	Black     = scene.Color{R: 0.025, G: 0.025, B: 0.025}
)

// Style carries the per-configuration inputs of a styling pass.
// Rim colors may be empty when styling meshes without rims.
type Style struct {
	Body         scene.Color
	Roughness    float64
	Rim          RimColor
	RimSecondary RimColor
}

// Rule pairs a material-name predicate with the shading it applies.
type Rule struct {
	Name    string
	Matches func(name string) bool
	Apply   func(m *scene.Material, s Style)
}

// Rules is evaluated in order; the first matching rule wins. Names are
// matched case-sensitively.
var Rules = []Rule{
	{
		Name:    "body",
		Matches: prefix("body"),
		Apply: func(m *scene.Material, s Style) {
			paint(m, s)
		},
	},
	{
		Name:    "chrome",
		Matches: anyOf(prefix("chrome"), exact("mirror")),
		Apply: func(m *scene.Material, _ Style) {
			m.Color = White
			m.Metalness = 1
			m.Roughness = 0
		},
	},
	{
		Name:    "glass",
		Matches: exact("glass"),
		Apply:   glass(LightGrey, 0.2),
	},
	{
		Name:    "glass_tint",
		Matches: prefix("glass_tint"),
		Apply:   glass(MedGrey, 0.4),
	},
	{
		Name:    "glass_dark",
		Matches: prefix("glass_dark"),
		Apply:   glass(DarkGrey, 0.8),
	},
	{
		Name:    "rubber",
		Matches: prefix("rubber"),
		Apply: func(m *scene.Material, _ Style) {
			m.Color = Black
			m.Metalness = 0.5
			m.Roughness = 0.9
			m.FlatShading = true
		},
	},
	{
		Name:    "black",
		Matches: prefix("black"),
		Apply: func(m *scene.Material, _ Style) {
			m.Color = Black
			m.Metalness = 0
			m.Roughness = 0.5
		},
	},
	{
		Name:    "rim",
		Matches: anyOf(prefix("rim"), exact(SecondaryRimMaterial)),
		Apply: func(m *scene.Material, s Style) {
			c := s.Rim
			if m.Name == SecondaryRimMaterial {
				c = s.RimSecondary
			}
			c.apply(m, s)
		},
	},
}

// Match returns the first rule whose predicate accepts name.
func Match(name string) (Rule, bool) {
	for _, r := range Rules {
		if r.Matches(name) {
			return r, true
		}
	}
	return Rule{}, false
}

func paint(m *scene.Material, s Style) {
	m.Color = s.Body
	m.Metalness = 0.4
	m.Roughness = s.Roughness
}

func glass(c scene.Color, opacity float64) func(*scene.Material, Style) {
	return func(m *scene.Material, _ Style) {
		m.Color = c
		m.Metalness = 1
		m.Roughness = 0
		m.Opacity = opacity
		m.Transparent = true
	}
}

func prefix(p string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, p) }
}

func exact(s string) func(string) bool {
	return func(name string) bool { return name == s }
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(name string) bool {
		for _, p := range preds {
			if p(name) {
				return true
			}
		}
		return false
	}
}
