package material

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/stance/internal/engine/scene"
)

// SecondaryRimMaterial is the material name that takes the secondary rim color.
const SecondaryRimMaterial = "rim_secondary"

// RimColor is a rim finish.
type RimColor string

const (
	RimSilver     RimColor = "silver"
	RimChrome     RimColor = "chrome"
	RimGlossBlack RimColor = "gloss_black"
	RimFlatBlack  RimColor = "flat_black"
	RimBody       RimColor = "body" // Matches the paint
)

// RimColors lists every finish in display order.
var RimColors = []RimColor{RimFlatBlack, RimGlossBlack, RimSilver, RimChrome, RimBody}

// ErrInvalidColor is returned for paint colors that are not hex strings.
var ErrInvalidColor = errors.New("invalid color")

// Valid reports whether c is a known finish.
func (c RimColor) Valid() bool {
	switch c {
	case RimSilver, RimChrome, RimGlossBlack, RimFlatBlack, RimBody:
		return true
	}
	return false
}

// apply shades a rim material. Unknown or empty finishes leave it untouched.
func (c RimColor) apply(m *scene.Material, s Style) {
	switch c {
	case RimSilver:
		m.Color = LightGrey
		m.Metalness = 0.6
		m.Roughness = 0.1
	case RimChrome:
		m.Color = White
		m.Metalness = 0.8
		m.Roughness = 0
	case RimGlossBlack:
		m.Color = Black
		m.Metalness = 1
		m.Roughness = 0.1
	case RimFlatBlack:
		m.Color = Black
		m.Metalness = 0.2
		m.Roughness = 1
	case RimBody:
		paint(m, s)
	}
}

// ParseColor converts an sRGB hex string ("#B91818" or "#b11") to a linear color.
func ParseColor(hex string) (scene.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return scene.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.LinearRgb()
	return scene.Color{R: r, G: g, B: b}, nil
}

// Hex formats a linear color as an sRGB hex string.
func Hex(c scene.Color) string {
	return colorful.LinearRgb(c.R, c.G, c.B).Clamped().Hex()
}
