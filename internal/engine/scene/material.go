package scene

// Color is a linear RGB color with components in [0,1].
type Color struct {
	R, G, B float64
}

// Material holds the physically based shading parameters of one slot.
type Material struct {
	Name        string
	Color       Color
	Metalness   float64
	Roughness   float64
	Opacity     float64
	Transparent bool
	FlatShading bool
}

// NewMaterial returns a white, opaque, fully rough dielectric.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Color:     Color{1, 1, 1},
		Roughness: 1,
		Opacity:   1,
	}
}
