package geometry

import gomath "math"

// Tire builds a closed ring with a rectangular cross-section around the Z
// axis: bead seat at innerRadius, tread at outerRadius, width along Z.
// segments is the number of steps around the axis, steps the number of
// subdivisions along each side of the cross-section.
func Tire(outerRadius, innerRadius, width float64, segments, steps int) *Buffer {
	if segments < 3 {
		segments = 3
	}
	if steps < 1 {
		steps = 1
	}
	profile := tireProfile(outerRadius, innerRadius, width, steps)

	b := &Buffer{
		Positions: make([]float32, 0, segments*len(profile)*3),
		Indices:   make([]uint32, 0, segments*len(profile)*6),
	}

	for k := 0; k < segments; k++ {
		theta := 2 * gomath.Pi * float64(k) / float64(segments)
		sin, cos := gomath.Sincos(theta)
		for _, p := range profile {
			b.Positions = append(b.Positions,
				float32(p[0]*cos), float32(p[0]*sin), float32(p[1]))
		}
	}

	ring := uint32(len(profile))
	for k := 0; k < segments; k++ {
		next := (k + 1) % segments
		for j := 0; j < len(profile); j++ {
			jn := (j + 1) % len(profile)
			a := uint32(k)*ring + uint32(j)
			bb := uint32(next)*ring + uint32(j)
			c := uint32(next)*ring + uint32(jn)
			d := uint32(k)*ring + uint32(jn)
			b.Indices = append(b.Indices, a, bb, c, a, c, d)
		}
	}

	b.ComputeNormals()
	return b
}

// tireProfile walks the cross-section as (radius, z) pairs: outward along the
// back sidewall, across the tread, inward along the front sidewall and back
// across the bead seat. Corners appear once.
func tireProfile(outer, inner, width float64, steps int) [][2]float64 {
	half := width / 2
	profile := make([][2]float64, 0, steps*4)

	for i := 0; i < steps; i++ {
		f := float64(i) / float64(steps)
		profile = append(profile, [2]float64{inner + f*(outer-inner), -half})
	}
	for i := 0; i < steps; i++ {
		f := float64(i) / float64(steps)
		profile = append(profile, [2]float64{outer, -half + f*width})
	}
	for i := 0; i < steps; i++ {
		f := float64(i) / float64(steps)
		profile = append(profile, [2]float64{outer - f*(outer-inner), half})
	}
	for i := 0; i < steps; i++ {
		f := float64(i) / float64(steps)
		profile = append(profile, [2]float64{inner, half - f*width})
	}
	return profile
}

// Box builds an axis-aligned box centered on the origin. Faces do not share
// vertices so normals stay flat.
func Box(width, height, depth float64) *Buffer {
	x, y, z := float32(width/2), float32(height/2), float32(depth/2)
	faces := [6][4][3]float32{
		{{x, -y, -z}, {x, y, -z}, {x, y, z}, {x, -y, z}},     // +X
		{{-x, -y, z}, {-x, y, z}, {-x, y, -z}, {-x, -y, -z}}, // -X
		{{-x, y, -z}, {-x, y, z}, {x, y, z}, {x, y, -z}},     // +Y
		{{-x, -y, z}, {-x, -y, -z}, {x, -y, -z}, {x, -y, z}}, // -Y
		{{x, -y, z}, {x, y, z}, {-x, y, z}, {-x, -y, z}},     // +Z
		{{-x, -y, -z}, {-x, y, -z}, {x, y, -z}, {x, -y, -z}}, // -Z
	}

	b := &Buffer{
		Positions: make([]float32, 0, 6*4*3),
		Indices:   make([]uint32, 0, 6*6),
	}
	for i, face := range faces {
		for _, v := range face {
			b.Positions = append(b.Positions, v[0], v[1], v[2])
		}
		base := uint32(i * 4)
		b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	b.ComputeNormals()
	return b
}
