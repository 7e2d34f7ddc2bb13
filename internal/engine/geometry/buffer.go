// Package geometry provides vertex buffers and the helpers used to transform
// and measure them.
package geometry

import (
	gomath "math"

	"github.com/Faultbox/stance/pkg/math"
)

// Buffer is an indexed triangle mesh with a flat xyz position attribute.
// Normals are optional; when present they hold one xyz normal per vertex.
type Buffer struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Count returns the number of vertices.
func (b *Buffer) Count() int {
	return len(b.Positions) / 3
}

// Position returns the position of vertex i.
func (b *Buffer) Position(i int) [3]float32 {
	return [3]float32{b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2]}
}

// SetPosition overwrites the position of vertex i.
func (b *Buffer) SetPosition(i int, p [3]float32) {
	b.Positions[i*3] = p[0]
	b.Positions[i*3+1] = p[1]
	b.Positions[i*3+2] = p[2]
}

// Clone returns a deep copy. Base meshes are shared between configurations,
// so every derived buffer starts from a clone.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		Positions: append([]float32(nil), b.Positions...),
	}
	if b.Normals != nil {
		c.Normals = append([]float32(nil), b.Normals...)
	}
	if b.Indices != nil {
		c.Indices = append([]uint32(nil), b.Indices...)
	}
	return c
}

// ApplyMatrix transforms every position by m in place.
func (b *Buffer) ApplyMatrix(m math.Mat4) {
	for i, n := 0, b.Count(); i < n; i++ {
		p := b.Position(i)
		t := m.TransformPoint([3]float64{float64(p[0]), float64(p[1]), float64(p[2])})
		b.SetPosition(i, [3]float32{float32(t[0]), float32(t[1]), float32(t[2])})
	}
}

// Bounds returns the bounding box of all positions.
func (b *Buffer) Bounds() Bounds {
	bounds := Bounds{
		Min: [3]float32{gomath.MaxFloat32, gomath.MaxFloat32, gomath.MaxFloat32},
		Max: [3]float32{-gomath.MaxFloat32, -gomath.MaxFloat32, -gomath.MaxFloat32},
	}
	if b.Count() == 0 {
		return Bounds{}
	}
	for i, n := 0, b.Count(); i < n; i++ {
		updateBounds(&bounds, b.Position(i))
	}
	return bounds
}

// RadialExtent returns the smallest and largest distance of any vertex from
// the Z axis.
func (b *Buffer) RadialExtent() (minR, maxR float64) {
	if b.Count() == 0 {
		return 0, 0
	}
	minR = gomath.Inf(1)
	for i, n := 0, b.Count(); i < n; i++ {
		p := b.Position(i)
		r := gomath.Hypot(float64(p[0]), float64(p[1]))
		minR = gomath.Min(minR, r)
		maxR = gomath.Max(maxR, r)
	}
	return minR, maxR
}

// ComputeNormals rebuilds smooth per-vertex normals from the triangle list.
// Buffers without indices are left unchanged.
func (b *Buffer) ComputeNormals() {
	if len(b.Indices) < 3 {
		return
	}
	normals := make([]math.Vec3, b.Count())

	for f := 0; f+2 < len(b.Indices); f += 3 {
		i0, i1, i2 := int(b.Indices[f]), int(b.Indices[f+1]), int(b.Indices[f+2])
		v0, v1, v2 := b.vec(i0), b.vec(i1), b.vec(i2)
		n := cross(v1.Sub(v0), v2.Sub(v0))

		// Degenerate triangle
		if n.Length() < 1e-12 {
			continue
		}
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}

	b.Normals = make([]float32, len(b.Positions))
	for i, n := range normals {
		n = n.Normalize()
		b.Normals[i*3] = float32(n.X)
		b.Normals[i*3+1] = float32(n.Y)
		b.Normals[i*3+2] = float32(n.Z)
	}
}

func (b *Buffer) vec(i int) math.Vec3 {
	p := b.Position(i)
	return math.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

func cross(a, b math.Vec3) math.Vec3 {
	return math.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] {
			b.Min[axis] = p[axis]
		}
		if p[axis] > b.Max[axis] {
			b.Max[axis] = p[axis]
		}
	}
}
