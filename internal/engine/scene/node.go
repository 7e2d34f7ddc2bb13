// Package scene provides a renderer-agnostic mesh hierarchy: groups and
// meshes carrying material slots and local transforms.
package scene

import (
	"github.com/Faultbox/stance/internal/engine/geometry"
	"github.com/Faultbox/stance/pkg/math"
)

// Kind tags a node variant.
type Kind int

const (
	KindGroup Kind = iota // Container without geometry
	KindMesh              // Geometry with one or more material slots
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "Group"
	case KindMesh:
		return "Mesh"
	default:
		return "Unknown"
	}
}

// Node is a scene graph node. Geometry and Materials are only set on meshes.
type Node struct {
	Kind     Kind
	Name     string
	Visible  bool
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
	Children []*Node

	Geometry   *geometry.Buffer
	Materials  []*Material
	CastShadow bool
}

// NewGroup creates a visible group with the given children.
func NewGroup(name string, children ...*Node) *Node {
	return &Node{
		Kind:     KindGroup,
		Name:     name,
		Visible:  true,
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Children: children,
	}
}

// NewMesh creates a visible mesh. Multi-material meshes pass one material per slot.
func NewMesh(name string, geo *geometry.Buffer, materials ...*Material) *Node {
	return &Node{
		Kind:      KindMesh,
		Name:      name,
		Visible:   true,
		Rotation:  math.QuatIdentity(),
		Scale:     math.Vec3{X: 1, Y: 1, Z: 1},
		Geometry:  geo,
		Materials: materials,
	}
}

// Add appends children.
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// TraverseVisible visits n and its descendants depth-first, parents before
// children. Hidden nodes are skipped together with their subtrees.
func (n *Node) TraverseVisible(fn func(*Node)) {
	if n == nil || !n.Visible {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.TraverseVisible(fn)
	}
}

// Find returns the first node with the given name, including hidden ones.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Clone copies the hierarchy and transforms. Geometry and materials are
// shared with the original, so restyling one copy restyles all of them.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Children = make([]*Node, len(n.Children))
	for i, child := range n.Children {
		c.Children[i] = child.Clone()
	}
	c.Materials = append([]*Material(nil), n.Materials...)
	return &c
}

// Matrix returns the local transform.
func (n *Node) Matrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// Instance is Clone with private copies of every material, so the copy can
// be restyled on its own. Geometry is still shared.
func (n *Node) Instance() *Node {
	c := n.Clone()
	c.walk(func(node *Node) {
		for i, m := range node.Materials {
			if m != nil {
				cp := *m
				node.Materials[i] = &cp
			}
		}
	})
	return c
}

// FirstMesh returns the first mesh in depth-first order, hidden or not.
func (n *Node) FirstMesh() *Node {
	var found *Node
	n.walk(func(node *Node) {
		if found == nil && node.Kind == KindMesh && node.Geometry != nil {
			found = node
		}
	})
	return found
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.walk(fn)
	}
}
