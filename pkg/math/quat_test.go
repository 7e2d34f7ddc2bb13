package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if math.Abs(length-1.0) > 1e-12 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatMatchesRotateY(t *testing.T) {
	for _, angle := range []float64{math.Pi / 2, -math.Pi / 2, math.Pi * 80 / 180, -math.Pi * 100 / 180} {
		q := QuatFromAxisAngle(UnitY, angle).ToMat4()
		m := RotateY(angle)
		for i := range m {
			if math.Abs(q[i]-m[i]) > 1e-12 {
				t.Errorf("angle %v: element %d quat=%v rotateY=%v", angle, i, q[i], m[i])
			}
		}
	}
}

func TestQuatFromEulerYOnly(t *testing.T) {
	got := QuatFromEuler(0, math.Pi/3, 0)
	want := QuatFromAxisAngle(UnitY, math.Pi/3)
	if math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.W-want.W) > 1e-12 {
		t.Errorf("QuatFromEuler = %+v, want %+v", got, want)
	}
}

func TestQuatRotate(t *testing.T) {
	v := QuatFromAxisAngle(UnitY, math.Pi).Rotate(Vec3{1, 0, 0})
	if v.Distance(Vec3{-1, 0, 0}) > 1e-9 {
		t.Errorf("Rotate 180 about Y: got %v, want (-1, 0, 0)", v)
	}
}
