package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3i is an integer grid coordinate.
type Vec3i struct {
	X, Y, Z int32
}

// Unit axis steps.
var (
	UnitX = Vec3i{1, 0, 0}
	UnitY = Vec3i{0, 1, 0}
	UnitZ = Vec3i{0, 0, 1}
)

func (v Vec3i) Add(o Vec3i) Vec3i {
	return Vec3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3i) Sub(o Vec3i) Vec3i {
	return Vec3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Vec3 converts the coordinate to a float vector (the voxel's minimum corner).
func (v Vec3i) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vec3i) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}
