// Package voxel holds the integer-space types shared by samplers and meshers:
// coordinates, half-open bounds, and the voxel/sampler contracts.
package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Voxel is the minimal contract a cell value must satisfy to be meshed.
// Colorized is only consulted when IsSolid reports true.
type Voxel interface {
	IsSolid() bool
	Colorized() mgl32.Vec3
}

// SamplerFunc maps an integer coordinate to a voxel value. It must be pure and
// total over the region being meshed; the mesher may query the same
// coordinate several times.
type SamplerFunc[V Voxel] func(p Vec3i) V

// Each visits every coordinate of b, z outermost and x innermost.
func Each(b Bounds, fn func(p Vec3i)) {
	for z := b.From.Z; z < b.To.Z; z++ {
		for y := b.From.Y; y < b.To.Y; y++ {
			for x := b.From.X; x < b.To.X; x++ {
				fn(Vec3i{x, y, z})
			}
		}
	}
}

// SampleEach visits every coordinate of b in the same order as Each and hands
// the sampled voxel to fn alongside its position.
func SampleEach[V Voxel](b Bounds, sample SamplerFunc[V], fn func(p Vec3i, v V)) {
	Each(b, func(p Vec3i) {
		fn(p, sample(p))
	})
}
