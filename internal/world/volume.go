package world

import (
	"voxmesh/internal/voxel"
)

// Volume is dense block storage over a fixed region. Reads outside the region
// return air, so a Volume sampler is total.
type Volume struct {
	bounds voxel.Bounds
	size   voxel.Vec3i
	blocks []Block
}

// NewVolume allocates an all-air volume covering bounds.
func NewVolume(bounds voxel.Bounds) (*Volume, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Volume{
		bounds: bounds,
		size:   bounds.Size(),
		blocks: make([]Block, bounds.Volume()),
	}, nil
}

func (v *Volume) Bounds() voxel.Bounds {
	return v.bounds
}

// index flattens p as x fastest, then y, then z.
func (v *Volume) index(p voxel.Vec3i) (int, bool) {
	if !v.bounds.Contains(p) {
		return 0, false
	}
	l := p.Sub(v.bounds.From)
	return int(l.X) + int(v.size.X)*(int(l.Y)+int(v.size.Y)*int(l.Z)), true
}

// At returns the block at p, or air outside the volume.
func (v *Volume) At(p voxel.Vec3i) Block {
	i, ok := v.index(p)
	if !ok {
		return Block{}
	}
	return v.blocks[i]
}

// Set stores b at p. It reports false when p is outside the volume.
func (v *Volume) Set(p voxel.Vec3i, b Block) bool {
	i, ok := v.index(p)
	if !ok {
		return false
	}
	v.blocks[i] = b
	return true
}

// Fill overwrites every cell with the value of sample.
func (v *Volume) Fill(sample voxel.SamplerFunc[Block]) {
	voxel.SampleEach(v.bounds, sample, func(p voxel.Vec3i, b Block) {
		v.Set(p, b)
	})
}

// SolidCount returns the number of non-air cells.
func (v *Volume) SolidCount() int {
	n := 0
	for _, b := range v.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}

// Sampler reads the volume. Concurrent use is safe only while nothing calls Set.
func (v *Volume) Sampler() voxel.SamplerFunc[Block] {
	return v.At
}
