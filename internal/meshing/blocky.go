package meshing

import (
	"voxmesh/internal/voxel"
)

// BlockyMesher emits one unit quad per exposed face of every solid voxel in
// its bounds. Faces on the bounds edge are always treated as exposed, so
// adjacent regions meshed separately each keep their side of the seam.
type BlockyMesher[V voxel.Voxel] struct {
	bounds voxel.Bounds
	table  *Table
}

// NewBlockyMesher validates bounds and binds the mesher to table. A nil table
// is built on the spot; pass a shared one when creating many meshers.
func NewBlockyMesher[V voxel.Voxel](bounds voxel.Bounds, table *Table) (*BlockyMesher[V], error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = NewTable()
	}
	return &BlockyMesher[V]{bounds: bounds, table: table}, nil
}

// Bounds returns the region this mesher covers.
func (m *BlockyMesher[V]) Bounds() voxel.Bounds { return m.bounds }

// Table returns the face-template table the mesher reads from.
func (m *BlockyMesher[V]) Table() *Table { return m.table }

// Mask computes the exposed-face mask of the voxel at p. Neighbors outside
// the bounds are not sampled and count as empty.
func (m *BlockyMesher[V]) Mask(p voxel.Vec3i, sample voxel.SamplerFunc[V]) Mask {
	var mask Mask
	for f := Face(0); f < FaceCount; f++ {
		n := p.Add(f.Offset())
		if !m.bounds.Contains(n) || !sample(n).IsSolid() {
			mask |= f.Bit()
		}
	}
	return mask
}

// Mesh walks the bounds (z, then y, then x) and returns the assembled mesh.
// Identical bounds and equivalent samplers yield identical output.
func (m *BlockyMesher[V]) Mesh(sample voxel.SamplerFunc[V]) Mesh {
	var mesh Mesh
	voxel.SampleEach(m.bounds, sample, func(p voxel.Vec3i, v V) {
		if !v.IsSolid() {
			return
		}

		mask := m.Mask(p, sample)
		if mask == 0 {
			return
		}

		tpl := m.table.Lookup(mask)
		base := uint32(len(mesh.Vertices))
		offset := p.Vec3()
		color := v.Colorized()

		for _, tv := range tpl.Vertices {
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: tv.Position.Add(offset),
				Normal:   tv.Normal,
				Color:    color,
			})
		}
		for _, i := range tpl.Indices {
			mesh.Indices = append(mesh.Indices, base+i)
		}
	})
	return mesh
}
