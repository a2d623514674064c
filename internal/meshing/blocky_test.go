package meshing

import (
	"errors"
	"math/rand"
	"testing"

	"voxmesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

type testVoxel struct {
	solid bool
	color mgl32.Vec3
}

func (v testVoxel) IsSolid() bool         { return v.solid }
func (v testVoxel) Colorized() mgl32.Vec3 { return v.color }

// solidAt returns a sampler that is solid exactly at the given positions.
func solidAt(color mgl32.Vec3, ps ...voxel.Vec3i) voxel.SamplerFunc[testVoxel] {
	set := make(map[voxel.Vec3i]bool, len(ps))
	for _, p := range ps {
		set[p] = true
	}
	return func(p voxel.Vec3i) testVoxel {
		return testVoxel{solid: set[p], color: color}
	}
}

func randomField(seed int64, density float64) voxel.SamplerFunc[testVoxel] {
	r := rand.New(rand.NewSource(seed))
	field := make(map[voxel.Vec3i]testVoxel)
	for z := int32(-1); z <= 8; z++ {
		for y := int32(-1); y <= 8; y++ {
			for x := int32(-1); x <= 8; x++ {
				field[voxel.Vec3i{X: x, Y: y, Z: z}] = testVoxel{
					solid: r.Float64() < density,
					color: mgl32.Vec3{r.Float32(), r.Float32(), r.Float32()},
				}
			}
		}
	}
	return func(p voxel.Vec3i) testVoxel { return field[p] }
}

func newMesher(t *testing.T, from, to voxel.Vec3i) *BlockyMesher[testVoxel] {
	t.Helper()
	m, err := NewBlockyMesher[testVoxel](voxel.MustBounds(from, to), nil)
	if err != nil {
		t.Fatalf("NewBlockyMesher: %v", err)
	}
	return m
}

func TestSingleVoxelMesh(t *testing.T) {
	red := mgl32.Vec3{1, 0, 0}
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 1, Y: 1, Z: 1})
	mesh := m.Mesh(solidAt(red, voxel.Vec3i{X: 0, Y: 0, Z: 0}))

	if len(mesh.Vertices) != 24 {
		t.Fatalf("single voxel: got %d vertices, want 24", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 36 {
		t.Fatalf("single voxel: got %d indices, want 36", len(mesh.Indices))
	}
	if mesh.FaceCount() != 6 {
		t.Fatalf("single voxel: got %d faces, want 6", mesh.FaceCount())
	}
	for i, v := range mesh.Vertices {
		if v.Color != red {
			t.Fatalf("vertex %d: got color %v, want %v", i, v.Color, red)
		}
	}
}

func TestCenteredVoxelExposesAllFaces(t *testing.T) {
	center := voxel.Vec3i{X: 1, Y: 1, Z: 1}
	sample := solidAt(mgl32.Vec3{1, 1, 1}, center)
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 3, Y: 3, Z: 3})

	if got := m.Mask(center, sample); got != AllFaces {
		t.Fatalf("got mask %06b, want %06b", got, AllFaces)
	}
	mesh := m.Mesh(sample)
	if len(mesh.Vertices) != MaxVoxelVertices || len(mesh.Indices) != MaxVoxelIndices {
		t.Fatalf("got %d/%d vertices/indices, want %d/%d",
			len(mesh.Vertices), len(mesh.Indices), MaxVoxelVertices, MaxVoxelIndices)
	}

	lo, hi := mesh.Bounds()
	if lo != (mgl32.Vec3{1, 1, 1}) || hi != (mgl32.Vec3{2, 2, 2}) {
		t.Fatalf("mesh spans %v..%v, want (1,1,1)..(2,2,2)", lo, hi)
	}
}

func TestTwoAdjacentVoxelsHideSharedFace(t *testing.T) {
	a, b := voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 1, Y: 0, Z: 0}
	sample := solidAt(mgl32.Vec3{0, 1, 0}, a, b)
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 2, Y: 1, Z: 1})

	if got, want := m.Mask(a, sample), AllFaces&^FaceRight.Bit(); got != want {
		t.Fatalf("voxel a: got mask %06b, want %06b", got, want)
	}
	if got, want := m.Mask(b, sample), AllFaces&^FaceLeft.Bit(); got != want {
		t.Fatalf("voxel b: got mask %06b, want %06b", got, want)
	}

	mesh := m.Mesh(sample)
	if mesh.FaceCount() != 10 {
		t.Fatalf("got %d faces, want 10", mesh.FaceCount())
	}
	if len(mesh.Vertices) != 40 || len(mesh.Indices) != 60 {
		t.Fatalf("got %d vertices and %d indices, want 40 and 60", len(mesh.Vertices), len(mesh.Indices))
	}
	for _, v := range mesh.Vertices {
		if v.Position.X() == 1 && (v.Normal == FaceLeft.Normal() || v.Normal == FaceRight.Normal()) {
			t.Fatalf("interior face emitted at x=1 with normal %v", v.Normal)
		}
	}
}

func TestEnclosedVoxelEmitsNothing(t *testing.T) {
	all := func(voxel.Vec3i) testVoxel { return testVoxel{solid: true} }
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 3, Y: 3, Z: 3})

	if got := m.Mask(voxel.Vec3i{X: 1, Y: 1, Z: 1}, all); got != 0 {
		t.Fatalf("enclosed voxel: got mask %06b, want 0", got)
	}
	mesh := m.Mesh(all)
	// Only the 9 cells on each side of the cube are visible.
	if got, want := mesh.FaceCount(), 6*9; got != want {
		t.Fatalf("got %d faces, want %d", got, want)
	}
	for _, v := range mesh.Vertices {
		p := v.Position
		onSurface := p.X() == 0 || p.X() == 3 || p.Y() == 0 || p.Y() == 3 || p.Z() == 0 || p.Z() == 3
		if !onSurface {
			t.Fatalf("vertex %v is inside the solid block", p)
		}
	}
}

func TestBoundsEdgeIsAlwaysExposed(t *testing.T) {
	// The world is solid everywhere, but only one cell is meshed.
	all := func(voxel.Vec3i) testVoxel { return testVoxel{solid: true} }
	m := newMesher(t, voxel.Vec3i{X: 5, Y: 5, Z: 5}, voxel.Vec3i{X: 6, Y: 6, Z: 6})

	if got := m.Mask(voxel.Vec3i{X: 5, Y: 5, Z: 5}, all); got != AllFaces {
		t.Fatalf("got mask %06b, want %06b", got, AllFaces)
	}
	mesh := m.Mesh(all)
	if got := mesh.FaceCount(); got != 6 {
		t.Fatalf("got %d faces, want 6", got)
	}
}

func TestNeighborsOutsideBoundsAreNotSampled(t *testing.T) {
	b := voxel.MustBounds(voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 2, Y: 2, Z: 2})
	m, err := NewBlockyMesher[testVoxel](b, nil)
	if err != nil {
		t.Fatal(err)
	}
	m.Mesh(func(p voxel.Vec3i) testVoxel {
		if !b.Contains(p) {
			t.Fatalf("sampled %v outside %v", p, b)
		}
		return testVoxel{solid: true}
	})
}

func TestMeshInvariantsOnRandomField(t *testing.T) {
	sample := randomField(42, 0.45)
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 8, Y: 8, Z: 8})
	mesh := m.Mesh(sample)

	if mesh.Empty() {
		t.Fatal("random field produced no geometry")
	}
	if len(mesh.Indices)%IndicesPerFace != 0 || len(mesh.Vertices)%VerticesPerFace != 0 {
		t.Fatalf("partial faces: %d vertices, %d indices", len(mesh.Vertices), len(mesh.Indices))
	}
	for _, i := range mesh.Indices {
		if int(i) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range %d", i, len(mesh.Vertices))
		}
	}
	for tri := 0; tri < len(mesh.Indices); tri += 3 {
		a := mesh.Vertices[mesh.Indices[tri]]
		b := mesh.Vertices[mesh.Indices[tri+1]]
		c := mesh.Vertices[mesh.Indices[tri+2]]
		if a.Normal != b.Normal || b.Normal != c.Normal {
			t.Fatalf("triangle %d mixes normals", tri/3)
		}
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if n.Dot(a.Normal) <= 0 {
			t.Fatalf("triangle %d is back-facing", tri/3)
		}
	}
}

func TestMeshFaceCountMatchesMasks(t *testing.T) {
	sample := randomField(7, 0.5)
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 8, Y: 8, Z: 8})

	want := 0
	voxel.SampleEach(m.Bounds(), sample, func(p voxel.Vec3i, v testVoxel) {
		if v.IsSolid() {
			want += m.Mask(p, sample).Count()
		}
	})
	mesh := m.Mesh(sample)
	if got := mesh.FaceCount(); got != want {
		t.Fatalf("got %d faces, want %d", got, want)
	}
}

func TestColorPropagation(t *testing.T) {
	sample := randomField(99, 0.3)
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 8, Y: 8, Z: 8})
	mesh := m.Mesh(sample)

	for tri := 0; tri < len(mesh.Indices); tri += IndicesPerFace {
		v := mesh.Vertices[mesh.Indices[tri]]
		owner := voxelOf(mesh, tri)
		if want := sample(owner).Colorized(); v.Color != want {
			t.Fatalf("face %d of %v: got color %v, want %v", tri/IndicesPerFace, owner, v.Color, want)
		}
	}
}

// voxelOf recovers the coordinate of the voxel that emitted the face starting
// at index position tri.
func voxelOf(mesh Mesh, tri int) voxel.Vec3i {
	lo := mgl32.Vec3{1e9, 1e9, 1e9}
	var normal mgl32.Vec3
	for k := 0; k < IndicesPerFace; k++ {
		v := mesh.Vertices[mesh.Indices[tri+k]]
		normal = v.Normal
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], v.Position[a])
		}
	}
	for a := 0; a < 3; a++ {
		if normal[a] > 0 {
			lo[a]--
		}
	}
	return voxel.Vec3i{X: int32(lo[0]), Y: int32(lo[1]), Z: int32(lo[2])}
}

func TestMeshIsDeterministic(t *testing.T) {
	m := newMesher(t, voxel.Vec3i{X: -2, Y: -2, Z: -2}, voxel.Vec3i{X: 6, Y: 6, Z: 6})
	a := m.Mesh(randomField(3, 0.5))
	b := m.Mesh(randomField(3, 0.5))

	if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
		t.Fatalf("sizes differ: %d/%d vs %d/%d", len(a.Vertices), len(a.Indices), len(b.Vertices), len(b.Indices))
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs", i)
		}
	}
}

func TestMeshersShareTable(t *testing.T) {
	table := NewTable()
	b := voxel.MustBounds(voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 1, Y: 1, Z: 1})
	m1, _ := NewBlockyMesher[testVoxel](b, table)
	m2, _ := NewBlockyMesher[testVoxel](b, table)
	if m1.Table() != m2.Table() {
		t.Fatal("meshers should reuse the table they were given")
	}
}

func TestNewBlockyMesherRejectsInvalidBounds(t *testing.T) {
	b := voxel.Bounds{From: voxel.Vec3i{X: 0, Y: 0, Z: 0}, To: voxel.Vec3i{X: 1, Y: 0, Z: 1}}
	if _, err := NewBlockyMesher[testVoxel](b, nil); !errors.Is(err, voxel.ErrInvalidBounds) {
		t.Fatalf("got err %v, want ErrInvalidBounds", err)
	}
}

func TestEmptyFieldProducesEmptyMesh(t *testing.T) {
	m := newMesher(t, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 4, Y: 4, Z: 4})
	mesh := m.Mesh(func(voxel.Vec3i) testVoxel { return testVoxel{} })
	if !mesh.Empty() || len(mesh.Vertices) != 0 {
		t.Fatalf("got %d vertices, want none", len(mesh.Vertices))
	}
}
