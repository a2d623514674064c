package meshing

import (
	"context"
	"errors"
	"testing"
	"time"

	"voxmesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshTiledSingleTileMatchesMesher(t *testing.T) {
	bounds := voxel.MustBounds(voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 8, Y: 8, Z: 8})
	sample := randomField(11, 0.4)

	pool := NewWorkerPool[testVoxel](2, 4, nil)
	defer pool.Shutdown()

	got, err := MeshTiled(context.Background(), pool, bounds, bounds.Size(), sample)
	if err != nil {
		t.Fatal(err)
	}
	m, _ := NewBlockyMesher[testVoxel](bounds, nil)
	want := m.Mesh(sample)

	if len(got.Vertices) != len(want.Vertices) || len(got.Indices) != len(want.Indices) {
		t.Fatalf("got %d/%d, want %d/%d", len(got.Vertices), len(got.Indices), len(want.Vertices), len(want.Indices))
	}
	for i := range want.Indices {
		if got.Indices[i] != want.Indices[i] {
			t.Fatalf("index %d differs", i)
		}
	}
}

func TestMeshTiledMergesInTileOrder(t *testing.T) {
	bounds := voxel.MustBounds(voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 8, Y: 8, Z: 8})
	tile := voxel.Vec3i{X: 4, Y: 4, Z: 4}
	sample := randomField(5, 0.5)

	pool := NewWorkerPool[testVoxel](4, 2, nil)
	defer pool.Shutdown()

	got, err := MeshTiled(context.Background(), pool, bounds, tile, sample)
	if err != nil {
		t.Fatal(err)
	}

	tiles, _ := bounds.Split(tile)
	var want Mesh
	for _, b := range tiles {
		m, _ := NewBlockyMesher[testVoxel](b, nil)
		want.Append(m.Mesh(sample))
	}

	if len(got.Vertices) != len(want.Vertices) {
		t.Fatalf("got %d vertices, want %d", len(got.Vertices), len(want.Vertices))
	}
	for i := range want.Vertices {
		if got.Vertices[i] != want.Vertices[i] {
			t.Fatalf("vertex %d differs", i)
		}
	}
	for i := range want.Indices {
		if got.Indices[i] != want.Indices[i] {
			t.Fatalf("index %d differs", i)
		}
	}
}

func TestMeshTiledKeepsSeamFaces(t *testing.T) {
	// Two touching voxels split across a tile boundary each keep the shared face.
	bounds := voxel.MustBounds(voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 2, Y: 1, Z: 1})
	sample := solidAt(mgl32.Vec3{1, 1, 1}, voxel.Vec3i{X: 0, Y: 0, Z: 0}, voxel.Vec3i{X: 1, Y: 0, Z: 0})

	pool := NewWorkerPool[testVoxel](2, 2, nil)
	defer pool.Shutdown()

	mesh, err := MeshTiled(context.Background(), pool, bounds, voxel.Vec3i{X: 1, Y: 1, Z: 1}, sample)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.FaceCount() != 12 {
		t.Fatalf("got %d faces, want 12", mesh.FaceCount())
	}
}

func TestWorkerPoolReportsInvalidJob(t *testing.T) {
	pool := NewWorkerPool[testVoxel](1, 1, nil)
	defer pool.Shutdown()

	results := make(chan MeshResult, 1)
	ok := pool.SubmitJob(MeshJob[testVoxel]{
		ID:         3,
		Bounds:     voxel.Bounds{To: voxel.Vec3i{X: 1, Y: 1, Z: 0}},
		Sample:     solidAt(mgl32.Vec3{}),
		ResultChan: results,
	})
	if !ok {
		t.Fatal("submit failed")
	}

	select {
	case r := <-results:
		if r.ID != 3 || !errors.Is(r.Error, voxel.ErrInvalidBounds) {
			t.Fatalf("got id %d err %v, want id 3 and ErrInvalidBounds", r.ID, r.Error)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for result")
	}
}

func TestWorkerPoolRejectsAfterShutdown(t *testing.T) {
	pool := NewWorkerPool[testVoxel](2, 1, nil)
	pool.Shutdown()
	pool.Shutdown()

	job := MeshJob[testVoxel]{Bounds: voxel.MustBounds(voxel.Vec3i{}, voxel.Vec3i{X: 1, Y: 1, Z: 1})}
	if pool.SubmitJob(job) {
		t.Fatal("SubmitJob succeeded on a closed pool")
	}
	if err := pool.SubmitJobBlocking(context.Background(), job); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("got %v, want ErrPoolClosed", err)
	}
}

func TestMeshTiledHonorsCancelledContext(t *testing.T) {
	pool := NewWorkerPool[testVoxel](1, 0, nil)
	defer pool.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bounds := voxel.MustBounds(voxel.Vec3i{}, voxel.Vec3i{X: 16, Y: 16, Z: 16})
	_, err := MeshTiled(ctx, pool, bounds, voxel.Vec3i{X: 1, Y: 1, Z: 1}, solidAt(mgl32.Vec3{}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
