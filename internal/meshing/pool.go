package meshing

import (
	"context"
	"sync"

	"voxmesh/internal/voxel"

	"github.com/pkg/errors"
)

// ErrPoolClosed is returned when submitting to a pool that has shut down.
var ErrPoolClosed = errors.New("meshing: worker pool closed")

// MeshJob is a request to mesh one region.
type MeshJob[V voxel.Voxel] struct {
	ID     int
	Bounds voxel.Bounds
	Sample voxel.SamplerFunc[V]
	// ResultChan receives exactly one MeshResult for this job.
	ResultChan chan<- MeshResult
}

// MeshResult carries the mesh of one job.
type MeshResult struct {
	ID     int
	Bounds voxel.Bounds
	Mesh   Mesh
	Error  error
}

// WorkerPool meshes independent regions on a fixed set of goroutines. All
// workers read from the same face-template table.
type WorkerPool[V voxel.Voxel] struct {
	jobQueue chan MeshJob[V]
	workers  int
	table    *Table
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool starts workers goroutines behind a queue of queueSize jobs.
// A nil table is built once and shared.
func NewWorkerPool[V voxel.Voxel](workers, queueSize int, table *Table) *WorkerPool[V] {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if table == nil {
		table = NewTable()
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool[V]{
		jobQueue: make(chan MeshJob[V], queueSize),
		workers:  workers,
		table:    table,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}
	return pool
}

// SubmitJob queues job without blocking. It returns false if the queue is
// full or the pool is closed.
func (p *WorkerPool[V]) SubmitJob(job MeshJob[V]) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking waits for queue space, ctx cancellation, or pool shutdown.
func (p *WorkerPool[V]) SubmitJobBlocking(ctx context.Context, job MeshJob[V]) error {
	if p.ctx.Err() != nil {
		return ErrPoolClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPoolClosed
	}
}

func (p *WorkerPool[V]) worker(int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := p.process(job)
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *WorkerPool[V]) process(job MeshJob[V]) MeshResult {
	result := MeshResult{ID: job.ID, Bounds: job.Bounds}
	mesher, err := NewBlockyMesher[V](job.Bounds, p.table)
	if err != nil {
		result.Error = errors.Wrapf(err, "job %d", job.ID)
		return result
	}
	result.Mesh = mesher.Mesh(job.Sample)
	return result
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// have not started are dropped. Safe to call more than once.
func (p *WorkerPool[V]) Shutdown() {
	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool[V]) Workers() int {
	return p.workers
}

// QueueLength returns the number of jobs waiting in the queue.
func (p *WorkerPool[V]) QueueLength() int {
	return len(p.jobQueue)
}

// MeshTiled splits bounds into tiles, meshes them on the pool and merges the
// results in tile order (z, then y, then x). Every tile edge is meshed as a
// bounds edge, so faces between touching solid voxels of neighboring tiles
// are emitted on both sides.
func MeshTiled[V voxel.Voxel](ctx context.Context, p *WorkerPool[V], bounds voxel.Bounds, tile voxel.Vec3i, sample voxel.SamplerFunc[V]) (Mesh, error) {
	tiles, err := bounds.Split(tile)
	if err != nil {
		return Mesh{}, err
	}

	results := make(chan MeshResult, len(tiles))
	for id, b := range tiles {
		job := MeshJob[V]{ID: id, Bounds: b, Sample: sample, ResultChan: results}
		if err := p.SubmitJobBlocking(ctx, job); err != nil {
			return Mesh{}, errors.Wrapf(err, "submit tile %d", id)
		}
	}

	meshes := make([]Mesh, len(tiles))
	for range tiles {
		select {
		case r := <-results:
			if r.Error != nil {
				return Mesh{}, r.Error
			}
			meshes[r.ID] = r.Mesh
		case <-ctx.Done():
			return Mesh{}, ctx.Err()
		case <-p.ctx.Done():
			return Mesh{}, ErrPoolClosed
		}
	}

	var merged Mesh
	for _, m := range meshes {
		merged.Append(m)
	}
	return merged, nil
}
