package renderer

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/orrery/engine/body"
	"github.com/Carmen-Shannon/orrery/engine/model"
)

// defaultMeshWorkers is the size of the start-up mesh generation pool.
const defaultMeshWorkers = 4

// buildMeshes generates every mesh the draw list can reference, fanned out on
// pool. It returns once all meshes are built.
//
// Parameters:
//   - pool: worker pool that runs the generators
//   - bodies: the catalog, used to size per-body ring meshes
//
// Returns:
//   - map[string]model.Model: meshes keyed by mesh key
func buildMeshes(pool worker.DynamicWorkerPool, bodies []body.CelestialBody) map[string]model.Model {
	jobs := map[string]func() model.Model{
		meshSphere: func() model.Model { return model.Sphere(sphereSegments, sphereSegments) },
		meshCircle: func() model.Model { return model.Circle(orbitRingSegments) },
		meshQuad:   model.Quad,
	}
	for _, b := range bodies {
		if !b.Profile.Has(body.ProfileRing) {
			continue
		}
		radius := float32(b.Radius) * ringRadiusFactor
		jobs[ringMeshKey(b.Name)] = func() model.Model {
			return model.Torus(radius, ringTubeRadius, ringMeshSegments, ringMeshSegments)
		}
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		taskID int
	)
	meshes := make(map[string]model.Model, len(jobs))
	for key, build := range jobs {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID:      taskID,
			Payload: key,
			Do: func() (any, error) {
				defer wg.Done()
				m := build()
				mu.Lock()
				meshes[key] = m
				mu.Unlock()
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
	return meshes
}

// newMeshPool starts a pool for buildMeshes. Callers Stop it once the meshes are built.
func newMeshPool(workers int) worker.DynamicWorkerPool {
	return worker.NewDynamicWorkerPool(max(workers, 1), 256, 1*time.Second)
}
