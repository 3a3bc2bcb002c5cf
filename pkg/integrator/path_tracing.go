package integrator

import (
	"math/rand"
	"sync/atomic"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

// PathTracer implements recursive stochastic path tracing. Each surface hit
// spawns SampleCount rays per material lobe, so the ray tree grows by up to
// 2×SampleCount per bounce.
type PathTracer struct {
	shapes      []geometry.Shape
	sampleCount int

	rays atomic.Int64
}

var _ Integrator = (*PathTracer)(nil)

// NewPathTracer creates a path tracer over the scene's shapes. The scene
// must not change while rays are being cast.
func NewPathTracer(sc *scene.Scene, sampleCount int) *PathTracer {
	return &PathTracer{
		shapes:      sc.Shapes,
		sampleCount: max(sampleCount, 1),
	}
}

// CastRay computes the illumination arriving along ray
func (pt *PathTracer) CastRay(ray core.Ray, random *rand.Rand, bounces int) core.Illumination {
	// Depth guard, checked before anything else
	if bounces <= 0 {
		return core.Illumination{}
	}
	pt.rays.Add(1)

	shape, hit, ok := pt.Nearest(ray)
	if !ok {
		// Background is black
		return core.Illumination{}
	}

	mat := geometry.MaterialFor(shape, &hit)
	if mat == nil {
		return core.Illumination{}
	}
	uv := geometry.TextureCoordinate(shape, &hit)
	return mat.Shade(&hit, uv, pt, random, pt.sampleCount, bounces)
}

// Nearest scans every shape and returns the one hit at the smallest positive distance
func (pt *PathTracer) Nearest(ray core.Ray) (geometry.Shape, core.Intersection, bool) {
	var (
		nearest    geometry.Shape
		nearestHit core.Intersection
		found      bool
	)
	for _, shape := range pt.shapes {
		hit, ok := geometry.Intersect(shape, ray)
		if !ok {
			continue
		}
		if !found || hit.Distance < nearestHit.Distance {
			nearest, nearestHit, found = shape, hit, true
		}
	}
	return nearest, nearestHit, found
}

// RaysCast returns how many rays have passed the depth guard so far
func (pt *PathTracer) RaysCast() int64 {
	return pt.rays.Load()
}
