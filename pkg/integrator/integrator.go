package integrator

import (
	"math/rand"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// CastRay returns the illumination arriving along ray with at most
	// bounces levels of recursion left. bounces == 0 always yields zero.
	CastRay(ray core.Ray, random *rand.Rand, bounces int) core.Illumination
}
