// Package pointgen produces synthetic point sets for exercising kdsort.Sort
// and the downstream query package on distributions with different spatial
// shape: isotropic, planar, linear, and curved. Each distribution corresponds
// to one of a classic set of kd-tree benchmark point clouds (points within a
// cube, points on a cylinder, Liu's fixed planar set, and so on); here every
// generator takes its own *rand.Rand so callers can
// reproduce or vary a run explicitly, the same choice kdsort itself makes
// for quickselect pivots.
package pointgen

import (
	"math"
	"math/rand/v2"

	"github.com/gomlx/exceptions"

	"github.com/briokit/briosort/kdsort"
)

// Distribution names one of the synthetic point-generation shapes this
// package knows how to produce. The zero value is not a valid distribution.
type Distribution string

const (
	Axes       Distribution = "axes"
	Cube       Distribution = "cube"
	Cylinder   Distribution = "cylinder"
	Liu        Distribution = "liu"
	Planes     Distribution = "planes"
	Paraboloid Distribution = "paraboloid"
	Spiral     Distribution = "spiral"
	Saddle     Distribution = "saddle"
)

// All lists every distribution this package supports, in a stable order
// suitable for CLI help text.
var All = []Distribution{Axes, Cube, Cylinder, Liu, Planes, Paraboloid, Spiral, Saddle}

// DefaultSeed is used whenever a caller wants a reproducible run without
// picking their own seed.
const DefaultSeed uint64 = 1234567890

// Generate produces n points from the named distribution using a generator
// seeded from seed. Liu ignores n and always returns its fixed 15-point 2D
// benchmark set. It panics if n is zero or negative for any distribution
// other than Liu, or dist is not one of the names in All -- these are
// programmer errors in the caller, not runtime conditions.
func Generate(dist Distribution, n int, seed uint64) []kdsort.Point {
	if dist == Liu {
		return liuPoints()
	}
	if n <= 0 {
		exceptions.Panicf("pointgen: n must be positive, got %d", n)
	}
	rnd := rand.New(rand.NewPCG(seed, seed))
	switch dist {
	case Axes:
		return axesPoints(n, rnd)
	case Cube:
		return cubePoints(n, rnd)
	case Cylinder:
		return cylinderPoints(n, 1.0, rnd)
	case Planes:
		return planesPoints(n, rnd)
	case Paraboloid:
		return paraboloidPoints(n, rnd)
	case Spiral:
		return spiralPoints(n, rnd)
	case Saddle:
		return saddlePoints(n, rnd)
	default:
		exceptions.Panicf("pointgen: unknown distribution %q", dist)
		return nil
	}
}

// gaussian draws one standard-normal sample via a Box-Muller transform,
// since math/rand/v2 exposes only uniform variates.
func gaussian(rnd *rand.Rand) float64 {
	u1 := rnd.Float64()
	for u1 == 0 {
		u1 = rnd.Float64()
	}
	u2 := rnd.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func newPoint(x, y, z float64, payload int64) kdsort.Point {
	return kdsort.Point{Coord: [kdsort.Dimension]float64{x, y, z}, Payload: payload}
}

// axesPoints scatters points in three noisy bands, one roughly aligned with
// each coordinate axis -- the kind of highly anisotropic input that forces
// the cut-longest-edge rule to keep picking the axis the band extends along.
func axesPoints(n int, rnd *rand.Rand) []kdsort.Point {
	const sd = 1e-2
	pts := make([]kdsort.Point, n)
	third := n / 3
	for i := 0; i < third; i++ {
		pts[i] = newPoint(rnd.Float64()+gaussian(rnd)*sd, gaussian(rnd)*sd, gaussian(rnd)*sd, int64(i+1))
	}
	for i := third; i < 2*third; i++ {
		pts[i] = newPoint(gaussian(rnd)*sd, rnd.Float64()+gaussian(rnd)*sd, gaussian(rnd)*sd, int64(i+1))
	}
	for i := 2 * third; i < n; i++ {
		pts[i] = newPoint(gaussian(rnd)*sd, gaussian(rnd)*sd, rnd.Float64()+gaussian(rnd)*sd, int64(i+1))
	}
	return pts
}

// cubePoints are i.i.d. uniform in the unit cube: the isotropic baseline
// case, where every axis is an equally good split choice.
func cubePoints(n int, rnd *rand.Rand) []kdsort.Point {
	pts := make([]kdsort.Point, n)
	for i := range pts {
		pts[i] = newPoint(rnd.Float64(), rnd.Float64(), rnd.Float64(), int64(i+1))
	}
	return pts
}

// cylinderPoints are uniform within a unit-radius cylinder of height h,
// centered on the z axis, with a small amount of gaussian jitter.
func cylinderPoints(n int, h float64, rnd *rand.Rand) []kdsort.Point {
	const R = 1.0
	const sd = 1e-2
	pts := make([]kdsort.Point, n)
	for i := range pts {
		theta := 2 * math.Pi * rnd.Float64()
		r := R * math.Sqrt(rnd.Float64())
		x := r*math.Sin(theta) + sd*gaussian(rnd)
		y := r*math.Cos(theta) + sd*gaussian(rnd)
		z := h*(rnd.Float64()-0.5) + sd*gaussian(rnd)
		pts[i] = newPoint(x, y, z, int64(i+1))
	}
	return pts
}

// liuPoints reproduces Liu's 15-point planar benchmark set, fixed
// coordinates and all, with Payload set to the point's 1-based position in
// that fixed ordering so a caller can still recognize each point after it
// has been sorted.
func liuPoints() []kdsort.Point {
	coords := [][2]float64{
		{2.880, 64.490}, {22.320, 56.810}, {38.640, 64.730}, {47.520, 50.090},
		{64.920, 40.490}, {66.480, 19.730}, {90.840, 4.010}, {98.280, 43.730},
		{102.840, 70.970}, {119.760, 59.810}, {125.400, 17.330}, {142.680, 44.330},
		{162.480, 22.130}, {182.400, 11.450}, {199.680, 18.770},
	}
	pts := make([]kdsort.Point, len(coords))
	for i, c := range coords {
		pts[i] = newPoint(c[0], c[1], 0, int64(i+1))
	}
	return pts
}

// planesPoints scatters points across three noisy unit-square planes, one
// per pair of axes -- similar to axesPoints but two-dimensional per band
// instead of one-dimensional, so the longest-axis rule must alternate
// between the two axes that actually vary.
func planesPoints(n int, rnd *rand.Rand) []kdsort.Point {
	const sd = 1e-2
	pts := make([]kdsort.Point, n)
	third := n / 3
	for i := 0; i < third; i++ {
		pts[i] = newPoint(rnd.Float64()+gaussian(rnd)*sd, rnd.Float64()+gaussian(rnd)*sd, gaussian(rnd)*sd, int64(i+1))
	}
	for i := third; i < 2*third; i++ {
		pts[i] = newPoint(gaussian(rnd)*sd, rnd.Float64()+gaussian(rnd)*sd, rnd.Float64()+gaussian(rnd)*sd, int64(i+1))
	}
	for i := 2 * third; i < n; i++ {
		pts[i] = newPoint(rnd.Float64()+gaussian(rnd)*sd, gaussian(rnd)*sd, rnd.Float64()+gaussian(rnd)*sd, int64(i+1))
	}
	return pts
}

// paraboloidPoints lie near the surface z = x^2 + y^2 above a uniform disk.
func paraboloidPoints(n int, rnd *rand.Rand) []kdsort.Point {
	const R = 1.0
	const sd = 1e-2
	pts := make([]kdsort.Point, n)
	for i := range pts {
		theta := 2 * math.Pi * rnd.Float64()
		r := R * math.Sqrt(rnd.Float64())
		x := r * math.Sin(theta)
		y := r * math.Cos(theta)
		z := x*x + y*y
		pts[i] = newPoint(x+sd*gaussian(rnd), y+sd*gaussian(rnd), z+sd*gaussian(rnd), int64(i+1))
	}
	return pts
}

// spiralPoints trace a logarithmic spiral climbing in z, with fixed-stddev
// gaussian noise (0.5 in x and y, 1.0 in z) -- a stress case for the BFS
// prefix-spread property, since early levels of a naive traversal of an
// unsorted spiral would cluster near one end.
func spiralPoints(n int, rnd *rand.Rand) []kdsort.Point {
	const a = 0.25 / math.Pi
	const b = 300.0
	h := (b - a) / float64(n-1)
	const alpha, beta, gamma = 0.5, 0.01, 1.0
	pts := make([]kdsort.Point, n)
	for i := range pts {
		u0 := float64(i) * h
		theta := 2 * math.Pi * math.Sqrt(u0)
		scale := alpha * theta * math.Exp(beta*theta)
		x := scale*math.Sin(theta) + 0.5*gaussian(rnd)
		y := scale*math.Cos(theta) + 0.5*gaussian(rnd)
		z := gamma*theta + 1.0*gaussian(rnd)
		pts[i] = newPoint(x, y, z, int64(i+1))
	}
	return pts
}

// saddlePoints lie near the hyperbolic-paraboloid surface z = x^2 - y^2
// over the square [-1,1]^2.
func saddlePoints(n int, rnd *rand.Rand) []kdsort.Point {
	const sd = 1e-2
	pts := make([]kdsort.Point, n)
	for i := range pts {
		x := 2*rnd.Float64() - 1.0
		y := 2*rnd.Float64() - 1.0
		z := x*x - y*y
		pts[i] = newPoint(x+sd*gaussian(rnd), y+sd*gaussian(rnd), z+sd*gaussian(rnd), int64(i+1))
	}
	return pts
}
