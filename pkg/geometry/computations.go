package geometry

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Computations is the shading context derived from one hit: everything the
// shading pass needs, precomputed once. It lives for a single hit.
type Computations struct {
	T       float64
	Object  Shape
	Point   core.Vec4
	EyeV    core.Vec4
	NormalV core.Vec4
	Inside  bool
	// OverPoint is the hit point nudged along the normal, the origin for
	// shadow and reflection rays. UnderPoint is nudged the opposite way,
	// the origin for refraction rays. Both exist to stop secondary rays
	// from re-hitting the surface they start on.
	OverPoint  core.Vec4
	UnderPoint core.Vec4
	ReflectV   core.Vec4
	// N1 is the refractive index of the medium the ray is leaving, N2 of
	// the medium it is entering
	N1 float64
	N2 float64
}

// PrepareComputations derives the shading context for a hit. The full
// sorted intersection list for the same ray is required to resolve the
// refractive indices on both sides of the hit.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	point := ray.Position(hit.T)
	comps := Computations{
		T:       hit.T,
		Object:  hit.Object,
		Point:   point,
		EyeV:    ray.Direction.Negate(),
		NormalV: NormalAt(hit.Object, point),
	}

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.OverPoint = comps.Point.Add(comps.NormalV.Scale(core.Epsilon))
	comps.UnderPoint = comps.Point.Sub(comps.NormalV.Scale(core.Epsilon))
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the sorted intersection list, maintaining the
// stack of shapes the ray is currently inside. At the target hit, n1 is
// the index of the innermost containing shape (vacuum when none) before
// the boundary and n2 after it. Shape identity is pointer identity, so
// nested and overlapping transparent volumes resolve correctly.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Shape

	for _, x := range xs {
		isHit := x == hit
		if isHit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// toggle membership: exiting if present, entering otherwise
		found := false
		for i, c := range containers {
			if c == x.Object {
				containers = append(containers[:i], containers[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light that reflects rather than refracts. Total internal reflection
// returns 1.
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1.0
		}
		// when n1 > n2 use cos(theta_t) instead
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
